package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/ports"
	"parcel/internal/jobs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSweepRepository struct{ mock.Mock }

func (m *MockSweepRepository) Add(ctx context.Context, o *order.DeliveryOrder) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockSweepRepository) Update(ctx context.Context, o *order.DeliveryOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockSweepRepository) Get(ctx context.Context, id int64) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockSweepRepository) GetAny(ctx context.Context, id int64) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockSweepRepository) GetAllSettledBefore(ctx context.Context, cutoff time.Time) ([]*order.DeliveryOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.DeliveryOrder), args.Error(1)
}

func (m *MockSweepRepository) GetAllBySender(ctx context.Context, senderID int64) ([]*order.DeliveryOrder, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.DeliveryOrder), args.Error(1)
}

type MockSweepUoW struct{ mock.Mock }

func (m *MockSweepUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSweepUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSweepUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSweepUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestJobManager_RunsClosingSweepUntilStopped(t *testing.T) {
	repo := new(MockSweepRepository)
	repo.On("GetAllSettledBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.DeliveryOrder{}, nil)

	uow := new(MockSweepUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow)

	// The scheduler runs on whole-second granularity.
	manager := jobs.NewJobManager(
		commands.NewCloseSettledOrdersCommandHandler(factory),
		time.Hour,
		time.Second,
		slog.New(slog.DiscardHandler),
	)

	require.NoError(t, manager.StartAll())
	time.Sleep(2500 * time.Millisecond)
	manager.StopAll()

	// The sweep fired at least once while the manager was running.
	time.Sleep(100 * time.Millisecond) // let an in-flight run drain
	fired := len(factory.Calls)
	require.NotZero(t, fired)

	// Stopped means stopped: no further sweeps are scheduled.
	time.Sleep(1500 * time.Millisecond)
	require.Equal(t, fired, len(factory.Calls))
}
