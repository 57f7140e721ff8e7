package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.DeliveryOrder) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.DeliveryOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockOrderRepository) GetAny(ctx context.Context, id int64) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockOrderRepository) GetAllSettledBefore(ctx context.Context, cutoff time.Time) ([]*order.DeliveryOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.DeliveryOrder), args.Error(1)
}

func (m *MockOrderRepository) GetAllBySender(ctx context.Context, senderID int64) ([]*order.DeliveryOrder, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.DeliveryOrder), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAccountDirectory struct{ mock.Mock }

func (m *MockAccountDirectory) Get(ctx context.Context, id int64) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

// Shared draft fixtures for command tests.

func testItem(t *testing.T) order.ItemInfo {
	t.Helper()
	item, err := order.NewItemInfo(3, 1.2, 1.5, 5, 1, "Help me post!")
	require.NoError(t, err)
	return item
}

func testCoordinates(t *testing.T, lat, lon float64, address string) kernel.Coordinates {
	t.Helper()
	c, err := kernel.NewCoordinates(lat, lon, address)
	require.NoError(t, err)
	return c
}

func testDelivery(t *testing.T) order.DeliveryInfo {
	t.Helper()
	d, err := order.NewDeliveryInfo(10, 16, 20)
	require.NoError(t, err)
	return d
}

func testCreateCommand(t *testing.T, receiverAccountID *int64) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		1,
		receiverAccountID,
		"Abun",
		"0123456495",
		testItem(t),
		testCoordinates(t, 3.211, 123.1213, "10 Long Lama"),
		testCoordinates(t, 3.12, 173.1233, "112 Long Lama"),
		testDelivery(t),
	)
	require.NoError(t, err)
	return cmd
}

func testStoredOrder(t *testing.T, id, senderID int64, status order.Status) *order.DeliveryOrder {
	t.Helper()
	o, err := order.RestoreDeliveryOrder(
		id,
		"trk-test",
		senderID,
		"Sender One",
		order.NewReceiverInfo("Abun", "0123456495"),
		nil,
		nil,
		testItem(t),
		testCoordinates(t, 3.211, 123.1213, "10 Long Lama"),
		testCoordinates(t, 3.12, 173.1233, "112 Long Lama"),
		testDelivery(t),
		status,
		false,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCreateOrderCommandHandler_Handle_GuestReceiver(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateCommand(t, nil)

	sender, err := account.NewAccount(1, "Sender One", "0111222333")
	require.NoError(t, err)

	accounts := new(MockAccountDirectory)
	accounts.On("Get", ctx, int64(1)).Return(sender, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.DeliveryOrder")).
			Return(testStoredOrder(t, 42, 1, order.Created), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, accounts, testLogger())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID())
	assert.Equal(t, order.Created, created.Status())

	// The order handed to the repository kept the guest contact, normalized.
	added := repo.Calls[0].Arguments.Get(1).(*order.DeliveryOrder)
	assert.Nil(t, added.ReceiverAccountID())
	assert.Equal(t, "Abun", added.Receiver().Name())
	assert.Equal(t, "0123456495", added.Receiver().Phone().Normalized())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	accounts.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RegisteredReceiverWins(t *testing.T) {
	ctx := t.Context()
	receiverID := int64(5)
	cmd, err := commands.NewCreateOrderCommand(
		1,
		&receiverID,
		"Fallback Name",
		"0999999999",
		testItem(t),
		testCoordinates(t, 1, 1, "a"),
		testCoordinates(t, 2, 2, "b"),
		testDelivery(t),
	)
	require.NoError(t, err)

	sender, err := account.NewAccount(1, "Sender One", "0111222333")
	require.NoError(t, err)
	receiver, err := account.NewAccount(5, "Registered Name", "012-345 6495")
	require.NoError(t, err)

	accounts := new(MockAccountDirectory)
	mock.InOrder(
		accounts.On("Get", ctx, int64(1)).Return(sender, nil).Once(),
		accounts.On("Get", ctx, int64(5)).Return(receiver, nil).Once(),
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.DeliveryOrder")).
			Return(testStoredOrder(t, 43, 1, order.Created), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, accounts, testLogger())
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	added := repo.Calls[0].Arguments.Get(1).(*order.DeliveryOrder)
	require.NotNil(t, added.ReceiverAccountID())
	assert.Equal(t, int64(5), *added.ReceiverAccountID())
	assert.Equal(t, "Registered Name", added.Receiver().Name())
	assert.Equal(t, "0123456495", added.Receiver().Phone().Normalized())

	accounts.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnresolvedReceiverIsGuest(t *testing.T) {
	ctx := t.Context()
	receiverID := int64(404)
	cmd, err := commands.NewCreateOrderCommand(
		1,
		&receiverID,
		"Abun",
		"0123456495",
		testItem(t),
		testCoordinates(t, 1, 1, "a"),
		testCoordinates(t, 2, 2, "b"),
		testDelivery(t),
	)
	require.NoError(t, err)

	sender, err := account.NewAccount(1, "Sender One", "0111222333")
	require.NoError(t, err)

	accounts := new(MockAccountDirectory)
	mock.InOrder(
		accounts.On("Get", ctx, int64(1)).Return(sender, nil).Once(),
		accounts.On("Get", ctx, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("accountId", int64(404))).Once(),
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.DeliveryOrder")).
			Return(testStoredOrder(t, 44, 1, order.Created), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, accounts, testLogger())
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err, "an unresolved receiver is a guest, not a failure")

	added := repo.Calls[0].Arguments.Get(1).(*order.DeliveryOrder)
	assert.Nil(t, added.ReceiverAccountID())
	assert.Equal(t, "Abun", added.Receiver().Name())
}

func TestCreateOrderCommandHandler_Handle_SenderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateCommand(t, nil)

	accounts := new(MockAccountDirectory)
	accounts.On("Get", ctx, int64(1)).
		Return(nil, errs.NewObjectNotFoundError("accountId", int64(1))).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, accounts, testLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_IncompleteDraftRejected(t *testing.T) {
	ctx := t.Context()
	zeroDelivery, err := order.NewDeliveryInfo(0, 0, 0)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		1,
		nil,
		"Abun",
		"0123456495",
		testItem(t),
		testCoordinates(t, 1, 1, "a"),
		testCoordinates(t, 2, 2, "b"),
		zeroDelivery,
	)
	require.NoError(t, err)

	sender, err := account.NewAccount(1, "Sender One", "0111222333")
	require.NoError(t, err)

	accounts := new(MockAccountDirectory)
	accounts.On("Get", ctx, int64(1)).Return(sender, nil).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, accounts, testLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidationFailed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockAccountDirectory), testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateCommand(t, nil)

	sender, err := account.NewAccount(1, "Sender One", "0111222333")
	require.NoError(t, err)

	accounts := new(MockAccountDirectory)
	accounts.On("Get", ctx, int64(1)).Return(sender, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.DeliveryOrder")).
			Return(testStoredOrder(t, 45, 1, order.Created), nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, accounts, testLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
