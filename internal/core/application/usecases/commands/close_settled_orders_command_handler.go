package commands

import (
	"context"
	"time"
)

// CloseSettledOrdersCommandHandler moves settled orders into the terminal
// Closed status once their retention window has passed. All orders found in
// one run are closed within a single transaction.
type CloseSettledOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCloseSettledOrdersCommandHandler creates a handler for order closing.
func NewCloseSettledOrdersCommandHandler(uowFactory OrderUoWFactory) CloseSettledOrdersCommandHandler {
	return CloseSettledOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes every settled order older than the retention window and
// returns how many orders were closed.
func (h CloseSettledOrdersCommandHandler) Handle(ctx context.Context, cmd CloseSettledOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	settled, err := orderRepo.GetAllSettledBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, target := range settled {
		if err = target.Close(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, target); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(settled), nil
}
