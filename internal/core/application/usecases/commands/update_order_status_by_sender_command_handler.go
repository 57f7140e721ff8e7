package commands

import (
	"context"

	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
)

// UpdateOrderStatusBySenderCommandHandler changes an order's status on behalf
// of its sender, per the sender transition table.
//
// Failure kinds:
//   - not-found when the order does not resolve
//   - permission-denied when the order's sender id differs from the acting
//     sender: ownership is checked before transition validity, so a foreign
//     order is rejected regardless of whether the transition would be legal
//   - invalid-transition when the (current -> target) pair is not in the
//     sender table
type UpdateOrderStatusBySenderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusBySenderCommandHandler creates a handler for
// sender-driven status updates.
func NewUpdateOrderStatusBySenderCommandHandler(
	uowFactory OrderUoWFactory,
) UpdateOrderStatusBySenderCommandHandler {
	return UpdateOrderStatusBySenderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sender status update.
// On success the new status is persisted with a bumped audit timestamp and
// the updated order is returned.
func (h UpdateOrderStatusBySenderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusBySenderCommand,
) (*order.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if target.SenderID() != cmd.SenderID() {
		return nil, errs.NewPermissionDeniedError("sender", cmd.OrderID())
	}

	if err = target.UpdateStatusBySender(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
