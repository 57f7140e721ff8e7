package commands

import (
	"context"

	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/ports"
)

// UpdateOrderStatusByAgentCommandHandler advances an order's status on behalf
// of a delivery agent, per the agent transition table.
//
// Failure kinds:
//   - not-found when the agent id does not resolve, or the order does not
//     resolve (soft-deleted orders are invisible on this path)
//   - invalid-transition when the (current -> target) pair is not in the
//     agent table
type UpdateOrderStatusByAgentCommandHandler struct {
	uowFactory OrderUoWFactory
	agents     ports.AgentDirectory
}

// NewUpdateOrderStatusByAgentCommandHandler creates a handler for
// agent-driven status updates.
func NewUpdateOrderStatusByAgentCommandHandler(
	uowFactory OrderUoWFactory,
	agents ports.AgentDirectory,
) UpdateOrderStatusByAgentCommandHandler {
	return UpdateOrderStatusByAgentCommandHandler{
		uowFactory: uowFactory,
		agents:     agents,
	}
}

// Handle processes the agent status update.
// On success the new status is persisted with a bumped audit timestamp and
// the updated order is returned. A rejected transition leaves the order
// wholly unmodified.
func (h UpdateOrderStatusByAgentCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusByAgentCommand,
) (*order.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.agents.Get(ctx, cmd.AgentID()); err != nil {
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

	if err = target.UpdateStatusByAgent(cmd.NewStatus()); err != nil {
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
