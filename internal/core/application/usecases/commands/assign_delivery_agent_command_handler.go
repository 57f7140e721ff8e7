package commands

import (
	"context"

	"parcel/internal/core/ports"
)

// AssignDeliveryAgentCommandHandler binds a delivery agent to an order and
// forces its status to Accepted. This is an unconditional override of the
// prior status, not a table-driven transition, and is the only entry point
// that bypasses the transition tables.
//
// The order lookup on this path is direct-by-id and does not exclude
// soft-deleted orders, unlike the status-update paths.
type AssignDeliveryAgentCommandHandler struct {
	uowFactory OrderUoWFactory
	agents     ports.AgentDirectory
}

// NewAssignDeliveryAgentCommandHandler creates a handler for agent assignment.
func NewAssignDeliveryAgentCommandHandler(
	uowFactory OrderUoWFactory,
	agents ports.AgentDirectory,
) AssignDeliveryAgentCommandHandler {
	return AssignDeliveryAgentCommandHandler{
		uowFactory: uowFactory,
		agents:     agents,
	}
}

// Handle processes the assignment command.
// Resolves the order and the agent independently and fails with a not-found
// kind when either is missing. Repeating the assignment with a different
// agent rebinds the order while the status stays Accepted.
func (h AssignDeliveryAgentCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	agent, err := h.agents.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.GetAny(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.AssignAgent(agent.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
