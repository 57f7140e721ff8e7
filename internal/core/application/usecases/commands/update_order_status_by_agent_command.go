package commands

import (
	"errors"

	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusByAgentCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusByAgentCommand must be created via NewUpdateOrderStatusByAgentCommand constructor",
	)
)

// UpdateOrderStatusByAgentCommand represents a delivery agent's request to
// advance an order's status. The agent identity is an explicit parameter, not
// ambient context: the caller authenticates the agent and passes its id here.
type UpdateOrderStatusByAgentCommand struct { //nolint:recvcheck //using for validation
	agentID   int64
	orderID   int64
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusByAgentCommand creates a status-update command for a
// delivery agent. Ids must be positive; a status value outside the seven
// recognized states is rejected as invalid here, before any business check.
func NewUpdateOrderStatusByAgentCommand(
	agentID int64,
	orderID int64,
	newStatus order.Status,
) (UpdateOrderStatusByAgentCommand, error) {
	cmd := UpdateOrderStatusByAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusByAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusByAgentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusByAgentCommandIsNotConstructed)
}

// AgentID returns the acting delivery agent's id.
func (c UpdateOrderStatusByAgentCommand) AgentID() int64 {
	return c.agentID
}

// OrderID returns the target order's id.
func (c UpdateOrderStatusByAgentCommand) OrderID() int64 {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusByAgentCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateOrderStatusByAgentCommand) setAgentID(agentID int64) error {
	if agentID <= 0 {
		return errs.NewValueIsInvalidError("agent id")
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateOrderStatusByAgentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusByAgentCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
