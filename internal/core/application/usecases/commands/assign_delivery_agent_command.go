package commands

import (
	"errors"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrAssignDeliveryAgentCommandIsNotConstructed = errors.New(
		"AssignDeliveryAgentCommand must be created via NewAssignDeliveryAgentCommand constructor",
	)
)

// AssignDeliveryAgentCommand represents a request to bind a delivery agent
// to an order.
type AssignDeliveryAgentCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	agentID int64

	guard guard.ConstructorGuard
}

// NewAssignDeliveryAgentCommand creates an assignment command.
// Both ids must be positive.
func NewAssignDeliveryAgentCommand(orderID, agentID int64) (AssignDeliveryAgentCommand, error) {
	cmd := AssignDeliveryAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignDeliveryAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryAgentCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c AssignDeliveryAgentCommand) OrderID() int64 {
	return c.orderID
}

// AgentID returns the delivery agent to bind.
func (c AssignDeliveryAgentCommand) AgentID() int64 {
	return c.agentID
}

func (c *AssignDeliveryAgentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryAgentCommand) setAgentID(agentID int64) error {
	if agentID <= 0 {
		return errs.NewValueIsInvalidError("agent id")
	}

	c.agentID = agentID
	return nil
}
