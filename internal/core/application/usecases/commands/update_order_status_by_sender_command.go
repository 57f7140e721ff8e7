package commands

import (
	"errors"

	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusBySenderCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusBySenderCommand must be created via NewUpdateOrderStatusBySenderCommand constructor",
	)
)

// UpdateOrderStatusBySenderCommand represents a sender's request to change
// the status of an order they own.
type UpdateOrderStatusBySenderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	senderID  int64
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusBySenderCommand creates a status-update command for a
// sender. Ids must be positive; unrecognized status values are rejected here.
func NewUpdateOrderStatusBySenderCommand(
	orderID int64,
	newStatus order.Status,
	senderID int64,
) (UpdateOrderStatusBySenderCommand, error) {
	cmd := UpdateOrderStatusBySenderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSenderID(senderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusBySenderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusBySenderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusBySenderCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c UpdateOrderStatusBySenderCommand) OrderID() int64 {
	return c.orderID
}

// SenderID returns the acting sender's account id.
func (c UpdateOrderStatusBySenderCommand) SenderID() int64 {
	return c.senderID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusBySenderCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateOrderStatusBySenderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusBySenderCommand) setSenderID(senderID int64) error {
	if senderID <= 0 {
		return errs.NewValueIsInvalidError("sender id")
	}

	c.senderID = senderID
	return nil
}

func (c *UpdateOrderStatusBySenderCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
