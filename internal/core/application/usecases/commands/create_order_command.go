package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new delivery order.
// It carries the pre-parsed order draft: the acting sender, the receiver
// identifier (possibly absent) with its fallback contact record, the item
// description, the route endpoints and the computed delivery figures.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(senderID, nil, "Abun", "0123456495",
//	    item, start, end, delivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order draft: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	senderID          int64
	receiverAccountID *int64
	receiverName      string
	receiverPhone     string
	item              order.ItemInfo
	start             kernel.Coordinates
	end               kernel.Coordinates
	delivery          order.DeliveryInfo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// The sender id must be positive; a non-nil receiver account id must be
// positive too. The fallback contact record may be empty when the receiver
// id is expected to resolve: completeness of the final order is checked by
// the handler after receiver resolution.
func NewCreateOrderCommand(
	senderID int64,
	receiverAccountID *int64,
	receiverName string,
	receiverPhone string,
	item order.ItemInfo,
	start kernel.Coordinates,
	end kernel.Coordinates,
	delivery order.DeliveryInfo,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		receiverName:  receiverName,
		receiverPhone: receiverPhone,
		item:          item,
		start:         start,
		end:           end,
		delivery:      delivery,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderID(senderID),
		cmd.setReceiverAccountID(receiverAccountID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// SenderID returns the acting sender's account id.
func (c CreateOrderCommand) SenderID() int64 {
	return c.senderID
}

// ReceiverAccountID returns the receiver identifier, nil when absent.
func (c CreateOrderCommand) ReceiverAccountID() *int64 {
	return c.receiverAccountID
}

// ReceiverName returns the fallback receiver display name.
func (c CreateOrderCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the fallback receiver phone number.
func (c CreateOrderCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// Item returns the physical item description.
func (c CreateOrderCommand) Item() order.ItemInfo {
	return c.item
}

// Start returns the route's starting point.
func (c CreateOrderCommand) Start() kernel.Coordinates {
	return c.start
}

// End returns the route's destination point.
func (c CreateOrderCommand) End() kernel.Coordinates {
	return c.end
}

// Delivery returns the computed delivery figures.
func (c CreateOrderCommand) Delivery() order.DeliveryInfo {
	return c.delivery
}

func (c *CreateOrderCommand) setSenderID(senderID int64) error {
	if senderID <= 0 {
		return errs.NewValueIsInvalidError("sender id")
	}

	c.senderID = senderID
	return nil
}

func (c *CreateOrderCommand) setReceiverAccountID(receiverAccountID *int64) error {
	if receiverAccountID != nil && *receiverAccountID <= 0 {
		return errs.NewValueIsInvalidError("receiver account id")
	}

	c.receiverAccountID = receiverAccountID
	return nil
}
