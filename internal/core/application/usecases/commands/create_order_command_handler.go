package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It resolves the sender (which must be registered), resolves the receiver
// (registered account or guest contact), enforces the structural completeness
// check and persists the order in Created status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, accounts, logger)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // sender is not a registered account
//	case errors.Is(err, errs.ErrValidationFailed):
//	    // structurally incomplete draft
//	case err != nil:
//	    // persistence failure
//	default:
//	    fmt.Printf("order %d created", created.ID())
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	accounts   ports.AccountDirectory
	resolver   services.ReceiverResolver
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	accounts ports.AccountDirectory,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		accounts:   accounts,
		resolver:   services.NewReceiverResolver(),
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order creation command.
// Fails with a not-found kind when the sender does not resolve; an unresolved
// receiver is the valid guest case and never an error. Returns the persisted
// order carrying its store-assigned id, and emits an informational audit
// record on success.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sender, err := h.accounts.Get(ctx, cmd.SenderID())
	if err != nil {
		return nil, err
	}

	var receiverAccount *account.Account
	if id := cmd.ReceiverAccountID(); id != nil {
		receiverAccount, err = h.accounts.Get(ctx, *id)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	resolved := h.resolver.Resolve(receiverAccount, cmd.ReceiverName(), cmd.ReceiverPhone())

	newOrder, err := order.NewDeliveryOrder(
		sender.ID(),
		sender.Name(),
		resolved.Info,
		resolved.AccountID,
		cmd.Item(),
		cmd.Start(),
		cmd.End(),
		cmd.Delivery(),
	)
	if err != nil {
		return nil, err
	}

	if valid, message := newOrder.CheckCompleteness(); !valid {
		return nil, errs.NewValidationFailedError(message)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	persisted, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "delivery order created",
		"order_id", persisted.ID(),
		"tracking_number", persisted.TrackingNumber(),
		"sender_id", persisted.SenderID(),
		"guest_receiver", persisted.ReceiverAccountID() == nil,
	)

	return persisted, nil
}
