package queries

import (
	"errors"
	"time"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrGetSenderOrdersQueryIsNotConstructed = errors.New(
		"GetSenderOrdersQuery must be created via NewGetSenderOrdersQuery constructor",
	)
)

// GetSenderOrdersQuery retrieves every live order created by one sender.
// Soft-deleted orders are excluded from this listing.
//
// Example:
//
//	query, err := NewGetSenderOrdersQuery(senderID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s: %s\n", o.TrackingNumber, o.Status)
//	}
type GetSenderOrdersQuery struct {
	senderID int64

	guard guard.ConstructorGuard
}

// NewGetSenderOrdersQuery creates a query for one sender's orders.
func NewGetSenderOrdersQuery(senderID int64) (GetSenderOrdersQuery, error) {
	if senderID <= 0 {
		return GetSenderOrdersQuery{}, errs.NewValueIsInvalidError("senderId")
	}

	return GetSenderOrdersQuery{
		senderID: senderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// SenderID returns the sender whose orders are requested.
func (q GetSenderOrdersQuery) SenderID() int64 {
	return q.senderID
}

// Validate ensures the query was created through the constructor.
func (q GetSenderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSenderOrdersQueryIsNotConstructed)
}

// GetSenderOrdersQueryResponse is one row of a sender's order listing.
type GetSenderOrdersQueryResponse struct {
	ID             int64
	TrackingNumber string
	Status         string
	ReceiverName   string
	ReceiverPhone  string
	AgentID        *int64
	EndAddress     string
	DeliveryPrice  float64
	ModifiedAt     time.Time
}
