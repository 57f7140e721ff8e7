// Package services provides domain services that orchestrate business rules
// across multiple domain entities. It implements logic that doesn't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - ReceiverResolver: decides whether an order's receiver is a registered
//     account or a guest contact and builds the canonical receiver record
package services

import (
	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/order"
)

// ResolvedReceiver is the outcome of receiver resolution: the canonical
// contact record for the order plus the bound account id, nil for guests.
type ResolvedReceiver struct {
	Info      order.ReceiverInfo
	AccountID *int64
}

// ReceiverResolver builds the canonical receiver record at order-creation
// time. It is a pure domain service: the identity lookup happens in the use
// case layer, and the (possibly nil) result is passed in here.
//
// Business rules:
//   - A resolved account wins over caller-supplied contact fields: the
//     canonical name and phone are taken from the account
//   - An unresolved receiver is a valid guest case, not a failure; the
//     caller-supplied name and phone are used verbatim
//   - In both branches the phone number passes through normalization
type ReceiverResolver struct{}

// NewReceiverResolver creates a new ReceiverResolver instance.
func NewReceiverResolver() ReceiverResolver {
	return ReceiverResolver{}
}

// Resolve produces the order's receiver record from an optional registered
// account and the caller-supplied fallback contact fields.
//
// Parameters:
//   - receiverAccount: the resolved receiver account, or nil when the
//     identifier did not resolve (guest receiver)
//   - fallbackName, fallbackPhone: caller-supplied contact record
func (ReceiverResolver) Resolve(
	receiverAccount *account.Account,
	fallbackName string,
	fallbackPhone string,
) ResolvedReceiver {
	if receiverAccount != nil {
		id := receiverAccount.ID()
		return ResolvedReceiver{
			Info:      order.NewReceiverInfo(receiverAccount.Name(), receiverAccount.Phone().Raw()),
			AccountID: &id,
		}
	}

	return ResolvedReceiver{
		Info: order.NewReceiverInfo(fallbackName, fallbackPhone),
	}
}
