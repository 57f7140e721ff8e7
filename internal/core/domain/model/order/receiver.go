package order

import (
	"parcel/internal/core/domain/model/kernel"
)

// ReceiverInfo is the contact record for the party receiving an order.
// It is owned by a DeliveryOrder and has no independent lifecycle. The
// normalized phone number is always derived from the raw number through
// kernel.NewPhoneNumber, never set on its own.
//
// For a registered receiver, name and phone come from the account (account
// data wins over caller-supplied contact fields). For a guest receiver, the
// caller-supplied values are used verbatim, phone normalization aside.
type ReceiverInfo struct {
	name  string
	phone kernel.PhoneNumber
}

// NewReceiverInfo creates a ReceiverInfo, normalizing the phone number.
// Empty fields are permitted here; structural completeness is reported by
// DeliveryOrder.CheckCompleteness before persistence.
func NewReceiverInfo(name string, rawPhone string) ReceiverInfo {
	return ReceiverInfo{
		name:  name,
		phone: kernel.NewPhoneNumber(rawPhone),
	}
}

// Name returns the receiver's display name.
func (r ReceiverInfo) Name() string {
	return r.name
}

// Phone returns the receiver's contact number with its normalized form.
func (r ReceiverInfo) Phone() kernel.PhoneNumber {
	return r.phone
}
