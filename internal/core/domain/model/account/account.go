// Package account provides the read-only identity entities referenced by
// delivery orders: registered user accounts and delivery agents. The order
// core looks these up to resolve senders, receivers and agents, and never
// mutates them; their own lifecycle belongs to external directories.
package account

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	// ErrAccountIsNotConstructed is returned when using a zero-value Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrDeliveryAgentIsNotConstructed is returned when using a zero-value DeliveryAgent.
	ErrDeliveryAgentIsNotConstructed = errors.New("DeliveryAgent must be created via NewDeliveryAgent constructor")
)

// Account is a registered user known to the identity directory.
// Orders reference accounts by id as sender and, optionally, as receiver.
type Account struct {
	id    int64
	name  string
	phone kernel.PhoneNumber

	guard guard.ConstructorGuard
}

// NewAccount creates an Account reference with a positive id.
// The name may be empty for accounts that never completed their profile;
// the phone number is normalized on construction.
func NewAccount(id int64, name string, rawPhone string) (*Account, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("account id")
	}

	return &Account{
		id:    id,
		name:  name,
		phone: kernel.NewPhoneNumber(rawPhone),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Account was created via NewAccount.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account's unique identifier.
func (a *Account) ID() int64 {
	return a.id
}

// Name returns the account's display name.
func (a *Account) Name() string {
	return a.name
}

// Phone returns the account's contact number.
func (a *Account) Phone() kernel.PhoneNumber {
	return a.phone
}

// DeliveryAgent is a courier registered with the agent directory.
// Orders reference agents by id once assigned.
type DeliveryAgent struct {
	id   int64
	name string

	guard guard.ConstructorGuard
}

// NewDeliveryAgent creates a DeliveryAgent reference with a positive id.
func NewDeliveryAgent(id int64, name string) (*DeliveryAgent, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("delivery agent id")
	}

	return &DeliveryAgent{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryAgent was created via NewDeliveryAgent.
func (d *DeliveryAgent) Validate() error {
	if d == nil {
		return ErrDeliveryAgentIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryAgentIsNotConstructed)
}

// ID returns the agent's unique identifier.
func (d *DeliveryAgent) ID() int64 {
	return d.id
}

// Name returns the agent's display name.
func (d *DeliveryAgent) Name() string {
	return d.name
}
