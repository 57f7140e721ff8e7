package order

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with two independent, role-scoped transition
// tables, because the sender and the delivery agent have disjoint authority
// over an order.
//
// Agent-driven transitions:
//
//	Created ──> Accepted ──> InProgress ──┬──> Delivered
//	                                      └──> Exception
//
// Sender-driven transitions:
//
//	Created ──> Canceled
//	Delivered ──> Exception
//
// Closed is the universal terminal state. Neither role can reach it; settled
// orders are moved into Closed by the background closing job.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned when an order is created.
	Created

	// Accepted indicates a delivery agent has taken the order.
	Accepted

	// InProgress indicates the order is being transported.
	InProgress

	// Delivered indicates the order reached its destination.
	Delivered

	// Exception indicates delivery failed or was disputed.
	Exception

	// Canceled indicates the sender withdrew the order before acceptance.
	Canceled

	// Closed is the terminal state; no transitions leave it.
	Closed
)

// agentTransitions is the transition table for delivery-agent-driven updates.
// Absent from-states allow no transitions for this role.
var agentTransitions = map[Status][]Status{
	Created:    {Accepted},
	Accepted:   {InProgress},
	InProgress: {Delivered, Exception},
}

// senderTransitions is the transition table for sender-driven updates.
var senderTransitions = map[Status][]Status{
	Created:   {Canceled},
	Delivered: {Exception},
}

// settledStatuses are the states the closing job may move into Closed.
var settledStatuses = map[Status]bool{
	Delivered: true,
	Exception: true,
	Canceled:  true,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Accepted:   "Accepted",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Exception:  "Exception",
		Canceled:   "Canceled",
		Closed:     "Closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Accepted:   "Accepted",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Exception:  "Exception",
		Canceled:   "Canceled",
		Closed:     "Closed",
	}
}

// Validate checks that the Status is one of the seven recognized states.
// Any other value is a programming error, not a business rejection.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettled reports whether the status is one the closing job may close:
// Delivered, Exception or Canceled.
func (s Status) IsSettled() bool {
	return settledStatuses[s]
}

// CanAgentTransition reports whether a delivery agent may move an order
// from s to target. Both statuses must already be validated.
func CanAgentTransition(s, target Status) bool {
	return containsStatus(agentTransitions[s], target)
}

// CanSenderTransition reports whether a sender may move an order
// from s to target. Both statuses must already be validated.
func CanSenderTransition(s, target Status) bool {
	return containsStatus(senderTransitions[s], target)
}

// AdvanceByAgent transitions the status to target per the agent table.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.ValueIsInvalidError) if either status is unrecognized
//   - (0, *errs.InvalidTransitionError) if the pair is not in the agent table
func (s Status) AdvanceByAgent(target Status) (Status, error) {
	return s.advance(target, CanAgentTransition)
}

// AdvanceBySender transitions the status to target per the sender table.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.ValueIsInvalidError) if either status is unrecognized
//   - (0, *errs.InvalidTransitionError) if the pair is not in the sender table
func (s Status) AdvanceBySender(target Status) (Status, error) {
	return s.advance(target, CanSenderTransition)
}

// Close transitions a settled status to Closed.
// Only Delivered, Exception and Canceled orders can be closed.
func (s Status) Close() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if !s.IsSettled() {
		return 0, errs.NewInvalidTransitionError(s.String(), Closed.String())
	}

	return Closed, nil
}

func (s Status) advance(target Status, allowed func(from, to Status) bool) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !allowed(s, target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}

func containsStatus(statuses []Status, target Status) bool {
	for _, s := range statuses {
		if s == target {
			return true
		}
	}
	return false
}
