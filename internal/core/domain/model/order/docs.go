// Package order provides the delivery-order aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - DeliveryOrder: the aggregate root owning parties, cargo, route and status
//   - Status: seven-state machine with role-scoped transition tables
//   - ReceiverInfo, ItemInfo, DeliveryInfo: value objects owned by the order
//
// Key business rules:
//   - Created is the unique initial state; Closed is the unique terminal state
//   - Agents advance Created -> Accepted -> InProgress -> Delivered|Exception
//   - Senders may cancel a Created order or dispute a Delivered one
//   - Agent assignment forces Accepted unconditionally, bypassing the tables
//   - The receiver's normalized phone number is always derived, never stored raw
//
// The transition predicates are pure package-level tables keyed by role,
// testable in isolation from persistence-bound operations.
package order
