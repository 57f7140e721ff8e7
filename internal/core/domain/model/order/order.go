package order

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned when a DeliveryOrder instance was not
	// created through NewDeliveryOrder or RestoreDeliveryOrder.
	ErrOrderIsNotConstructed = errors.New(
		"DeliveryOrder must be created via NewDeliveryOrder or RestoreDeliveryOrder")
)

// Completeness messages reported by CheckCompleteness, one per field group.
const (
	msgCoordinatesError  = "coordinates error"
	msgReceiverInfoError = "receiver info error"
	msgDeliveryInfoError = "delivery info error"
)

// DeliveryOrder is the aggregate root of the order lifecycle. It tracks a
// physical delivery from creation through completion and owns every status
// change made to it.
//
// Invariants:
//   - Always references a sender account after creation
//   - Status only changes through the role-scoped transition tables,
//     except for agent assignment which forces Accepted
//   - The receiver's normalized phone number is always derived from the
//     raw number, never set independently
//   - The last-modified timestamp is bumped on every mutation
//
// The numeric id is assigned by the store on first persistence; a freshly
// created order carries id 0 until then. The tracking number is the public
// reference and is assigned at construction.
type DeliveryOrder struct {
	id             int64
	trackingNumber string

	senderID   int64
	senderName string

	receiverAccountID *int64
	receiver          ReceiverInfo

	agentID *int64

	item     ItemInfo
	start    kernel.Coordinates
	end      kernel.Coordinates
	delivery DeliveryInfo

	status     Status
	isDeleted  bool
	modifiedAt time.Time

	isConstructed bool
}

// NewDeliveryOrder creates a DeliveryOrder in Created status for the given
// sender. The receiver record must already be resolved (see
// services.ReceiverResolver); receiverAccountID is nil for guest receivers.
//
// The order is structurally permissive at this point: value objects are
// validated individually, while cross-field completeness is reported by
// CheckCompleteness and enforced by the creation use case.
func NewDeliveryOrder(
	senderID int64,
	senderName string,
	receiver ReceiverInfo,
	receiverAccountID *int64,
	item ItemInfo,
	start kernel.Coordinates,
	end kernel.Coordinates,
	delivery DeliveryInfo,
) (*DeliveryOrder, error) {
	if senderID <= 0 {
		return nil, errs.NewValueIsInvalidError("sender id")
	}

	return &DeliveryOrder{
		trackingNumber:    uuid.NewString(),
		senderID:          senderID,
		senderName:        senderName,
		receiverAccountID: receiverAccountID,
		receiver:          receiver,
		item:              item,
		start:             start,
		end:               end,
		delivery:          delivery,
		status:            Created,
		modifiedAt:        time.Now().UTC(),
		isConstructed:     true,
	}, nil
}

// RestoreDeliveryOrder reconstructs a DeliveryOrder from persistence.
// The status must be one of the recognized states; this guards against
// corrupted rows reaching the state machine.
func RestoreDeliveryOrder(
	id int64,
	trackingNumber string,
	senderID int64,
	senderName string,
	receiver ReceiverInfo,
	receiverAccountID *int64,
	agentID *int64,
	item ItemInfo,
	start kernel.Coordinates,
	end kernel.Coordinates,
	delivery DeliveryInfo,
	status Status,
	isDeleted bool,
	modifiedAt time.Time,
) (*DeliveryOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if senderID <= 0 {
		return nil, errs.NewValueIsInvalidError("sender id")
	}

	return &DeliveryOrder{
		id:                id,
		trackingNumber:    trackingNumber,
		senderID:          senderID,
		senderName:        senderName,
		receiverAccountID: receiverAccountID,
		receiver:          receiver,
		agentID:           agentID,
		item:              item,
		start:             start,
		end:               end,
		delivery:          delivery,
		status:            status,
		isDeleted:         isDeleted,
		modifiedAt:        modifiedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the DeliveryOrder instance was properly constructed.
func (o *DeliveryOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their persisted identifiers.
func (o *DeliveryOrder) IsEqual(other *DeliveryOrder) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned numeric identifier, 0 before persistence.
func (o *DeliveryOrder) ID() int64 { return o.id }

// TrackingNumber returns the public order reference.
func (o *DeliveryOrder) TrackingNumber() string { return o.trackingNumber }

// SenderID returns the owning sender's account id.
func (o *DeliveryOrder) SenderID() int64 { return o.senderID }

// SenderName returns the denormalized sender name snapshot.
func (o *DeliveryOrder) SenderName() string { return o.senderName }

// ReceiverAccountID returns the bound receiver account id, or nil for a
// guest receiver.
func (o *DeliveryOrder) ReceiverAccountID() *int64 { return o.receiverAccountID }

// Receiver returns the canonical receiver contact record.
func (o *DeliveryOrder) Receiver() ReceiverInfo { return o.receiver }

// AgentID returns the assigned delivery agent's id, or nil if unassigned.
func (o *DeliveryOrder) AgentID() *int64 { return o.agentID }

// Item returns the physical item description.
func (o *DeliveryOrder) Item() ItemInfo { return o.item }

// Start returns the route's starting point.
func (o *DeliveryOrder) Start() kernel.Coordinates { return o.start }

// End returns the route's destination point.
func (o *DeliveryOrder) End() kernel.Coordinates { return o.end }

// Delivery returns the computed delivery figures.
func (o *DeliveryOrder) Delivery() DeliveryInfo { return o.delivery }

// Status returns the current lifecycle status.
func (o *DeliveryOrder) Status() Status { return o.status }

// IsDeleted reports whether the order is soft-deleted.
func (o *DeliveryOrder) IsDeleted() bool { return o.isDeleted }

// ModifiedAt returns the last-modified timestamp.
func (o *DeliveryOrder) ModifiedAt() time.Time { return o.modifiedAt }

// UpdateStatusByAgent applies a delivery-agent-driven status change per the
// agent transition table. On rejection the order is left wholly unmodified.
func (o *DeliveryOrder) UpdateStatusByAgent(target Status) error {
	newStatus, err := o.status.AdvanceByAgent(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// UpdateStatusBySender applies a sender-driven status change per the sender
// transition table. On rejection the order is left wholly unmodified.
func (o *DeliveryOrder) UpdateStatusBySender(target Status) error {
	newStatus, err := o.status.AdvanceBySender(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AssignAgent binds a delivery agent to the order and forces the status to
// Accepted regardless of the prior status. This is an unconditional override
// and the only entry point that bypasses the transition tables; repeating it
// with a different agent reassigns while the status stays Accepted.
func (o *DeliveryOrder) AssignAgent(agentID int64) error {
	if agentID <= 0 {
		return errs.NewValueIsInvalidError("delivery agent id")
	}

	o.agentID = &agentID
	o.status = Accepted
	o.touch()
	return nil
}

// Close moves a settled order (Delivered, Exception or Canceled) into the
// terminal Closed status. Used by the background closing job; neither role's
// transition table reaches Closed.
func (o *DeliveryOrder) Close() error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// CheckCompleteness flags structurally incomplete orders before persistence:
// missing route coordinates, missing receiver name or normalized phone, and
// zero-valued delivery distance or weight. When several groups fail, the
// message of the last failing group is reported.
func (o *DeliveryOrder) CheckCompleteness() (bool, string) {
	valid := true
	message := ""

	if o.start.Validate() != nil || o.end.Validate() != nil {
		valid = false
		message = msgCoordinatesError
	}

	if o.receiver.Name() == "" || o.receiver.Phone().IsZero() {
		valid = false
		message = msgReceiverInfoError
	}

	if o.delivery.Distance() == 0 || o.delivery.Weight() == 0 {
		valid = false
		message = msgDeliveryInfoError
	}

	return valid, message
}

func (o *DeliveryOrder) touch() {
	o.modifiedAt = time.Now().UTC()
}
