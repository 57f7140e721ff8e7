// Package ports defines the interfaces between the order core and its
// external collaborators: persistence and the identity directories.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for delivery-order
// aggregates. The store assigns numeric ids on insertion and serializes
// concurrent writers at the row level; the core defines no locking of
// its own.
type OrderRepository interface {
	// Add persists a new order and returns the stored aggregate carrying
	// its store-assigned id.
	Add(ctx context.Context, aggregate *order.DeliveryOrder) (*order.DeliveryOrder, error)

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.DeliveryOrder) error

	// Get retrieves an order by id, excluding soft-deleted orders.
	// All mutation paths except agent assignment resolve orders through Get.
	Get(ctx context.Context, id int64) (*order.DeliveryOrder, error)

	// GetAny retrieves an order directly by id, including soft-deleted
	// orders. Used by the agent-assignment path, which historically does
	// not filter on the soft-delete flag.
	GetAny(ctx context.Context, id int64) (*order.DeliveryOrder, error)

	// GetAllSettledBefore retrieves orders in a settled status
	// (Delivered, Exception, Canceled) not modified since cutoff.
	// Used by the closing job to find orders ready to be closed.
	GetAllSettledBefore(ctx context.Context, cutoff time.Time) ([]*order.DeliveryOrder, error)

	// GetAllBySender retrieves all non-deleted orders owned by the sender.
	GetAllBySender(ctx context.Context, senderID int64) ([]*order.DeliveryOrder, error)
}
