package queries

import (
	"context"
	"database/sql"
	"time"

	"parcel/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetSenderOrdersQueryHandler reads a sender's orders straight from the
// database, bypassing the aggregate. Listing is a read model concern and
// does not need domain invariants re-validated per row.
//
// Example:
//
//	handler := NewGetSenderOrdersQueryHandler(db)
//	query, _ := NewGetSenderOrdersQuery(senderID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to list sender orders: %v", err)
//	    return err
//	}
type GetSenderOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSenderOrdersQueryHandler creates a handler for sender order listings.
func NewGetSenderOrdersQueryHandler(db *gorm.DB) GetSenderOrdersQueryHandler {
	return GetSenderOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Soft-deleted orders are excluded and
// results are sorted newest-first by modification time.
func (h GetSenderOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSenderOrdersQuery,
) ([]GetSenderOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetSenderOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			receiver_name,
			receiver_phone,
			agent_id,
			end_address,
			delivery_price,
			modified_at
		FROM orders
		WHERE sender_id = ? AND is_deleted = false
		ORDER BY modified_at DESC, id DESC
	`, query.SenderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSenderOrdersQueryResponse
		var status int
		var agentID sql.NullInt64
		var modifiedAt time.Time

		err = rows.Scan(
			&resp.ID,
			&resp.TrackingNumber,
			&status,
			&resp.ReceiverName,
			&resp.ReceiverPhone,
			&agentID,
			&resp.EndAddress,
			&resp.DeliveryPrice,
			&modifiedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		if agentID.Valid {
			id := agentID.Int64
			resp.AgentID = &id
		}
		resp.ModifiedAt = modifiedAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
