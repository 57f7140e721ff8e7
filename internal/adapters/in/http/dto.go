package http

import (
	"time"

	"parcel/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error payload. Internal failure detail never
// crosses this boundary.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for placing a delivery order.
// ReceiverAccountID is optional; when absent or unresolvable the receiver is
// a guest identified by name and phone.
type CreateOrderRequest struct {
	ReceiverAccountID *int64             `json:"receiver_account_id,omitempty"`
	ReceiverName      string             `json:"receiver_name"`
	ReceiverPhone     string             `json:"receiver_phone"`
	Item              ItemPayload        `json:"item"`
	Start             CoordinatesPayload `json:"start"`
	End               CoordinatesPayload `json:"end"`
	Delivery          DeliveryPayload    `json:"delivery"`
}

// ItemPayload describes the cargo being sent.
type ItemPayload struct {
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"`
	Remark   string  `json:"remark,omitempty"`
}

// CoordinatesPayload is a geographic point with a display address.
type CoordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// DeliveryPayload carries the precomputed route figures.
type DeliveryPayload struct {
	Distance float64 `json:"distance"`
	Weight   float64 `json:"weight"`
	Price    float64 `json:"price"`
}

// UpdateStatusRequest names the target status for a lifecycle transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the outward representation of a delivery order.
type OrderResponse struct {
	ID             int64     `json:"id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	SenderID       int64     `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	ReceiverName   string    `json:"receiver_name"`
	ReceiverPhone  string    `json:"receiver_phone"`
	AgentID        *int64    `json:"agent_id,omitempty"`
	EndAddress     string    `json:"end_address"`
	Price          float64   `json:"price"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// OrderListItem is one row of a sender's order listing.
type OrderListItem struct {
	ID             int64     `json:"id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	ReceiverName   string    `json:"receiver_name"`
	ReceiverPhone  string    `json:"receiver_phone"`
	AgentID        *int64    `json:"agent_id,omitempty"`
	EndAddress     string    `json:"end_address"`
	Price          float64   `json:"price"`
	ModifiedAt     time.Time `json:"modified_at"`
}

func orderToResponse(o *order.DeliveryOrder) OrderResponse {
	return OrderResponse{
		ID:             o.ID(),
		TrackingNumber: o.TrackingNumber(),
		Status:         o.Status().String(),
		SenderID:       o.SenderID(),
		SenderName:     o.SenderName(),
		ReceiverName:   o.Receiver().Name(),
		ReceiverPhone:  o.Receiver().Phone().Normalized(),
		AgentID:        o.AgentID(),
		EndAddress:     o.End().Address(),
		Price:          o.Delivery().Price(),
		ModifiedAt:     o.ModifiedAt(),
	}
}

// statusNames maps wire names to domain statuses. Unknown is deliberately
// absent: it is never a valid transition target.
var statusNames = map[string]order.Status{
	"Created":    order.Created,
	"Accepted":   order.Accepted,
	"InProgress": order.InProgress,
	"Delivered":  order.Delivered,
	"Exception":  order.Exception,
	"Canceled":   order.Canceled,
	"Closed":     order.Closed,
}

func parseStatus(name string) (order.Status, bool) {
	s, ok := statusNames[name]
	return s, ok
}
