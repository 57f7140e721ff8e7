// Package orderrepo provides data transfer objects and mapping functions for
// delivery order persistence. This package implements the repository pattern
// for the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting delivery order
// aggregates. The id is store-assigned on insert; value objects are flattened
// into prefixed column groups.
type OrderDTO struct {
	ID                int64          `gorm:"primaryKey;autoIncrement"`
	TrackingNumber    string         `gorm:"uniqueIndex"`
	SenderID          int64          `gorm:"index"`
	SenderName        string
	ReceiverAccountID *int64 `gorm:"index"`
	ReceiverName      string
	ReceiverPhone     string // normalized form, used by listings
	ReceiverPhoneRaw  string // as supplied by the caller
	AgentID           *int64         `gorm:"index"`
	Item              ItemDTO        `gorm:"embedded;embeddedPrefix:item_"`
	Start             CoordinatesDTO `gorm:"embedded;embeddedPrefix:start_"`
	End               CoordinatesDTO `gorm:"embedded;embeddedPrefix:end_"`
	Delivery          DeliveryDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	Status            int            `gorm:"index"`
	IsDeleted         bool           `gorm:"index"`
	ModifiedAt        time.Time      `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the embedded cargo description within the order table.
type ItemDTO struct {
	Length   float64
	Width    float64
	Height   float64
	Weight   float64
	Quantity int
	Remark   string
}

// CoordinatesDTO represents an embedded geographic point within the order table.
type CoordinatesDTO struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// DeliveryDTO represents the embedded route computation within the order table.
type DeliveryDTO struct {
	Distance float64
	Weight   float64
	Price    float64
}

// fromDomain converts a delivery order aggregate to its database representation.
func fromDomain(o *order.DeliveryOrder) OrderDTO {
	return OrderDTO{
		ID:                o.ID(),
		TrackingNumber:    o.TrackingNumber(),
		SenderID:          o.SenderID(),
		SenderName:        o.SenderName(),
		ReceiverAccountID: o.ReceiverAccountID(),
		ReceiverName:      o.Receiver().Name(),
		ReceiverPhone:     o.Receiver().Phone().Normalized(),
		ReceiverPhoneRaw:  o.Receiver().Phone().Raw(),
		AgentID:           o.AgentID(),
		Item: ItemDTO{
			Length:   o.Item().Length(),
			Width:    o.Item().Width(),
			Height:   o.Item().Height(),
			Weight:   o.Item().Weight(),
			Quantity: o.Item().Quantity(),
			Remark:   o.Item().Remark(),
		},
		Start: CoordinatesDTO{
			Latitude:  o.Start().Latitude(),
			Longitude: o.Start().Longitude(),
			Address:   o.Start().Address(),
		},
		End: CoordinatesDTO{
			Latitude:  o.End().Latitude(),
			Longitude: o.End().Longitude(),
			Address:   o.End().Address(),
		},
		Delivery: DeliveryDTO{
			Distance: o.Delivery().Distance(),
			Weight:   o.Delivery().Weight(),
			Price:    o.Delivery().Price(),
		},
		Status:     int(o.Status()),
		IsDeleted:  o.IsDeleted(),
		ModifiedAt: o.ModifiedAt(),
	}
}

// toDomain converts a database DTO back into a delivery order aggregate,
// re-running the value object constructors so a corrupt row surfaces as an
// error instead of an invalid aggregate.
func toDomain(dto OrderDTO) (*order.DeliveryOrder, error) {
	item, err := order.NewItemInfo(
		dto.Item.Length,
		dto.Item.Width,
		dto.Item.Height,
		dto.Item.Weight,
		dto.Item.Quantity,
		dto.Item.Remark,
	)
	if err != nil {
		return nil, err
	}

	start, err := kernel.NewCoordinates(dto.Start.Latitude, dto.Start.Longitude, dto.Start.Address)
	if err != nil {
		return nil, err
	}

	end, err := kernel.NewCoordinates(dto.End.Latitude, dto.End.Longitude, dto.End.Address)
	if err != nil {
		return nil, err
	}

	delivery, err := order.NewDeliveryInfo(dto.Delivery.Distance, dto.Delivery.Weight, dto.Delivery.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreDeliveryOrder(
		dto.ID,
		dto.TrackingNumber,
		dto.SenderID,
		dto.SenderName,
		order.NewReceiverInfo(dto.ReceiverName, dto.ReceiverPhoneRaw),
		dto.ReceiverAccountID,
		dto.AgentID,
		item,
		start,
		end,
		delivery,
		order.Status(dto.Status),
		dto.IsDeleted,
		dto.ModifiedAt,
	)
}
