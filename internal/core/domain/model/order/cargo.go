package order

import (
	"errors"
	"fmt"

	"parcel/internal/pkg/errs"
)

// ItemInfo describes the physical item being delivered: dimensions, weight,
// quantity and free-form remarks. It is a value object owned by a
// DeliveryOrder and replaced wholesale on update.
type ItemInfo struct {
	length   float64
	width    float64
	height   float64
	weight   float64
	quantity int
	remark   string
}

// NewItemInfo creates an ItemInfo value.
// Dimensions and weight must not be negative; quantity must be at least 1.
func NewItemInfo(length, width, height, weight float64, quantity int, remark string) (ItemInfo, error) {
	if err := errors.Join(
		nonNegative("length", length),
		nonNegative("width", width),
		nonNegative("height", height),
		nonNegative("weight", weight),
	); err != nil {
		return ItemInfo{}, err
	}

	if quantity < 1 {
		return ItemInfo{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	return ItemInfo{
		length:   length,
		width:    width,
		height:   height,
		weight:   weight,
		quantity: quantity,
		remark:   remark,
	}, nil
}

// Length returns the item length.
func (i ItemInfo) Length() float64 { return i.length }

// Width returns the item width.
func (i ItemInfo) Width() float64 { return i.width }

// Height returns the item height.
func (i ItemInfo) Height() float64 { return i.height }

// Weight returns the item weight.
func (i ItemInfo) Weight() float64 { return i.weight }

// Quantity returns the number of items.
func (i ItemInfo) Quantity() int { return i.quantity }

// Remark returns the sender's free-form note about the item.
func (i ItemInfo) Remark() string { return i.remark }

// DeliveryInfo carries the computed delivery figures for an order:
// route distance, billable weight and price. It is computed by upstream
// collaborators (the core does no pricing or routing) and stored as-is.
type DeliveryInfo struct {
	distance float64
	weight   float64
	price    float64
}

// NewDeliveryInfo creates a DeliveryInfo value.
// Negative figures are rejected; zero values are permitted and flagged later
// by the order completeness check.
func NewDeliveryInfo(distance, weight, price float64) (DeliveryInfo, error) {
	if err := errors.Join(
		nonNegative("distance", distance),
		nonNegative("weight", weight),
		nonNegative("price", price),
	); err != nil {
		return DeliveryInfo{}, err
	}

	return DeliveryInfo{
		distance: distance,
		weight:   weight,
		price:    price,
	}, nil
}

// Distance returns the computed route distance.
func (d DeliveryInfo) Distance() float64 { return d.distance }

// Weight returns the billable weight.
func (d DeliveryInfo) Weight() float64 { return d.weight }

// Price returns the delivery price.
func (d DeliveryInfo) Price() float64 { return d.price }

func nonNegative(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v is negative", value))
	}
	return nil
}
