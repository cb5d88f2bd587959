package model

import "time"

// Shipment statuses
const (
	ShipmentStatusPreparing = "preparing"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"
)

// Shipment tracks delivery of a confirmed order. One shipment is
// created per order at confirmation time.
type Shipment struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	OrderID           uint       `json:"order_id" gorm:"index;not null"`
	TrackingNumber    string     `json:"tracking_number" gorm:"type:varchar(50);uniqueIndex"`
	Status            string     `json:"status" gorm:"type:varchar(30);default:'preparing'"`
	ShippedDate       *time.Time `json:"shipped_date"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery"`
	CurrentLocation   string     `json:"current_location" gorm:"type:varchar(100)"`
}
