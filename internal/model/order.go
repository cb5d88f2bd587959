package model

import "time"

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// Package types determining the flat logistics surcharge
const (
	PackageTypeBasic    = "basic"
	PackageTypeStandard = "standard"
	PackageTypePremium  = "premium"
)

// Order is a purchase order placed by a user against the catalog.
// UnitPrice is a snapshot of the product price at creation time and
// TotalCost = UnitPrice*Quantity + LogisticsCost, fixed at creation.
type Order struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	SupplierID    uint      `json:"supplier_id" gorm:"index;not null"`
	ProductID     uint      `json:"product_id" gorm:"index;not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	UnitPrice     float64   `json:"unit_price" gorm:"not null"`
	TotalCost     float64   `json:"total_cost" gorm:"not null"`
	LogisticsCost float64   `json:"logistics_cost" gorm:"default:0"`
	PackageType   string    `json:"package_type" gorm:"type:varchar(20)"`
	Status        string    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	OrderDate     time.Time `json:"order_date"`
}
