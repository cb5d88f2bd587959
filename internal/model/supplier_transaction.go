package model

import "time"

// SupplierTransaction records the supplier's share of a confirmed
// order: total cost minus the logistics surcharge. Append-only,
// exactly one per order.
type SupplierTransaction struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	SupplierID      uint      `json:"supplier_id" gorm:"index;not null"`
	OrderID         uint      `json:"order_id" gorm:"index;not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	TransactionDate time.Time `json:"transaction_date"`
}
