package model

import "time"

// Product represents an item in the catalog. Stock is informational:
// order creation and confirmation never decrement it.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Description   string    `json:"description" gorm:"type:text"`
	StockQuantity int       `json:"stock_quantity" gorm:"default:0"`
	MinStockLevel int       `json:"min_stock_level" gorm:"default:10"`
	UnitPrice     float64   `json:"unit_price" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LowStock reports whether the product has fallen to or below its
// configured minimum stock level.
func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}
