package model

import "time"

// Financial record transaction types
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// FinancialRecord is an append-only ledger entry. Exactly one income
// record is written per order, at confirmation.
type FinancialRecord struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	OrderID         uint      `json:"order_id" gorm:"index;not null"`
	TransactionType string    `json:"transaction_type" gorm:"type:varchar(20);not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Description     string    `json:"description" gorm:"type:text"`
	TransactionDate time.Time `json:"transaction_date"`
}
