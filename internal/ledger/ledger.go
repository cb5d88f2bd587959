// Package ledger exposes read-only aggregates over the append-only
// financial records. Totals are computed on demand, never maintained
// incrementally, and no correction or reversal mechanism exists.
package ledger

import (
	"gorm.io/gorm"

	"github.com/hakikifaturrahman/simlog/internal/model"
)

// Totals holds the aggregate financial position.
type Totals struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}

// ComputeTotals sums all financial records by transaction type.
func ComputeTotals(db *gorm.DB) (Totals, error) {
	var totals Totals

	err := db.Model(&model.FinancialRecord{}).
		Where("transaction_type = ?", model.TransactionTypeIncome).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totals.TotalIncome).Error
	if err != nil {
		return totals, err
	}

	err = db.Model(&model.FinancialRecord{}).
		Where("transaction_type = ?", model.TransactionTypeExpense).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totals.TotalExpenses).Error
	if err != nil {
		return totals, err
	}

	totals.NetProfit = totals.TotalIncome - totals.TotalExpenses
	return totals, nil
}

// Records returns all financial records, newest first.
func Records(db *gorm.DB) ([]model.FinancialRecord, error) {
	var records []model.FinancialRecord
	err := db.Order("transaction_date desc").Find(&records).Error
	return records, err
}
