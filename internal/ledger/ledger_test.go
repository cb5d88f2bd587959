package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hakikifaturrahman/simlog/internal/model"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.FinancialRecord{}))
	return db
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty ledger yields zeroes", func(t *testing.T) {
		db := setupLedgerTestDB(t)

		totals, err := ComputeTotals(db)
		require.NoError(t, err)
		assert.Equal(t, float64(0), totals.TotalIncome)
		assert.Equal(t, float64(0), totals.TotalExpenses)
		assert.Equal(t, float64(0), totals.NetProfit)
	})

	t.Run("sums by transaction type", func(t *testing.T) {
		db := setupLedgerTestDB(t)

		records := []model.FinancialRecord{
			{OrderID: 1, TransactionType: model.TransactionTypeIncome, Amount: 130000, TransactionDate: time.Now()},
			{OrderID: 2, TransactionType: model.TransactionTypeIncome, Amount: 60000, TransactionDate: time.Now()},
			{OrderID: 3, TransactionType: model.TransactionTypeExpense, Amount: 25000, TransactionDate: time.Now()},
		}
		require.NoError(t, db.Create(&records).Error)

		totals, err := ComputeTotals(db)
		require.NoError(t, err)
		assert.Equal(t, float64(190000), totals.TotalIncome)
		assert.Equal(t, float64(25000), totals.TotalExpenses)
		assert.Equal(t, float64(165000), totals.NetProfit)
	})
}

func TestRecords(t *testing.T) {
	db := setupLedgerTestDB(t)

	older := model.FinancialRecord{OrderID: 1, TransactionType: model.TransactionTypeIncome, Amount: 100, TransactionDate: time.Now().Add(-time.Hour)}
	newer := model.FinancialRecord{OrderID: 2, TransactionType: model.TransactionTypeIncome, Amount: 200, TransactionDate: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	records, err := Records(db)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.OrderID, records[0].OrderID)
	assert.Equal(t, older.OrderID, records[1].OrderID)
}
