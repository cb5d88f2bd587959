package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hakikifaturrahman/simlog/internal/model"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Supplier{},
		&model.Order{},
		&model.Shipment{},
		&model.FinancialRecord{},
		&model.SupplierTransaction{},
	))
	return db
}

func writeSeedFiles(t *testing.T) string {
	dir := t.TempDir()

	files := map[string]string{
		"users.json": `[
			{"id": 1, "username": "admin", "email": "admin@simlog.com", "password_hash": "hash", "role": "admin", "created_at": "2024-01-01T08:00:00Z"},
			{"id": 2, "username": "budi", "email": "budi@example.com", "password_hash": "hash", "role": "user", "created_at": "2024-01-02T08:00:00Z"}
		]`,
		"products.json": `[
			{"id": 1, "name": "Pallet Jack", "description": "Manual pallet jack", "stock_quantity": 40, "min_stock_level": 10, "unit_price": 10000, "created_at": "2024-01-01T08:00:00Z", "updated_at": "2024-01-01T08:00:00Z"}
		]`,
		"suppliers.json": `[
			{"id": 1, "name": "PT Maju Jaya", "contact_person": "Budi", "email": "sales@majujaya.co.id", "phone": "0812", "address": "Jakarta", "rating": 4.5, "created_at": "2024-01-01T08:00:00Z"}
		]`,
		"orders.json": `[
			{"id": 1, "user_id": 2, "supplier_id": 1, "product_id": 1, "quantity": 3, "unit_price": 10000, "total_cost": 130000, "logistics_cost": 100000, "package_type": "standard", "status": "confirmed", "order_date": "2024-02-01T08:00:00Z"}
		]`,
		"shipments.json": `[
			{"id": 1, "order_id": 1, "tracking_number": "SIMLOGAB12CD34", "status": "in_transit", "shipped_date": "2024-02-02T08:00:00Z", "estimated_delivery": "2024-02-08T08:00:00Z", "actual_delivery": null, "current_location": "Jakarta"}
		]`,
		"financial_records.json": `[
			{"id": 1, "order_id": 1, "transaction_type": "income", "amount": 130000, "description": "Order payment for Pallet Jack", "transaction_date": "2024-02-01T08:00:00Z"}
		]`,
		"supplier_transactions.json": `[
			{"id": 1, "supplier_id": 1, "order_id": 1, "amount": 30000, "transaction_date": "2024-02-01T08:00:00Z"}
		]`,
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	db := setupSeedTestDB(t)
	dir := writeSeedFiles(t)

	require.NoError(t, Load(db, dir))

	countOf := func(entity interface{}) int64 {
		var count int64
		db.Model(entity).Count(&count)
		return count
	}

	assert.Equal(t, int64(2), countOf(&model.User{}))
	assert.Equal(t, int64(1), countOf(&model.Product{}))
	assert.Equal(t, int64(1), countOf(&model.Supplier{}))
	assert.Equal(t, int64(1), countOf(&model.Order{}))
	assert.Equal(t, int64(1), countOf(&model.Shipment{}))
	assert.Equal(t, int64(1), countOf(&model.FinancialRecord{}))
	assert.Equal(t, int64(1), countOf(&model.SupplierTransaction{}))

	t.Run("timestamps parsed as UTC", func(t *testing.T) {
		var user model.User
		require.NoError(t, db.First(&user, 1).Error)
		expected := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		assert.True(t, user.CreatedAt.Equal(expected))
	})

	t.Run("null timestamps stay null", func(t *testing.T) {
		var shipment model.Shipment
		require.NoError(t, db.First(&shipment, 1).Error)
		require.NotNil(t, shipment.ShippedDate)
		assert.Nil(t, shipment.ActualDelivery)
	})

	t.Run("second load leaves counts unchanged", func(t *testing.T) {
		require.NoError(t, Load(db, dir))

		assert.Equal(t, int64(2), countOf(&model.User{}))
		assert.Equal(t, int64(1), countOf(&model.Product{}))
		assert.Equal(t, int64(1), countOf(&model.Supplier{}))
		assert.Equal(t, int64(1), countOf(&model.Order{}))
		assert.Equal(t, int64(1), countOf(&model.Shipment{}))
		assert.Equal(t, int64(1), countOf(&model.FinancialRecord{}))
		assert.Equal(t, int64(1), countOf(&model.SupplierTransaction{}))
	})

	t.Run("existing records are never updated", func(t *testing.T) {
		require.NoError(t, db.Model(&model.Product{}).Where("id = ?", 1).Update("stock_quantity", 5).Error)
		require.NoError(t, Load(db, dir))

		var product model.Product
		require.NoError(t, db.First(&product, 1).Error)
		assert.Equal(t, 5, product.StockQuantity)
	})
}

func TestEnsureDefaultAdmin(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, EnsureDefaultAdmin(db))

	var admin model.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Equal(t, "admin@simlog.com", admin.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, EnsureDefaultAdmin(db))

		var count int64
		db.Model(&model.User{}).Where("username = ?", "admin").Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestParseTime(t *testing.T) {
	t.Run("trailing Z normalized to UTC offset", func(t *testing.T) {
		parsed := parseTime("2024-03-01T12:30:00Z")
		assert.True(t, parsed.Equal(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)))
	})

	t.Run("explicit offset", func(t *testing.T) {
		parsed := parseTime("2024-03-01T12:30:00+07:00")
		assert.Equal(t, 7*3600, func() int { _, offset := parsed.Zone(); return offset }())
	})

	t.Run("empty and malformed values yield zero time", func(t *testing.T) {
		assert.True(t, parseTime("").IsZero())
		assert.True(t, parseTime("not-a-date").IsZero())
	})
}
