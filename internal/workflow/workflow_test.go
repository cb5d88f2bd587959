package workflow

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hakikifaturrahman/simlog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Supplier{},
		&model.Order{},
		&model.Shipment{},
		&model.FinancialRecord{},
		&model.SupplierTransaction{},
	)
	require.NoError(t, err)

	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (model.Product, model.Supplier) {
	product := model.Product{Name: "Pallet Jack", StockQuantity: 40, MinStockLevel: 10, UnitPrice: 10000}
	require.NoError(t, db.Create(&product).Error)

	supplier := model.Supplier{Name: "PT Maju Jaya", ContactPerson: "Budi"}
	require.NoError(t, db.Create(&supplier).Error)

	return product, supplier
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	product, supplier := seedCatalog(t, db)

	t.Run("computes total from snapshot price and package surcharge", func(t *testing.T) {
		order, err := CreateOrder(db, CreateOrderInput{
			UserID:      1,
			SupplierID:  supplier.ID,
			ProductID:   product.ID,
			Quantity:    3,
			PackageType: model.PackageTypeStandard,
		})
		require.NoError(t, err)

		assert.Equal(t, float64(100000), order.LogisticsCost)
		assert.Equal(t, float64(130000), order.TotalCost)
		assert.Equal(t, float64(10000), order.UnitPrice)
		assert.Equal(t, model.OrderStatusPending, order.Status)
	})

	t.Run("unknown package type falls back to basic rate", func(t *testing.T) {
		order, err := CreateOrder(db, CreateOrderInput{
			UserID:      1,
			SupplierID:  supplier.ID,
			ProductID:   product.ID,
			Quantity:    1,
			PackageType: "overnight",
		})
		require.NoError(t, err)

		assert.Equal(t, float64(50000), order.LogisticsCost)
		assert.Equal(t, float64(60000), order.TotalCost)
	})

	t.Run("price snapshot survives later catalog changes", func(t *testing.T) {
		order, err := CreateOrder(db, CreateOrderInput{
			UserID:      1,
			SupplierID:  supplier.ID,
			ProductID:   product.ID,
			Quantity:    2,
			PackageType: model.PackageTypeBasic,
		})
		require.NoError(t, err)

		require.NoError(t, db.Model(&model.Product{}).
			Where("id = ?", product.ID).
			Update("unit_price", 99999).Error)

		var stored model.Order
		require.NoError(t, db.First(&stored, order.ID).Error)
		assert.Equal(t, float64(10000), stored.UnitPrice)
		assert.Equal(t, float64(70000), stored.TotalCost)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := CreateOrder(db, CreateOrderInput{
			UserID:      1,
			SupplierID:  supplier.ID,
			ProductID:   9999,
			Quantity:    1,
			PackageType: model.PackageTypeBasic,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := CreateOrder(db, CreateOrderInput{
			UserID:      1,
			SupplierID:  supplier.ID,
			ProductID:   product.ID,
			Quantity:    0,
			PackageType: model.PackageTypeBasic,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestConfirmOrder(t *testing.T) {
	db := setupTestDB(t)
	product, supplier := seedCatalog(t, db)

	newOrder := func(t *testing.T, userID uint) *model.Order {
		order, err := CreateOrder(db, CreateOrderInput{
			UserID:      userID,
			SupplierID:  supplier.ID,
			ProductID:   product.ID,
			Quantity:    3,
			PackageType: model.PackageTypeStandard,
		})
		require.NoError(t, err)
		return order
	}

	t.Run("creates shipment, financial record and supplier transaction", func(t *testing.T) {
		order := newOrder(t, 7)

		shipment, err := ConfirmOrder(db, order.ID, Actor{ID: 7, Role: model.RoleUser})
		require.NoError(t, err)

		var stored model.Order
		require.NoError(t, db.First(&stored, order.ID).Error)
		assert.Equal(t, model.OrderStatusConfirmed, stored.Status)

		assert.Equal(t, model.ShipmentStatusPreparing, shipment.Status)
		assert.Regexp(t, regexp.MustCompile(`^SIMLOG[0-9A-F]{8}$`), shipment.TrackingNumber)
		require.NotNil(t, shipment.EstimatedDelivery)
		assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), *shipment.EstimatedDelivery, time.Minute)

		var record model.FinancialRecord
		require.NoError(t, db.Where("order_id = ?", order.ID).First(&record).Error)
		assert.Equal(t, model.TransactionTypeIncome, record.TransactionType)
		assert.Equal(t, float64(130000), record.Amount)
		assert.Equal(t, "Order payment for Pallet Jack", record.Description)

		var supplierTx model.SupplierTransaction
		require.NoError(t, db.Where("order_id = ?", order.ID).First(&supplierTx).Error)
		assert.Equal(t, supplier.ID, supplierTx.SupplierID)
		assert.Equal(t, float64(30000), supplierTx.Amount)
	})

	t.Run("admin may confirm another user's order", func(t *testing.T) {
		order := newOrder(t, 7)

		_, err := ConfirmOrder(db, order.ID, Actor{ID: 1, Role: model.RoleAdmin})
		require.NoError(t, err)
	})

	t.Run("other users may not confirm", func(t *testing.T) {
		order := newOrder(t, 7)

		_, err := ConfirmOrder(db, order.ID, Actor{ID: 8, Role: model.RoleUser})
		assert.ErrorIs(t, err, ErrUnauthorized)

		var stored model.Order
		require.NoError(t, db.First(&stored, order.ID).Error)
		assert.Equal(t, model.OrderStatusPending, stored.Status)
	})

	t.Run("second confirm is rejected without new side effects", func(t *testing.T) {
		order := newOrder(t, 7)

		_, err := ConfirmOrder(db, order.ID, Actor{ID: 7, Role: model.RoleUser})
		require.NoError(t, err)

		_, err = ConfirmOrder(db, order.ID, Actor{ID: 7, Role: model.RoleUser})
		assert.ErrorIs(t, err, ErrConflict)

		var shipments, records, transactions int64
		db.Model(&model.Shipment{}).Where("order_id = ?", order.ID).Count(&shipments)
		db.Model(&model.FinancialRecord{}).Where("order_id = ?", order.ID).Count(&records)
		db.Model(&model.SupplierTransaction{}).Where("order_id = ?", order.ID).Count(&transactions)
		assert.Equal(t, int64(1), shipments)
		assert.Equal(t, int64(1), records)
		assert.Equal(t, int64(1), transactions)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := ConfirmOrder(db, 9999, Actor{ID: 1, Role: model.RoleAdmin})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateShipmentStatus(t *testing.T) {
	db := setupTestDB(t)
	product, supplier := seedCatalog(t, db)

	admin := Actor{ID: 1, Role: model.RoleAdmin}

	confirmed := func(t *testing.T) (*model.Order, *model.Shipment) {
		order, err := CreateOrder(db, CreateOrderInput{
			UserID:      7,
			SupplierID:  supplier.ID,
			ProductID:   product.ID,
			Quantity:    1,
			PackageType: model.PackageTypeBasic,
		})
		require.NoError(t, err)
		shipment, err := ConfirmOrder(db, order.ID, admin)
		require.NoError(t, err)
		return order, shipment
	}

	t.Run("admin only", func(t *testing.T) {
		_, shipment := confirmed(t)

		_, err := UpdateShipmentStatus(db, shipment.ID, model.ShipmentStatusInTransit, "Jakarta", Actor{ID: 7, Role: model.RoleUser})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("in_transit stamps shipped date only once", func(t *testing.T) {
		_, shipment := confirmed(t)

		updated, err := UpdateShipmentStatus(db, shipment.ID, model.ShipmentStatusInTransit, "Jakarta", admin)
		require.NoError(t, err)
		require.NotNil(t, updated.ShippedDate)
		first := *updated.ShippedDate

		// Move backward and forward again; the original stamp survives
		_, err = UpdateShipmentStatus(db, shipment.ID, model.ShipmentStatusPreparing, "Depot", admin)
		require.NoError(t, err)

		updated, err = UpdateShipmentStatus(db, shipment.ID, model.ShipmentStatusInTransit, "Surabaya", admin)
		require.NoError(t, err)
		require.NotNil(t, updated.ShippedDate)
		assert.True(t, updated.ShippedDate.Equal(first))
		assert.Equal(t, "Surabaya", updated.CurrentLocation)
	})

	t.Run("delivered stamps actual delivery and propagates to the order", func(t *testing.T) {
		order, shipment := confirmed(t)

		updated, err := UpdateShipmentStatus(db, shipment.ID, model.ShipmentStatusDelivered, "Bandung", admin)
		require.NoError(t, err)
		require.NotNil(t, updated.ActualDelivery)

		var stored model.Order
		require.NoError(t, db.First(&stored, order.ID).Error)
		assert.Equal(t, model.OrderStatusDelivered, stored.Status)
	})

	t.Run("status strings are not validated", func(t *testing.T) {
		_, shipment := confirmed(t)

		updated, err := UpdateShipmentStatus(db, shipment.ID, "lost_at_sea", "", admin)
		require.NoError(t, err)
		assert.Equal(t, "lost_at_sea", updated.Status)
	})

	t.Run("missing shipment", func(t *testing.T) {
		_, err := UpdateShipmentStatus(db, 9999, model.ShipmentStatusInTransit, "", admin)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLogisticsCost(t *testing.T) {
	assert.Equal(t, float64(50000), LogisticsCost(model.PackageTypeBasic))
	assert.Equal(t, float64(100000), LogisticsCost(model.PackageTypeStandard))
	assert.Equal(t, float64(200000), LogisticsCost(model.PackageTypePremium))
	assert.Equal(t, float64(50000), LogisticsCost(""))
	assert.Equal(t, float64(50000), LogisticsCost("unknown"))
}
