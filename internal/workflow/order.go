package workflow

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hakikifaturrahman/simlog/internal/model"
)

// trackingPrefix is prepended to every generated tracking number.
const trackingPrefix = "SIMLOG"

// logisticsCosts maps a package type to its flat surcharge. Unknown
// package types fall back to the basic rate.
var logisticsCosts = map[string]float64{
	model.PackageTypeBasic:    50000,
	model.PackageTypeStandard: 100000,
	model.PackageTypePremium:  200000,
}

// LogisticsCost returns the flat surcharge for a package type,
// defaulting to the basic rate for unrecognized values.
func LogisticsCost(packageType string) float64 {
	if cost, ok := logisticsCosts[packageType]; ok {
		return cost
	}
	return logisticsCosts[model.PackageTypeBasic]
}

// CreateOrderInput carries the validated fields of an order request.
type CreateOrderInput struct {
	UserID      uint
	SupplierID  uint
	ProductID   uint
	Quantity    int
	PackageType string
}

// CreateOrder places a new order in pending status. The product's
// unit price is snapshotted at this instant; later price changes
// never affect the order. Any authenticated user may order any
// product from any supplier.
func CreateOrder(db *gorm.DB, input CreateOrderInput) (*model.Order, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	var product model.Product
	if err := db.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, input.ProductID)
		}
		return nil, err
	}

	logisticsCost := LogisticsCost(input.PackageType)
	totalCost := product.UnitPrice*float64(input.Quantity) + logisticsCost

	order := model.Order{
		UserID:        input.UserID,
		SupplierID:    input.SupplierID,
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		UnitPrice:     product.UnitPrice,
		TotalCost:     totalCost,
		LogisticsCost: logisticsCost,
		PackageType:   input.PackageType,
		Status:        model.OrderStatusPending,
		OrderDate:     time.Now().UTC(),
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ConfirmOrder moves a pending order to confirmed and atomically
// creates its shipment, income financial record, and supplier
// transaction. Either all four writes commit or none do. Only the
// order's owner or an admin may confirm, and an order can be
// confirmed at most once.
func ConfirmOrder(db *gorm.DB, orderID uint, actor Actor) (*model.Shipment, error) {
	var order model.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}

	if order.UserID != actor.ID && actor.Role != model.RoleAdmin {
		return nil, ErrUnauthorized
	}
	if order.Status != model.OrderStatusPending {
		return nil, fmt.Errorf("%w: order %d already %s", ErrConflict, order.ID, order.Status)
	}

	var product model.Product
	if err := db.First(&product, order.ProductID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	estimated := now.Add(7 * 24 * time.Hour)
	shipment := model.Shipment{
		OrderID:           order.ID,
		TrackingNumber:    newTrackingNumber(),
		Status:            model.ShipmentStatusPreparing,
		EstimatedDelivery: &estimated,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Update("status", model.OrderStatusConfirmed).Error; err != nil {
			return err
		}

		if err := tx.Create(&shipment).Error; err != nil {
			return err
		}

		record := model.FinancialRecord{
			OrderID:         order.ID,
			TransactionType: model.TransactionTypeIncome,
			Amount:          order.TotalCost,
			Description:     fmt.Sprintf("Order payment for %s", product.Name),
			TransactionDate: now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		supplierTx := model.SupplierTransaction{
			SupplierID:      order.SupplierID,
			OrderID:         order.ID,
			Amount:          order.TotalCost - order.LogisticsCost,
			TransactionDate: now,
		}
		return tx.Create(&supplierTx).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: tracking number collision", ErrConflict)
		}
		return nil, err
	}

	return &shipment, nil
}

// newTrackingNumber builds a synthetic tracking number: a fixed
// prefix plus 8 random uppercase hex characters. Collisions are not
// retried; the unique index rejects them.
func newTrackingNumber() string {
	id := uuid.New()
	return trackingPrefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}
