package workflow

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hakikifaturrahman/simlog/internal/model"
)

// UpdateShipmentStatus moves a shipment to a new status and records
// its current location. Admin only. Entering in_transit stamps the
// shipped date once; entering delivered stamps the actual delivery
// and marks the parent order delivered in the same transaction.
// Status values are not validated and transitions may move backward.
func UpdateShipmentStatus(db *gorm.DB, shipmentID uint, status, location string, actor Actor) (*model.Shipment, error) {
	if actor.Role != model.RoleAdmin {
		return nil, ErrUnauthorized
	}

	var shipment model.Shipment
	if err := db.First(&shipment, shipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: shipment %d", ErrNotFound, shipmentID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	shipment.Status = status
	shipment.CurrentLocation = location

	if status == model.ShipmentStatusInTransit && shipment.ShippedDate == nil {
		shipment.ShippedDate = &now
	}
	if status == model.ShipmentStatusDelivered {
		shipment.ActualDelivery = &now
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&shipment).Error; err != nil {
			return err
		}
		if status == model.ShipmentStatusDelivered {
			return tx.Model(&model.Order{}).Where("id = ?", shipment.OrderID).
				Update("status", model.OrderStatusDelivered).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &shipment, nil
}
