package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hakikifaturrahman/simlog/internal/model"
	"github.com/hakikifaturrahman/simlog/internal/workflow"
	"github.com/hakikifaturrahman/simlog/pkg/database"
	"github.com/hakikifaturrahman/simlog/pkg/logger"
	"github.com/hakikifaturrahman/simlog/prometheus"
)

// ShipmentStatusRequest defines the structure for shipment status updates
type ShipmentStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	CurrentLocation string `json:"current_location"`
}

// UpdateShipmentStatus updates a shipment's status and location
func UpdateShipmentStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShipmentOperation("update_status")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid shipment ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shipment ID"})
	}

	var req ShipmentStatusRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status is required"})
	}

	actor := actorFromContext(c)
	log.Info("Shipment status update request",
		zap.Uint64("shipment_id", id),
		zap.String("status", req.Status),
		zap.String("current_location", req.CurrentLocation))

	defer prometheus.TrackDBOperation("update")(time.Now())
	shipment, err := workflow.UpdateShipmentStatus(database.GetDB(), uint(id), req.Status, req.CurrentLocation, actor)
	if err != nil {
		log.Warn("Shipment status update failed", zap.Uint64("shipment_id", id), zap.Error(err))
		return workflowError(c, log, err)
	}

	log.Info("Shipment status updated successfully",
		zap.Uint64("shipment_id", id),
		zap.String("status", shipment.Status))
	return c.JSON(http.StatusOK, shipment)
}

// ListShipments returns shipments for the authenticated user's orders
func ListShipments(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShipmentOperation("list")

	actor := actorFromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var shipments []model.Shipment
	result := database.GetDB().
		Joins("JOIN orders ON orders.id = shipments.order_id").
		Where("orders.user_id = ?", actor.ID).
		Find(&shipments)
	if result.Error != nil {
		log.Error("Failed to retrieve shipments", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve shipments"})
	}

	return c.JSON(http.StatusOK, shipments)
}

// AdminListShipments returns every shipment, newest first
func AdminListShipments(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShipmentOperation("admin_list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var shipments []model.Shipment
	result := database.GetDB().Order("id desc").Find(&shipments)
	if result.Error != nil {
		log.Error("Failed to retrieve shipments", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve shipments"})
	}

	return c.JSON(http.StatusOK, shipments)
}
