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

// OrderRequest defines the structure for order creation requests
type OrderRequest struct {
	SupplierID  uint   `json:"supplier_id" validate:"required"`
	ProductID   uint   `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	PackageType string `json:"package_type"`
}

// CreateOrder places a new order for the authenticated user
func CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOrderOperation("create")

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Order validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "supplier_id, product_id and a positive quantity are required"})
	}

	actor := actorFromContext(c)
	log.Info("Order creation request",
		zap.Uint("product_id", req.ProductID),
		zap.Uint("supplier_id", req.SupplierID),
		zap.Int("quantity", req.Quantity),
		zap.String("package_type", req.PackageType))

	defer prometheus.TrackDBOperation("insert")(time.Now())
	order, err := workflow.CreateOrder(database.GetDB(), workflow.CreateOrderInput{
		UserID:      actor.ID,
		SupplierID:  req.SupplierID,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		PackageType: req.PackageType,
	})
	if err != nil {
		log.Warn("Order creation failed", zap.Error(err))
		return workflowError(c, log, err)
	}

	log.Info("Order created successfully",
		zap.Uint("order_id", order.ID),
		zap.Float64("total_cost", order.TotalCost))
	return c.JSON(http.StatusCreated, order)
}

// ConfirmOrder confirms a pending order, creating its shipment and
// ledger entries in one transaction
func ConfirmOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOrderOperation("confirm")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid order ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order ID"})
	}

	actor := actorFromContext(c)
	log.Info("Order confirmation request", zap.Uint64("order_id", id))

	defer prometheus.TrackDBOperation("update")(time.Now())
	shipment, err := workflow.ConfirmOrder(database.GetDB(), uint(id), actor)
	if err != nil {
		log.Warn("Order confirmation failed", zap.Uint64("order_id", id), zap.Error(err))
		return workflowError(c, log, err)
	}

	log.Info("Order confirmed successfully",
		zap.Uint64("order_id", id),
		zap.String("tracking_number", shipment.TrackingNumber))
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Order confirmed successfully",
		"shipment": shipment,
	})
}

// ListOrders returns the authenticated user's orders, newest first
func ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOrderOperation("list")

	actor := actorFromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var orders []model.Order
	result := database.GetDB().
		Where("user_id = ?", actor.ID).
		Order("order_date desc").
		Find(&orders)
	if result.Error != nil {
		log.Error("Failed to retrieve orders", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, orders)
}

// AdminListOrders returns every order, newest first
func AdminListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOrderOperation("admin_list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var orders []model.Order
	result := database.GetDB().Order("order_date desc").Find(&orders)
	if result.Error != nil {
		log.Error("Failed to retrieve orders", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, orders)
}
