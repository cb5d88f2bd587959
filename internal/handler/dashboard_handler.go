package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hakikifaturrahman/simlog/internal/model"
	"github.com/hakikifaturrahman/simlog/pkg/database"
	"github.com/hakikifaturrahman/simlog/pkg/logger"
	"github.com/hakikifaturrahman/simlog/prometheus"
)

// UserDashboard returns the authenticated user's order statistics
// and their five most recent orders
func UserDashboard(c echo.Context) error {
	log := logger.FromContext(c)
	actor := actorFromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	db := database.GetDB()

	var totalOrders, pendingOrders, inTransit int64
	db.Model(&model.Order{}).Where("user_id = ?", actor.ID).Count(&totalOrders)
	db.Model(&model.Order{}).Where("user_id = ? AND status = ?", actor.ID, model.OrderStatusPending).Count(&pendingOrders)
	db.Model(&model.Shipment{}).
		Joins("JOIN orders ON orders.id = shipments.order_id").
		Where("orders.user_id = ? AND shipments.status = ?", actor.ID, model.ShipmentStatusInTransit).
		Count(&inTransit)

	var recentOrders []model.Order
	if err := db.Where("user_id = ?", actor.ID).Order("order_date desc").Limit(5).Find(&recentOrders).Error; err != nil {
		log.Error("Failed to load recent orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_orders":   totalOrders,
		"pending_orders": pendingOrders,
		"in_transit":     inTransit,
		"recent_orders":  recentOrders,
	})
}

// AdminDashboard returns catalog, order, and supplier statistics
// plus low-stock alerts
func AdminDashboard(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	db := database.GetDB()

	var totalProducts, lowStockCount, totalOrders, pendingOrders, totalSuppliers int64
	db.Model(&model.Product{}).Count(&totalProducts)
	db.Model(&model.Product{}).Where("stock_quantity <= min_stock_level").Count(&lowStockCount)
	db.Model(&model.Order{}).Count(&totalOrders)
	db.Model(&model.Order{}).Where("status = ?", model.OrderStatusPending).Count(&pendingOrders)
	db.Model(&model.Supplier{}).Count(&totalSuppliers)

	prometheus.PendingOrdersGauge.Set(float64(pendingOrders))
	prometheus.LowStockGauge.Set(float64(lowStockCount))

	var recentOrders []model.Order
	if err := db.Order("order_date desc").Limit(5).Find(&recentOrders).Error; err != nil {
		log.Error("Failed to load recent orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard"})
	}

	var lowStockProducts []model.Product
	if err := db.Where("stock_quantity <= min_stock_level").Find(&lowStockProducts).Error; err != nil {
		log.Error("Failed to load low stock products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_products":     totalProducts,
		"low_stock_count":    lowStockCount,
		"total_orders":       totalOrders,
		"pending_orders":     pendingOrders,
		"total_suppliers":    totalSuppliers,
		"recent_orders":      recentOrders,
		"low_stock_products": lowStockProducts,
	})
}
