package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hakikifaturrahman/simlog/internal/model"
	"github.com/hakikifaturrahman/simlog/pkg/database"
	"github.com/hakikifaturrahman/simlog/pkg/logger"
	"github.com/hakikifaturrahman/simlog/prometheus"
)

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stock_quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
}

// StockUpdateRequest defines the structure for stock updates. The
// new quantity overwrites the stored value absolutely, not as a
// delta.
type StockUpdateRequest struct {
	StockQuantity int `json:"stock_quantity"`
}

// ListProducts returns the full product catalog
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCatalogOperation("list_products")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var products []model.Product
	result := database.GetDB().Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	return c.JSON(http.StatusOK, products)
}

// ListLowStockProducts returns products at or below their minimum
// stock level, used for dashboard alerts only
func ListLowStockProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCatalogOperation("low_stock")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var products []model.Product
	result := database.GetDB().Where("stock_quantity <= min_stock_level").Find(&products)
	if result.Error != nil {
		log.Error("Failed to list low stock products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	prometheus.LowStockGauge.Set(float64(len(products)))
	return c.JSON(http.StatusOK, products)
}

// CreateProduct adds a new product to the catalog
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCatalogOperation("create_product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Product validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required and unit_price must not be negative"})
	}

	product := model.Product{
		Name:          req.Name,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		UnitPrice:     req.UnitPrice,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&product); result.Error != nil {
		log.Error("Failed to create product", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create product"})
	}

	log.Info("Product created successfully",
		zap.Uint("id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProductStock overwrites a product's stock quantity and
// stamps updated_at
func UpdateProductStock(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCatalogOperation("update_stock")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid product ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product ID"})
	}

	var req StockUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var product model.Product
	if result := database.GetDB().First(&product, id); result.Error != nil {
		log.Warn("Product not found", zap.Uint64("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	product.StockQuantity = req.StockQuantity
	product.UpdatedAt = time.Now().UTC()

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&product); result.Error != nil {
		log.Error("Failed to update stock", zap.Uint64("product_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update stock"})
	}

	log.Info("Stock updated successfully",
		zap.Uint64("product_id", id),
		zap.Int("stock_quantity", product.StockQuantity))
	return c.JSON(http.StatusOK, product)
}
