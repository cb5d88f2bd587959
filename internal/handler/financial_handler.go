package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hakikifaturrahman/simlog/internal/ledger"
	"github.com/hakikifaturrahman/simlog/pkg/database"
	"github.com/hakikifaturrahman/simlog/pkg/logger"
	"github.com/hakikifaturrahman/simlog/prometheus"
)

// AdminFinancial returns the ledger totals and all financial records
func AdminFinancial(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	totals, err := ledger.ComputeTotals(database.GetDB())
	if err != nil {
		log.Error("Failed to compute financial totals", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute totals"})
	}

	records, err := ledger.Records(database.GetDB())
	if err != nil {
		log.Error("Failed to retrieve financial records", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve records"})
	}

	log.Info("Financial view computed",
		zap.Float64("total_income", totals.TotalIncome),
		zap.Float64("total_expenses", totals.TotalExpenses),
		zap.Float64("net_profit", totals.NetProfit))
	return c.JSON(http.StatusOK, echo.Map{
		"totals":  totals,
		"records": records,
	})
}
