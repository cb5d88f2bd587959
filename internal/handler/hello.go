package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Hello responds to health checks
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "simlog",
		"status":  "ok",
	})
}
