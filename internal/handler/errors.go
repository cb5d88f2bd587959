package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hakikifaturrahman/simlog/internal/workflow"
	"github.com/hakikifaturrahman/simlog/prometheus"
)

// workflowError maps a workflow sentinel error to its HTTP response.
// Anything unrecognized is an internal error.
func workflowError(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		prometheus.RecordWorkflowError("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, workflow.ErrUnauthorized):
		prometheus.RecordWorkflowError("unauthorized")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you don't have permission to perform this action"})
	case errors.Is(err, workflow.ErrConflict):
		prometheus.RecordWorkflowError("conflict")
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, workflow.ErrValidation):
		prometheus.RecordWorkflowError("validation")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		prometheus.RecordWorkflowError("internal")
		log.Error("Workflow operation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// actorFromContext builds the workflow actor from the identity the
// auth middleware stored in the request context.
func actorFromContext(c echo.Context) workflow.Actor {
	actor := workflow.Actor{}
	if id, ok := c.Get("user_id").(uint); ok {
		actor.ID = id
	}
	if role, ok := c.Get("role").(string); ok {
		actor.Role = role
	}
	return actor
}
