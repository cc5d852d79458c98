package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akarpov/salesdash/internal/pkg/logger"
)

func (c *Controller) RefreshCache(ctx echo.Context) error {
	snap, err := c.cache.Refresh(ctx.Request().Context())
	if err != nil {
		return err
	}

	logger.Infof(ctx.Request().Context(), "cache refreshed, %d orders loaded", len(snap.Orders))

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"refreshed": true,
		"loaded_at": snap.LoadedAt,
	})
}

func (c *Controller) InvalidateCache(ctx echo.Context) error {
	c.cache.Invalidate()

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"invalidated": true,
	})
}
