package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status      string         `json:"status"`
	SnapshotAge *time.Duration `json:"snapshot_age_ns,omitempty"`
	Tables      map[string]int `json:"tables,omitempty"`
}

func (c *Controller) Health(ctx echo.Context) error {
	resp := healthResponse{Status: "ok"}

	if snap := c.cache.Current(); snap != nil {
		age := snap.Age()
		resp.SnapshotAge = &age
		resp.Tables = make(map[string]int, len(tableNames))
		for _, name := range tableNames {
			resp.Tables[name] = tableLen(snap, name)
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}
