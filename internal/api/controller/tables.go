package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akarpov/salesdash/internal/pkg/constants"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

var tableNames = []string{"customers", "orders", "employees", "products", "categories", "order_details"}

type tableSummary struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

func (c *Controller) ListTables(ctx echo.Context) error {
	snap, err := c.cache.Get(ctx.Request().Context())
	if err != nil {
		return err
	}

	out := make([]tableSummary, 0, len(tableNames))
	for _, name := range tableNames {
		out = append(out, tableSummary{Name: name, Rows: tableLen(snap, name)})
	}

	return ctx.JSON(http.StatusOK, out)
}

func (c *Controller) GetTable(ctx echo.Context) error {
	snap, err := c.cache.Get(ctx.Request().Context())
	if err != nil {
		return err
	}

	rows, ok := tableRows(snap, ctx.Param("name"))
	if !ok {
		return constants.ErrUnknownTable
	}

	return ctx.JSON(http.StatusOK, rows)
}

func tableRows(snap *dataset.Snapshot, name string) (interface{}, bool) {
	switch name {
	case "customers":
		return snap.Customers, true
	case "orders":
		return snap.Orders, true
	case "employees":
		return snap.Employees, true
	case "products":
		return snap.Products, true
	case "categories":
		return snap.Categories, true
	case "order_details":
		return snap.OrderDetails, true
	default:
		return nil, false
	}
}

func tableLen(snap *dataset.Snapshot, name string) int {
	switch name {
	case "customers":
		return len(snap.Customers)
	case "orders":
		return len(snap.Orders)
	case "employees":
		return len(snap.Employees)
	case "products":
		return len(snap.Products)
	case "categories":
		return len(snap.Categories)
	case "order_details":
		return len(snap.OrderDetails)
	default:
		return 0
	}
}
