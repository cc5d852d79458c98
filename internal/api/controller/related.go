package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akarpov/salesdash/internal/pkg/constants"
	"github.com/akarpov/salesdash/internal/service/resolver"
)

type relatedParams struct {
	OrderID    *int    `query:"order_id"`
	CustomerID *string `query:"customer_id"`
	EmployeeID *int    `query:"employee_id"`
	ProductID  *int    `query:"product_id"`
	CategoryID *int    `query:"category_id"`
	StartDate  string  `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string  `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// GetRelated resolves everything related to the selected entity. When
// several filters are set at once the first one in the fixed precedence
// order wins; with none set the request is rejected.
func (c *Controller) GetRelated(ctx echo.Context) error {
	var params relatedParams
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	if err := ctx.Validate(&params); err != nil {
		return err
	}

	in := resolver.Inputs{
		OrderID:    params.OrderID,
		CustomerID: params.CustomerID,
		EmployeeID: params.EmployeeID,
		ProductID:  params.ProductID,
		CategoryID: params.CategoryID,
	}

	if params.StartDate != "" && params.EndDate != "" {
		start, err := time.Parse("2006-01-02", params.StartDate)
		if err != nil {
			return constants.ErrBadDateRange
		}
		end, err := time.Parse("2006-01-02", params.EndDate)
		if err != nil {
			return constants.ErrBadDateRange
		}
		if end.Before(start) {
			return constants.ErrBadDateRange
		}
		in.Start = &start
		in.End = &end
	}

	sel, ok := resolver.FromInputs(in)
	if !ok {
		return constants.ErrNoSelector
	}

	res, err := c.resolver.Resolve(ctx.Request().Context(), sel)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}
