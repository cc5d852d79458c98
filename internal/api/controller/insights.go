package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akarpov/salesdash/internal/pkg/constants"
	"github.com/akarpov/salesdash/internal/service/insights"
)

func (c *Controller) GetCustomerInsights(ctx echo.Context) error {
	var params struct {
		Country *string `query:"country"`
		City    *string `query:"city"`
	}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	res, err := c.insights.Customers(ctx.Request().Context(), insights.CustomerFilter{
		Country: params.Country,
		City:    params.City,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetOrderInsights(ctx echo.Context) error {
	var params struct {
		StartDate   string  `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
		EndDate     string  `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
		ShipCountry *string `query:"ship_country"`
	}
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	if err := ctx.Validate(&params); err != nil {
		return err
	}

	filter := insights.OrderFilter{ShipCountry: params.ShipCountry}
	var err error
	filter.Start, filter.End, err = parseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return err
	}

	res, err := c.insights.Orders(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetSalesInsights(ctx echo.Context) error {
	var params struct {
		CategoryID *int   `query:"category_id"`
		StartDate  string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
		EndDate    string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	}
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	if err := ctx.Validate(&params); err != nil {
		return err
	}

	filter := insights.SalesFilter{CategoryID: params.CategoryID}
	var err error
	filter.Start, filter.End, err = parseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return err
	}

	res, err := c.insights.Sales(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetEmployeeInsights(ctx echo.Context) error {
	var params struct {
		Title   *string `query:"title"`
		Country *string `query:"country"`
	}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	res, err := c.insights.Employees(ctx.Request().Context(), insights.EmployeeFilter{
		Title:   params.Title,
		Country: params.Country,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func parseDateRange(startStr, endStr string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if startStr != "" {
		t, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, nil, constants.ErrBadDateRange
		}
		start = &t
	}
	if endStr != "" {
		t, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, nil, constants.ErrBadDateRange
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, constants.ErrBadDateRange
	}

	return start, end, nil
}
