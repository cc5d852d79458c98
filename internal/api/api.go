package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/akarpov/salesdash/internal/api/controller"
	"github.com/akarpov/salesdash/internal/pkg/constants"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
	"github.com/akarpov/salesdash/internal/pkg/logger"
	"github.com/akarpov/salesdash/internal/service/insights"
	"github.com/akarpov/salesdash/internal/service/resolver"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(cache *dataset.Cache) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperKeyCORSOrigins),
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		resolver.NewService(cache),
		insights.NewService(cache),
		cache,
	)

	api := svc.router.Group("/api/v1")

	api.GET("/related", cntrl.GetRelated)

	ins := api.Group("/insights")
	ins.GET("/customers", cntrl.GetCustomerInsights)
	ins.GET("/orders", cntrl.GetOrderInsights)
	ins.GET("/sales", cntrl.GetSalesInsights)
	ins.GET("/employees", cntrl.GetEmployeeInsights)

	tables := api.Group("/tables")
	tables.GET("", cntrl.ListTables)
	tables.GET("/:name", cntrl.GetTable)

	cacheGroup := api.Group("/cache", svc.AdminMiddleware)
	cacheGroup.POST("/refresh", cntrl.RefreshCache)
	cacheGroup.POST("/invalidate", cntrl.InvalidateCache)

	svc.router.GET("/healthz", cntrl.Health)

	return svc, nil
}
