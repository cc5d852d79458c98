package controller

import (
	"github.com/akarpov/salesdash/internal/pkg/dataset"
	"github.com/akarpov/salesdash/internal/service/insights"
	"github.com/akarpov/salesdash/internal/service/resolver"
)

type Controller struct {
	resolver *resolver.Service
	insights *insights.Service
	cache    *dataset.Cache
}

func NewController(r *resolver.Service, i *insights.Service, cache *dataset.Cache) *Controller {
	return &Controller{resolver: r, insights: i, cache: cache}
}
