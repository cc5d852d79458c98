package store

import (
	"context"

	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListOrderDetails(ctx context.Context) ([]domain.OrderDetail, error)
	Ping(ctx context.Context) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
