package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/akarpov/salesdash/internal/pkg/logger"
	"github.com/akarpov/salesdash/internal/pkg/store"
)

// Loader produces a fresh snapshot of all six tables.
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

type storeLoader struct {
	store store.Store
}

func NewStoreLoader(s store.Store) Loader {
	return &storeLoader{store: s}
}

// Load fetches the six tables concurrently. A table that still fails
// after retries is logged and degrades to an empty slice; the snapshot
// is returned regardless so the rest of the data stays queryable.
func (l *storeLoader) Load(ctx context.Context) (*Snapshot, error) {
	var (
		customers    = loadTable("customers", l.store.ListCustomers)
		orders       = loadTable("orders", l.store.ListOrders)
		employees    = loadTable("employees", l.store.ListEmployees)
		products     = loadTable("products", l.store.ListProducts)
		categories   = loadTable("categories", l.store.ListCategories)
		orderDetails = loadTable("order_details", l.store.ListOrderDetails)
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(customers.run(egCtx))
	eg.Go(orders.run(egCtx))
	eg.Go(employees.run(egCtx))
	eg.Go(products.run(egCtx))
	eg.Go(categories.run(egCtx))
	eg.Go(orderDetails.run(egCtx))

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	return NewSnapshot(
		customers.rows, orders.rows, employees.rows,
		products.rows, categories.rows, orderDetails.rows,
	), nil
}

type tableLoad[T any] struct {
	name string
	list func(ctx context.Context) ([]T, error)
	rows []T
}

func loadTable[T any](name string, list func(ctx context.Context) ([]T, error)) *tableLoad[T] {
	return &tableLoad[T]{name: name, list: list}
}

// run retries transient failures with exponential backoff; after the
// retry budget is spent the table is declared unavailable and stays
// empty. Only context cancellation aborts the whole load.
func (t *tableLoad[T]) run(ctx context.Context) func() error {
	return func() error {
		bo := backoff.WithContext(newLoadBackoff(), ctx)

		err := backoff.Retry(func() error {
			rows, err := t.list(ctx)
			if err != nil {
				return err
			}
			t.rows = rows
			return nil
		}, bo)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warnf(ctx, "could not load %s table: %s", t.name, err.Error())
			t.rows = nil
		}

		return nil
	}
}

func newLoadBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = 10 * time.Second
	return bo
}
