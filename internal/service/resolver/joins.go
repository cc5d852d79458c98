package resolver

import (
	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

// Semi-join helpers. Each walks the driving rows once and probes a
// snapshot index, so a join step costs O(n+m). Deduplication keeps the
// first-seen occurrence, which makes results stable across calls over
// the same snapshot.

func collectOrders(orders []*domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, *o)
	}
	return out
}

func collectDetails(details []*domain.OrderDetail) []domain.OrderDetail {
	out := make([]domain.OrderDetail, 0, len(details))
	for _, d := range details {
		out = append(out, *d)
	}
	return out
}

func detailsOfOrders(idx *dataset.Index, orders []domain.Order) []domain.OrderDetail {
	var out []domain.OrderDetail
	for _, o := range orders {
		for _, d := range idx.DetailsByOrder[o.OrderID] {
			out = append(out, *d)
		}
	}
	return out
}

func productsOfDetails(idx *dataset.Index, details []domain.OrderDetail) []domain.Product {
	seen := make(map[int]struct{}, len(details))
	var out []domain.Product
	for _, d := range details {
		if _, ok := seen[d.ProductID]; ok {
			continue
		}
		seen[d.ProductID] = struct{}{}
		if p, ok := idx.ProductByID[d.ProductID]; ok {
			out = append(out, *p)
		}
	}
	return out
}

func ordersOfDetails(idx *dataset.Index, details []domain.OrderDetail) []domain.Order {
	seen := make(map[int]struct{}, len(details))
	var out []domain.Order
	for _, d := range details {
		if _, ok := seen[d.OrderID]; ok {
			continue
		}
		seen[d.OrderID] = struct{}{}
		if o, ok := idx.OrderByID[d.OrderID]; ok {
			out = append(out, *o)
		}
	}
	return out
}

func customersOfOrders(idx *dataset.Index, orders []domain.Order) []domain.Customer {
	seen := make(map[string]struct{}, len(orders))
	var out []domain.Customer
	for _, o := range orders {
		if o.CustomerID == nil {
			continue
		}
		if _, ok := seen[*o.CustomerID]; ok {
			continue
		}
		seen[*o.CustomerID] = struct{}{}
		if c, ok := idx.CustomerByID[*o.CustomerID]; ok {
			out = append(out, *c)
		}
	}
	return out
}
