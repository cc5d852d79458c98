package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

// Result bundles the rows related to the selected entity. Single-record
// fields are set only for the selector kinds that pin one entity; slice
// fields are empty, never nil checked by callers, when nothing matched.
type Result struct {
	Selector string `json:"selector"`

	Order    *domain.Order    `json:"order,omitempty"`
	Customer *domain.Customer `json:"customer,omitempty"`
	Employee *domain.Employee `json:"employee,omitempty"`
	Product  *domain.Product  `json:"product,omitempty"`
	Category *domain.Category `json:"category,omitempty"`

	Orders       []domain.Order       `json:"orders,omitempty"`
	Customers    []domain.Customer    `json:"customers,omitempty"`
	Products     []domain.Product     `json:"products,omitempty"`
	OrderDetails []domain.OrderDetail `json:"order_details,omitempty"`

	Metrics Metrics `json:"metrics"`
}

// Empty reports whether the selector matched nothing at all.
func (r *Result) Empty() bool {
	return r.Order == nil && r.Customer == nil && r.Employee == nil &&
		r.Product == nil && r.Category == nil &&
		len(r.Orders) == 0 && len(r.Customers) == 0 &&
		len(r.Products) == 0 && len(r.OrderDetails) == 0
}

type Service struct {
	cache *dataset.Cache
}

func NewService(cache *dataset.Cache) *Service {
	return &Service{cache: cache}
}

func (s *Service) Resolve(ctx context.Context, sel Selector) (*Result, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache.Get: %w", err)
	}

	return Resolve(snap, sel), nil
}

// Resolve walks the foreign keys from the selected entity across the
// snapshot and computes the bundle metrics. Unknown keys and missing
// tables yield empty results. A selector of unknown kind panics: that is
// a caller bug, not a data condition.
func Resolve(snap *dataset.Snapshot, sel Selector) *Result {
	res := &Result{Selector: sel.Kind().String()}

	switch sel.Kind() {
	case KindOrder:
		resolveOrder(snap, sel.orderID, res)
	case KindCustomer:
		resolveCustomer(snap, sel.customerID, res)
	case KindEmployee:
		resolveEmployee(snap, sel.employeeID, res)
	case KindProduct:
		resolveProduct(snap, sel.productID, res)
	case KindCategory:
		resolveCategory(snap, sel.categoryID, res)
	case KindDateRange:
		resolveDateRange(snap, sel.start, sel.end, res)
	default:
		panic(fmt.Sprintf("resolver: invalid selector kind %v", sel.Kind()))
	}

	res.Metrics = computeMetrics(res)
	return res
}

func resolveOrder(snap *dataset.Snapshot, orderID int, res *Result) {
	idx := snap.Index()

	order, ok := idx.OrderByID[orderID]
	if !ok {
		return
	}
	res.Order = order

	if order.CustomerID != nil {
		res.Customer = idx.CustomerByID[*order.CustomerID]
	}
	if order.EmployeeID != nil {
		res.Employee = idx.EmployeeByID[*order.EmployeeID]
	}

	res.OrderDetails = collectDetails(idx.DetailsByOrder[orderID])
	res.Products = productsOfDetails(idx, res.OrderDetails)
}

func resolveCustomer(snap *dataset.Snapshot, customerID string, res *Result) {
	idx := snap.Index()

	res.Customer = idx.CustomerByID[customerID]
	res.Orders = collectOrders(idx.OrdersByCustomer[customerID])
	res.OrderDetails = detailsOfOrders(idx, res.Orders)
	res.Products = productsOfDetails(idx, res.OrderDetails)
}

func resolveEmployee(snap *dataset.Snapshot, employeeID int, res *Result) {
	idx := snap.Index()

	res.Employee = idx.EmployeeByID[employeeID]
	res.Orders = collectOrders(idx.OrdersByEmployee[employeeID])
	res.Customers = customersOfOrders(idx, res.Orders)
	res.OrderDetails = detailsOfOrders(idx, res.Orders)
	res.Products = productsOfDetails(idx, res.OrderDetails)
}

func resolveProduct(snap *dataset.Snapshot, productID int, res *Result) {
	idx := snap.Index()

	product, ok := idx.ProductByID[productID]
	if !ok {
		return
	}
	res.Product = product

	if product.CategoryID != nil {
		res.Category = idx.CategoryByID[*product.CategoryID]
	}

	res.OrderDetails = collectDetails(idx.DetailsByProduct[productID])
	res.Orders = ordersOfDetails(idx, res.OrderDetails)
	res.Customers = customersOfOrders(idx, res.Orders)
}

func resolveCategory(snap *dataset.Snapshot, categoryID int, res *Result) {
	idx := snap.Index()

	res.Category = idx.CategoryByID[categoryID]

	for _, p := range idx.ProductsByCategory[categoryID] {
		res.Products = append(res.Products, *p)
	}

	for _, p := range res.Products {
		res.OrderDetails = append(res.OrderDetails, collectDetails(idx.DetailsByProduct[p.ProductID])...)
	}

	res.Orders = ordersOfDetails(idx, res.OrderDetails)
}

// resolveDateRange includes orders dated within [start, end], both ends
// inclusive, comparing calendar dates and ignoring time of day.
func resolveDateRange(snap *dataset.Snapshot, start, end time.Time, res *Result) {
	idx := snap.Index()

	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	for i := range snap.Orders {
		o := &snap.Orders[i]
		if o.OrderDate == nil {
			continue
		}
		day := truncateToDay(*o.OrderDate)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		res.Orders = append(res.Orders, *o)
	}

	res.OrderDetails = detailsOfOrders(idx, res.Orders)
	res.Products = productsOfDetails(idx, res.OrderDetails)
	res.Customers = customersOfOrders(idx, res.Orders)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
