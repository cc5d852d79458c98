package resolver

import (
	"github.com/shopspring/decimal"

	"github.com/akarpov/salesdash/internal/domain"
)

// Metrics are computed over the resolved bundle, not the full tables.
//
// Revenue is Σ(UnitPrice×Quantity) over the bundle's order-detail rows;
// the detail's historical price is authoritative, never the product's
// catalog price. Discount is reported separately and never subtracts
// from revenue — the dashboards have always shown gross figures.
type Metrics struct {
	Revenue       decimal.Decimal `json:"revenue"`
	OrderCount    int             `json:"order_count"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`

	CustomersServed int `json:"customers_served"`
	ShipCountries   int `json:"ship_countries"`
	CustomerCities  int `json:"customer_cities"`
	ProductsSold    int `json:"products_sold"`

	// AvgDiscount is nil when the bundle has no order-detail rows.
	AvgDiscount *decimal.Decimal `json:"avg_discount,omitempty"`
}

func computeMetrics(res *Result) Metrics {
	orders := bundleOrders(res)

	m := Metrics{
		Revenue:       revenue(res.OrderDetails),
		OrderCount:    distinctOrderIDs(orders),
		AvgOrderValue: decimal.Zero,
	}

	if m.OrderCount > 0 {
		m.AvgOrderValue = m.Revenue.Div(decimal.NewFromInt(int64(m.OrderCount))).Round(2)
	}

	m.CustomersServed = distinctCustomerIDs(orders)
	m.ShipCountries = distinctShipCountries(orders)
	m.CustomerCities = distinctCustomerCities(res)
	m.ProductsSold = distinctProductIDs(res.OrderDetails)
	m.AvgDiscount = avgDiscount(res.OrderDetails)

	return m
}

// bundleOrders normalizes the single-order selector into the same shape
// as the multi-order ones.
func bundleOrders(res *Result) []domain.Order {
	if res.Order != nil {
		return []domain.Order{*res.Order}
	}
	return res.Orders
}

func revenue(details []domain.OrderDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Revenue())
	}
	return total
}

func avgDiscount(details []domain.OrderDetail) *decimal.Decimal {
	if len(details) == 0 {
		return nil
	}

	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Discount)
	}

	avg := total.Div(decimal.NewFromInt(int64(len(details)))).Round(4)
	return &avg
}

func distinctOrderIDs(orders []domain.Order) int {
	seen := make(map[int]struct{}, len(orders))
	for _, o := range orders {
		seen[o.OrderID] = struct{}{}
	}
	return len(seen)
}

func distinctCustomerIDs(orders []domain.Order) int {
	seen := make(map[string]struct{})
	for _, o := range orders {
		if o.CustomerID != nil {
			seen[*o.CustomerID] = struct{}{}
		}
	}
	return len(seen)
}

func distinctShipCountries(orders []domain.Order) int {
	seen := make(map[string]struct{})
	for _, o := range orders {
		if o.ShipCountry != nil {
			seen[*o.ShipCountry] = struct{}{}
		}
	}
	return len(seen)
}

func distinctCustomerCities(res *Result) int {
	seen := make(map[string]struct{})
	add := func(c *domain.Customer) {
		if c != nil && c.City != nil {
			seen[*c.City] = struct{}{}
		}
	}

	add(res.Customer)
	for i := range res.Customers {
		add(&res.Customers[i])
	}
	return len(seen)
}

func distinctProductIDs(details []domain.OrderDetail) int {
	seen := make(map[int]struct{}, len(details))
	for _, d := range details {
		seen[d.ProductID] = struct{}{}
	}
	return len(seen)
}
