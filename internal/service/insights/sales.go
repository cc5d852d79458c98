package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

type SalesFilter struct {
	CategoryID *int
	Start      *time.Time
	End        *time.Time
}

type SalesInsights struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Orders        int             `json:"orders"`
	ProductsSold  int             `json:"products_sold"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`

	RevenueByCategory []AmountRow  `json:"revenue_by_category"`
	TopProducts       []CountRow   `json:"top_products_by_quantity"`
	RevenuePerDay     []DateAmount `json:"revenue_per_day"`
}

// saleLine is one order-detail row joined to its product, category and
// order, the in-memory equivalent of the merged sales frame the
// dashboards work from.
type saleLine struct {
	detail   domain.OrderDetail
	product  *domain.Product
	category *domain.Category
	order    *domain.Order
}

func salesInsights(snap *dataset.Snapshot, f SalesFilter) *SalesInsights {
	idx := snap.Index()

	var lines []saleLine
	for _, d := range snap.OrderDetails {
		line := saleLine{detail: d}
		if p, ok := idx.ProductByID[d.ProductID]; ok {
			line.product = p
			if p.CategoryID != nil {
				line.category = idx.CategoryByID[*p.CategoryID]
			}
		}
		line.order = idx.OrderByID[d.OrderID]

		if f.CategoryID != nil {
			if line.product == nil || line.product.CategoryID == nil || *line.product.CategoryID != *f.CategoryID {
				continue
			}
		}
		if f.Start != nil || f.End != nil {
			if line.order == nil || !withinDay(line.order.OrderDate, f.Start, f.End) {
				continue
			}
		}

		lines = append(lines, line)
	}

	out := &SalesInsights{
		TotalRevenue:  decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}

	orderIDs := make(map[int]struct{})
	productIDs := make(map[int]struct{})
	for _, l := range lines {
		out.TotalRevenue = out.TotalRevenue.Add(l.detail.Revenue())
		orderIDs[l.detail.OrderID] = struct{}{}
		productIDs[l.detail.ProductID] = struct{}{}
	}
	out.Orders = len(orderIDs)
	out.ProductsSold = len(productIDs)
	if out.Orders > 0 {
		out.AvgOrderValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(out.Orders))).Round(2)
	}

	out.RevenueByCategory = sumBy(lines,
		func(l saleLine) (string, bool) {
			if l.category == nil {
				return "", false
			}
			return l.category.CategoryName, true
		},
		func(l saleLine) decimal.Decimal { return l.detail.Revenue() },
	)

	out.TopProducts = topProductsByQuantity(lines)
	out.RevenuePerDay = revenuePerDay(lines)

	return out
}

func topProductsByQuantity(lines []saleLine) []CountRow {
	quantities := make(map[string]int)
	for _, l := range lines {
		if l.product == nil {
			continue
		}
		quantities[l.product.ProductName] += l.detail.Quantity
	}

	out := make([]CountRow, 0, len(quantities))
	for name, q := range quantities {
		out = append(out, CountRow{Label: name, Count: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func revenuePerDay(lines []saleLine) []DateAmount {
	sums := make(map[string]decimal.Decimal)
	for _, l := range lines {
		if l.order == nil || l.order.OrderDate == nil {
			continue
		}
		d := day(*l.order.OrderDate)
		sums[d] = sums[d].Add(l.detail.Revenue())
	}

	out := make([]DateAmount, 0, len(sums))
	for d, a := range sums {
		out = append(out, DateAmount{Date: d, Amount: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
