package insights

import (
	"sort"
	"strconv"
	"time"

	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

type OrderFilter struct {
	Start       *time.Time
	End         *time.Time
	ShipCountry *string
}

type OrderInsights struct {
	Total           int `json:"total"`
	UniqueCustomers int `json:"unique_customers"`
	ShipCountries   int `json:"ship_countries"`

	PerDay        []DateCount `json:"per_day"`
	ByShipCountry []CountRow  `json:"by_ship_country"`
	TopCustomers  []CountRow  `json:"top_customers"`
}

func orderInsights(snap *dataset.Snapshot, f OrderFilter) *OrderInsights {
	var filtered []domain.Order
	for _, o := range snap.Orders {
		if (f.Start != nil || f.End != nil) && !withinDay(o.OrderDate, f.Start, f.End) {
			continue
		}
		if f.ShipCountry != nil && (o.ShipCountry == nil || *o.ShipCountry != *f.ShipCountry) {
			continue
		}
		filtered = append(filtered, o)
	}

	customer := func(o domain.Order) (string, bool) { return deref(o.CustomerID) }
	country := func(o domain.Order) (string, bool) { return deref(o.ShipCountry) }

	return &OrderInsights{
		Total:           len(filtered),
		UniqueCustomers: distinct(filtered, customer),
		ShipCountries:   distinct(filtered, country),
		PerDay:          ordersPerDay(filtered),
		ByShipCountry:   countBy(filtered, country, topN),
		TopCustomers:    countBy(filtered, customer, topN),
	}
}

func ordersPerDay(orders []domain.Order) []DateCount {
	counts := make(map[string]int)
	for _, o := range orders {
		if o.OrderDate != nil {
			counts[day(*o.OrderDate)]++
		}
	}

	out := make([]DateCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, DateCount{Date: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// employeeLabel names an employee for per-employee tallies, falling back
// to the raw ID when the employees table did not load.
func employeeLabel(idx *dataset.Index, employeeID int) string {
	if e, ok := idx.EmployeeByID[employeeID]; ok {
		return e.FullName()
	}
	return "#" + strconv.Itoa(employeeID)
}
