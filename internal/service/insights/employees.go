package insights

import (
	"sort"

	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

type EmployeeFilter struct {
	Title   *string
	Country *string
}

type EmployeeInsights struct {
	Total           int `json:"total"`
	UniqueTitles    int `json:"unique_titles"`
	UniqueCountries int `json:"unique_countries"`
	UniqueCities    int `json:"unique_cities"`

	ByTitle       []CountRow `json:"by_title"`
	ByCountry     []CountRow `json:"by_country"`
	OrdersHandled []CountRow `json:"orders_handled"`
}

func employeeInsights(snap *dataset.Snapshot, f EmployeeFilter) *EmployeeInsights {
	idx := snap.Index()

	var filtered []domain.Employee
	for _, e := range snap.Employees {
		if f.Title != nil && (e.Title == nil || *e.Title != *f.Title) {
			continue
		}
		if f.Country != nil && (e.Country == nil || *e.Country != *f.Country) {
			continue
		}
		filtered = append(filtered, e)
	}

	title := func(e domain.Employee) (string, bool) { return deref(e.Title) }
	country := func(e domain.Employee) (string, bool) { return deref(e.Country) }
	city := func(e domain.Employee) (string, bool) { return deref(e.City) }

	handled := make([]CountRow, 0, len(filtered))
	for _, e := range filtered {
		handled = append(handled, CountRow{
			Label: employeeLabel(idx, e.EmployeeID),
			Count: len(idx.OrdersByEmployee[e.EmployeeID]),
		})
	}
	sort.Slice(handled, func(i, j int) bool {
		if handled[i].Count != handled[j].Count {
			return handled[i].Count > handled[j].Count
		}
		return handled[i].Label < handled[j].Label
	})

	return &EmployeeInsights{
		Total:           len(filtered),
		UniqueTitles:    distinct(filtered, title),
		UniqueCountries: distinct(filtered, country),
		UniqueCities:    distinct(filtered, city),
		ByTitle:         countBy(filtered, title, 0),
		ByCountry:       countBy(filtered, country, 0),
		OrdersHandled:   handled,
	}
}
