package insights

import (
	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

type CustomerFilter struct {
	Country *string
	City    *string
}

type CustomerInsights struct {
	Total           int `json:"total"`
	UniqueCities    int `json:"unique_cities"`
	UniqueCountries int `json:"unique_countries"`
	WithPhone       int `json:"with_phone"`

	ByCountry        []CountRow `json:"by_country"`
	TopCities        []CountRow `json:"top_cities"`
	TopContactTitles []CountRow `json:"top_contact_titles"`
}

func customerInsights(snap *dataset.Snapshot, f CustomerFilter) *CustomerInsights {
	var filtered []domain.Customer
	for _, c := range snap.Customers {
		if f.Country != nil && (c.Country == nil || *c.Country != *f.Country) {
			continue
		}
		if f.City != nil && (c.City == nil || *c.City != *f.City) {
			continue
		}
		filtered = append(filtered, c)
	}

	withPhone := 0
	for _, c := range filtered {
		if c.Phone != nil && *c.Phone != "" {
			withPhone++
		}
	}

	country := func(c domain.Customer) (string, bool) { return deref(c.Country) }
	city := func(c domain.Customer) (string, bool) { return deref(c.City) }
	title := func(c domain.Customer) (string, bool) { return deref(c.ContactTitle) }

	return &CustomerInsights{
		Total:            len(filtered),
		UniqueCities:     distinct(filtered, city),
		UniqueCountries:  distinct(filtered, country),
		WithPhone:        withPhone,
		ByCountry:        countBy(filtered, country, 0),
		TopCities:        countBy(filtered, city, topN),
		TopContactTitles: countBy(filtered, title, 8),
	}
}
