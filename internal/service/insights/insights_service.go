package insights

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

// Service computes the per-page dashboard aggregates over the cached
// snapshot.
type Service struct {
	cache *dataset.Cache
}

func NewService(cache *dataset.Cache) *Service {
	return &Service{cache: cache}
}

type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type AmountRow struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DateAmount struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

const topN = 10

func (s *Service) Customers(ctx context.Context, f CustomerFilter) (*CustomerInsights, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache.Get: %w", err)
	}

	return customerInsights(snap, f), nil
}

func (s *Service) Orders(ctx context.Context, f OrderFilter) (*OrderInsights, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache.Get: %w", err)
	}

	return orderInsights(snap, f), nil
}

func (s *Service) Sales(ctx context.Context, f SalesFilter) (*SalesInsights, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache.Get: %w", err)
	}

	return salesInsights(snap, f), nil
}

func (s *Service) Employees(ctx context.Context, f EmployeeFilter) (*EmployeeInsights, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache.Get: %w", err)
	}

	return employeeInsights(snap, f), nil
}

// countBy tallies a label per row and returns rows sorted by descending
// count, label ascending for equal counts, truncated to limit (0 = all).
func countBy[T any](rows []T, label func(T) (string, bool), limit int) []CountRow {
	counts := make(map[string]int)
	for _, r := range rows {
		if l, ok := label(r); ok {
			counts[l]++
		}
	}

	out := make([]CountRow, 0, len(counts))
	for l, c := range counts {
		out = append(out, CountRow{Label: l, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sumBy[T any](rows []T, label func(T) (string, bool), amount func(T) decimal.Decimal) []AmountRow {
	sums := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if l, ok := label(r); ok {
			sums[l] = sums[l].Add(amount(r))
		}
	}

	out := make([]AmountRow, 0, len(sums))
	for l, a := range sums {
		out = append(out, AmountRow{Label: l, Amount: a})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func distinct[T any](rows []T, label func(T) (string, bool)) int {
	seen := make(map[string]struct{})
	for _, r := range rows {
		if l, ok := label(r); ok {
			seen[l] = struct{}{}
		}
	}
	return len(seen)
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// withinDay compares calendar dates only, both bounds inclusive.
func withinDay(t *time.Time, start, end *time.Time) bool {
	if t == nil {
		return false
	}
	d := toDay(*t)
	if start != nil && d.Before(toDay(*start)) {
		return false
	}
	if end != nil && d.After(toDay(*end)) {
		return false
	}
	return true
}

func toDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
