package resolver

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/salesdash/internal/domain"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func datep(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testSnapshot() *dataset.Snapshot {
	customers := []domain.Customer{
		{CustomerID: "VINET", CompanyName: "Vins et alcools Chevalier", City: strp("Reims"), Country: strp("France")},
		{CustomerID: "TOMSP", CompanyName: "Toms Spezialitäten", City: strp("Münster"), Country: strp("Germany")},
		{CustomerID: "HANAR", CompanyName: "Hanari Carnes", City: strp("Rio de Janeiro"), Country: strp("Brazil")},
	}
	orders := []domain.Order{
		{OrderID: 10248, CustomerID: strp("VINET"), EmployeeID: intp(5), OrderDate: datep(1996, time.July, 4), ShipCountry: strp("France")},
		{OrderID: 10249, CustomerID: strp("TOMSP"), EmployeeID: intp(6), OrderDate: datep(1996, time.July, 5), ShipCountry: strp("Germany")},
		{OrderID: 10250, CustomerID: strp("HANAR"), EmployeeID: intp(5), OrderDate: datep(1996, time.July, 8), ShipCountry: strp("Brazil")},
	}
	employees := []domain.Employee{
		{EmployeeID: 5, FirstName: "Steven", LastName: "Buchanan", City: strp("London"), Country: strp("UK")},
		{EmployeeID: 6, FirstName: "Michael", LastName: "Suyama", City: strp("London"), Country: strp("UK")},
	}
	products := []domain.Product{
		{ProductID: 11, ProductName: "Queso Cabrales", CategoryID: intp(4), UnitPrice: dec("21.00")},
		{ProductID: 42, ProductName: "Singaporean Hokkien Fried Mee", CategoryID: intp(5), UnitPrice: dec("14.00")},
		{ProductID: 72, ProductName: "Mozzarella di Giovanni", CategoryID: intp(4), UnitPrice: dec("34.80")},
	}
	categories := []domain.Category{
		{CategoryID: 4, CategoryName: "Dairy Products"},
		{CategoryID: 5, CategoryName: "Grains/Cereals"},
	}
	details := []domain.OrderDetail{
		{OrderID: 10248, ProductID: 11, UnitPrice: dec("14.00"), Quantity: 12, Discount: dec("0")},
		{OrderID: 10248, ProductID: 42, UnitPrice: dec("9.80"), Quantity: 10, Discount: dec("0")},
		{OrderID: 10249, ProductID: 72, UnitPrice: dec("34.80"), Quantity: 5, Discount: dec("0.05")},
		{OrderID: 10250, ProductID: 11, UnitPrice: dec("16.80"), Quantity: 6, Discount: dec("0.15")},
	}

	return dataset.NewSnapshot(customers, orders, employees, products, categories, details)
}

func TestResolveSingleOrder(t *testing.T) {
	snap := dataset.NewSnapshot(
		nil,
		[]domain.Order{{OrderID: 10248, CustomerID: strp("VINET"), EmployeeID: intp(5), OrderDate: datep(1996, time.July, 4)}},
		nil,
		[]domain.Product{{ProductID: 11, ProductName: "Queso Cabrales", CategoryID: intp(4), UnitPrice: dec("21.00")}},
		nil,
		[]domain.OrderDetail{{OrderID: 10248, ProductID: 11, UnitPrice: dec("14.00"), Quantity: 12, Discount: dec("0")}},
	)

	res := Resolve(snap, ByOrder(10248))

	require.NotNil(t, res.Order)
	assert.Equal(t, 10248, res.Order.OrderID)
	require.Len(t, res.Products, 1)
	assert.Equal(t, 11, res.Products[0].ProductID)
	assert.True(t, res.Metrics.Revenue.Equal(dec("168.00")), "revenue = %s", res.Metrics.Revenue)
	assert.True(t, res.Metrics.AvgOrderValue.Equal(dec("168.00")), "aov = %s", res.Metrics.AvgOrderValue)
}

func TestResolveOrderBundle(t *testing.T) {
	snap := testSnapshot()

	res := Resolve(snap, ByOrder(10248))

	require.NotNil(t, res.Order)
	require.NotNil(t, res.Customer)
	assert.Equal(t, "VINET", res.Customer.CustomerID)
	require.NotNil(t, res.Employee)
	assert.Equal(t, 5, res.Employee.EmployeeID)
	assert.Len(t, res.OrderDetails, 2)
	assert.Len(t, res.Products, 2)
	assert.True(t, res.Metrics.Revenue.Equal(dec("266.00"))) // 14*12 + 9.80*10
}

func TestResolveOrderDeduplicatesProducts(t *testing.T) {
	// Same product on two line items with different discount tiers.
	snap := dataset.NewSnapshot(
		nil,
		[]domain.Order{{OrderID: 1}},
		nil,
		[]domain.Product{{ProductID: 7, ProductName: "Uncle Bob's Organic Dried Pears", UnitPrice: dec("30.00")}},
		nil,
		[]domain.OrderDetail{
			{OrderID: 1, ProductID: 7, UnitPrice: dec("30.00"), Quantity: 2, Discount: dec("0")},
			{OrderID: 1, ProductID: 7, UnitPrice: dec("30.00"), Quantity: 3, Discount: dec("0.10")},
		},
	)

	res := Resolve(snap, ByOrder(1))

	assert.Len(t, res.OrderDetails, 2)
	require.Len(t, res.Products, 1)
	assert.Equal(t, 7, res.Products[0].ProductID)
}

func TestResolveCustomerOrders(t *testing.T) {
	snap := testSnapshot()

	res := Resolve(snap, ByCustomer("VINET"))

	require.NotNil(t, res.Customer)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, 10248, res.Orders[0].OrderID)
	assert.Len(t, res.OrderDetails, 2)
	assert.Len(t, res.Products, 2)
}

func TestResolveCustomerWithoutOrders(t *testing.T) {
	snap := dataset.NewSnapshot(
		[]domain.Customer{{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste"}},
		nil, nil, nil, nil, nil,
	)

	res := Resolve(snap, ByCustomer("ALFKI"))

	require.NotNil(t, res.Customer)
	assert.Empty(t, res.Orders)
	assert.Empty(t, res.OrderDetails)
	assert.Equal(t, 0, res.Metrics.OrderCount)
	assert.True(t, res.Metrics.Revenue.IsZero())
}

func TestResolveUnknownKeyYieldsEmptyBundle(t *testing.T) {
	snap := testSnapshot()

	for _, sel := range []Selector{
		ByOrder(99999),
		ByCustomer("NOPE!"),
		ByEmployee(404),
		ByProduct(404),
		ByCategory(404),
	} {
		res := Resolve(snap, sel)
		assert.True(t, res.Empty(), "selector %s should resolve empty", sel.Kind())
		assert.True(t, res.Metrics.Revenue.IsZero())
		assert.True(t, res.Metrics.AvgOrderValue.IsZero())
		assert.Nil(t, res.Metrics.AvgDiscount)
	}
}

func TestRevenueIgnoresCatalogPrice(t *testing.T) {
	build := func(catalogPrice string) *dataset.Snapshot {
		return dataset.NewSnapshot(
			nil,
			[]domain.Order{{OrderID: 1}},
			nil,
			[]domain.Product{{ProductID: 11, ProductName: "Queso Cabrales", UnitPrice: dec(catalogPrice)}},
			nil,
			[]domain.OrderDetail{{OrderID: 1, ProductID: 11, UnitPrice: dec("14.00"), Quantity: 12, Discount: dec("0")}},
		)
	}

	before := Resolve(build("21.00"), ByOrder(1)).Metrics.Revenue
	after := Resolve(build("99.99"), ByOrder(1)).Metrics.Revenue

	assert.True(t, before.Equal(dec("168.00")))
	assert.True(t, after.Equal(before), "catalog price change must not affect historical revenue")
}

func TestResolveEmployeeBundle(t *testing.T) {
	snap := testSnapshot()

	res := Resolve(snap, ByEmployee(5))

	require.NotNil(t, res.Employee)
	assert.Len(t, res.Orders, 2) // 10248, 10250
	require.Len(t, res.Customers, 2)
	assert.Equal(t, "VINET", res.Customers[0].CustomerID)
	assert.Equal(t, "HANAR", res.Customers[1].CustomerID)
	assert.Len(t, res.OrderDetails, 3)
	require.Len(t, res.Products, 2) // 11 dedup'd across orders, 42
	assert.Equal(t, 2, res.Metrics.CustomersServed)
}

func TestResolveProductBundle(t *testing.T) {
	snap := testSnapshot()

	res := Resolve(snap, ByProduct(11))

	require.NotNil(t, res.Product)
	require.NotNil(t, res.Category)
	assert.Equal(t, "Dairy Products", res.Category.CategoryName)
	assert.Len(t, res.OrderDetails, 2)
	assert.Len(t, res.Orders, 2)
	assert.Len(t, res.Customers, 2)
}

func TestResolveCategoryOrders(t *testing.T) {
	snap := testSnapshot()

	res := Resolve(snap, ByCategory(4))

	require.NotNil(t, res.Category)
	assert.Len(t, res.Products, 2) // 11, 72

	inResult := make(map[int]bool)
	for _, o := range res.Orders {
		inResult[o.OrderID] = true
	}

	// Every order in the result must carry at least one line item whose
	// product belongs to the category; every order outside must not.
	idx := snap.Index()
	for _, o := range snap.Orders {
		hasCategoryLine := false
		for _, d := range idx.DetailsByOrder[o.OrderID] {
			if p, ok := idx.ProductByID[d.ProductID]; ok && p.CategoryID != nil && *p.CategoryID == 4 {
				hasCategoryLine = true
			}
		}
		assert.Equal(t, hasCategoryLine, inResult[o.OrderID], "order %d", o.OrderID)
	}
}

func TestResolveDateRangeInclusiveBounds(t *testing.T) {
	snap := testSnapshot()

	start := time.Date(1996, time.July, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(1996, time.July, 5, 0, 0, 0, 0, time.UTC)

	res := Resolve(snap, ByDateRange(start, end))
	require.Len(t, res.Orders, 2)
	assert.Equal(t, 10248, res.Orders[0].OrderID) // dated exactly on start
	assert.Equal(t, 10249, res.Orders[1].OrderID) // dated exactly on end

	// One day earlier / later excludes the boundary orders.
	res = Resolve(snap, ByDateRange(start.AddDate(0, 0, -2), start.AddDate(0, 0, -1)))
	assert.Empty(t, res.Orders)

	res = Resolve(snap, ByDateRange(end.AddDate(0, 0, 1), end.AddDate(0, 0, 2)))
	require.Len(t, res.Orders, 1)
	assert.Equal(t, 10250, res.Orders[0].OrderID)
}

func TestResolveDateRangeIgnoresTimeOfDay(t *testing.T) {
	orderDate := time.Date(1996, time.July, 4, 23, 59, 0, 0, time.UTC)
	snap := dataset.NewSnapshot(
		nil,
		[]domain.Order{{OrderID: 1, OrderDate: &orderDate}},
		nil, nil, nil, nil,
	)

	start := time.Date(1996, time.July, 4, 12, 0, 0, 0, time.UTC)
	res := Resolve(snap, ByDateRange(start, start))

	assert.Len(t, res.Orders, 1)
}

func TestResolveEmptyTables(t *testing.T) {
	snap := dataset.NewSnapshot(nil, nil, nil, nil, nil, nil)

	res := Resolve(snap, ByDateRange(time.Now().AddDate(-1, 0, 0), time.Now()))

	assert.True(t, res.Empty())
	assert.Equal(t, 0, res.Metrics.OrderCount)
	assert.True(t, res.Metrics.AvgOrderValue.IsZero())
	assert.Nil(t, res.Metrics.AvgDiscount)
}

func TestResolvePanicsOnInvalidSelector(t *testing.T) {
	snap := testSnapshot()

	assert.Panics(t, func() {
		Resolve(snap, Selector{})
	})
}
