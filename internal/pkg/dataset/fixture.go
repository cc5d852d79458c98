package dataset

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akarpov/salesdash/internal/domain"
)

// fixtureLoader serves an embedded sample of the classic trade schema so
// the service runs without a database (demo mode).
type fixtureLoader struct{}

func NewFixtureLoader() Loader {
	return &fixtureLoader{}
}

func (l *fixtureLoader) Load(_ context.Context) (*Snapshot, error) {
	return NewSnapshot(
		fixtureCustomers(),
		fixtureOrders(),
		fixtureEmployees(),
		fixtureProducts(),
		fixtureCategories(),
		fixtureOrderDetails(),
	), nil
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixtureCustomers() []domain.Customer {
	return []domain.Customer{
		{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste", ContactName: strp("Maria Anders"), ContactTitle: strp("Sales Representative"), City: strp("Berlin"), Country: strp("Germany"), Phone: strp("030-0074321")},
		{CustomerID: "ANATR", CompanyName: "Ana Trujillo Emparedados", ContactName: strp("Ana Trujillo"), ContactTitle: strp("Owner"), City: strp("México D.F."), Country: strp("Mexico"), Phone: strp("(5) 555-4729")},
		{CustomerID: "ANTON", CompanyName: "Antonio Moreno Taquería", ContactName: strp("Antonio Moreno"), ContactTitle: strp("Owner"), City: strp("México D.F."), Country: strp("Mexico"), Phone: strp("(5) 555-3932")},
		{CustomerID: "AROUT", CompanyName: "Around the Horn", ContactName: strp("Thomas Hardy"), ContactTitle: strp("Sales Representative"), City: strp("London"), Country: strp("UK"), Phone: strp("(171) 555-7788")},
		{CustomerID: "BERGS", CompanyName: "Berglunds snabbköp", ContactName: strp("Christina Berglund"), ContactTitle: strp("Order Administrator"), City: strp("Luleå"), Country: strp("Sweden"), Phone: strp("0921-12 34 65")},
		{CustomerID: "BLAUS", CompanyName: "Blauer See Delikatessen", ContactName: strp("Hanna Moos"), ContactTitle: strp("Sales Representative"), City: strp("Mannheim"), Country: strp("Germany"), Phone: strp("0621-08460")},
		{CustomerID: "BLONP", CompanyName: "Blondel père et fils", ContactName: strp("Frédérique Citeaux"), ContactTitle: strp("Marketing Manager"), City: strp("Strasbourg"), Country: strp("France"), Phone: strp("88.60.15.31")},
		{CustomerID: "BOLID", CompanyName: "Bólido Comidas preparadas", ContactName: strp("Martín Sommer"), ContactTitle: strp("Owner"), City: strp("Madrid"), Country: strp("Spain"), Phone: strp("(91) 555 22 82")},
		{CustomerID: "BONAP", CompanyName: "Bon app'", ContactName: strp("Laurence Lebihans"), ContactTitle: strp("Owner"), City: strp("Marseille"), Country: strp("France"), Phone: strp("91.24.45.40")},
		{CustomerID: "BOTTM", CompanyName: "Bottom-Dollar Markets", ContactName: strp("Elizabeth Lincoln"), ContactTitle: strp("Accounting Manager"), City: strp("Tsawassen"), Country: strp("Canada"), Phone: strp("(604) 555-4729")},
		{CustomerID: "CHOPS", CompanyName: "Chop-suey Chinese", ContactName: strp("Yang Wang"), ContactTitle: strp("Owner"), City: strp("Bern"), Country: strp("Switzerland"), Phone: strp("0452-076545")},
		{CustomerID: "HANAR", CompanyName: "Hanari Carnes", ContactName: strp("Mario Pontes"), ContactTitle: strp("Accounting Manager"), City: strp("Rio de Janeiro"), Country: strp("Brazil"), Phone: strp("(21) 555-0091")},
		{CustomerID: "HILAA", CompanyName: "HILARION-Abastos", ContactName: strp("Carlos Hernández"), ContactTitle: strp("Sales Representative"), City: strp("San Cristóbal"), Country: strp("Venezuela"), Phone: strp("(5) 555-1340")},
		{CustomerID: "RICSU", CompanyName: "Richter Supermarkt", ContactName: strp("Michael Holz"), ContactTitle: strp("Sales Manager"), City: strp("Genève"), Country: strp("Switzerland"), Phone: strp("0897-034214")},
		{CustomerID: "SUPRD", CompanyName: "Suprêmes délices", ContactName: strp("Pascale Cartrain"), ContactTitle: strp("Accounting Manager"), City: strp("Charleroi"), Country: strp("Belgium"), Phone: strp("(071) 23 67 22 20")},
		{CustomerID: "TOMSP", CompanyName: "Toms Spezialitäten", ContactName: strp("Karin Josephs"), ContactTitle: strp("Marketing Manager"), City: strp("Münster"), Country: strp("Germany"), Phone: strp("0251-031259")},
		{CustomerID: "VICTE", CompanyName: "Victuailles en stock", ContactName: strp("Mary Saveley"), ContactTitle: strp("Sales Agent"), City: strp("Lyon"), Country: strp("France"), Phone: strp("78.32.54.86")},
		{CustomerID: "VINET", CompanyName: "Vins et alcools Chevalier", ContactName: strp("Paul Henriot"), ContactTitle: strp("Accounting Manager"), City: strp("Reims"), Country: strp("France"), Phone: strp("26.47.15.10")},
		{CustomerID: "WELLI", CompanyName: "Wellington Importadora", ContactName: strp("Paula Parente"), ContactTitle: strp("Sales Manager"), City: strp("Resende"), Country: strp("Brazil"), Phone: strp("(14) 555-8122")},
	}
}

func fixtureOrders() []domain.Order {
	return []domain.Order{
		{OrderID: 10248, CustomerID: strp("VINET"), EmployeeID: intp(5), OrderDate: date(1996, time.July, 4), ShipCountry: strp("France"), Freight: money("32.38")},
		{OrderID: 10249, CustomerID: strp("TOMSP"), EmployeeID: intp(6), OrderDate: date(1996, time.July, 5), ShipCountry: strp("Germany"), Freight: money("11.61")},
		{OrderID: 10250, CustomerID: strp("HANAR"), EmployeeID: intp(4), OrderDate: date(1996, time.July, 8), ShipCountry: strp("Brazil"), Freight: money("65.83")},
		{OrderID: 10251, CustomerID: strp("VICTE"), EmployeeID: intp(3), OrderDate: date(1996, time.July, 8), ShipCountry: strp("France"), Freight: money("41.34")},
		{OrderID: 10252, CustomerID: strp("SUPRD"), EmployeeID: intp(4), OrderDate: date(1996, time.July, 9), ShipCountry: strp("Belgium"), Freight: money("51.30")},
		{OrderID: 10253, CustomerID: strp("HANAR"), EmployeeID: intp(3), OrderDate: date(1996, time.July, 10), ShipCountry: strp("Brazil"), Freight: money("58.17")},
		{OrderID: 10254, CustomerID: strp("CHOPS"), EmployeeID: intp(5), OrderDate: date(1996, time.July, 11), ShipCountry: strp("Switzerland"), Freight: money("22.98")},
		{OrderID: 10255, CustomerID: strp("RICSU"), EmployeeID: intp(9), OrderDate: date(1996, time.July, 12), ShipCountry: strp("Switzerland"), Freight: money("148.33")},
		{OrderID: 10256, CustomerID: strp("WELLI"), EmployeeID: intp(3), OrderDate: date(1996, time.July, 15), ShipCountry: strp("Brazil"), Freight: money("13.97")},
		{OrderID: 10257, CustomerID: strp("HILAA"), EmployeeID: intp(4), OrderDate: date(1996, time.July, 16), ShipCountry: strp("Venezuela"), Freight: money("81.91")},
	}
}

func fixtureEmployees() []domain.Employee {
	return []domain.Employee{
		{EmployeeID: 1, FirstName: "Nancy", LastName: "Davolio", Title: strp("Sales Representative"), City: strp("Seattle"), Country: strp("USA"), ReportsTo: intp(2)},
		{EmployeeID: 2, FirstName: "Andrew", LastName: "Fuller", Title: strp("Vice President, Sales"), City: strp("Tacoma"), Country: strp("USA")},
		{EmployeeID: 3, FirstName: "Janet", LastName: "Leverling", Title: strp("Sales Representative"), City: strp("Kirkland"), Country: strp("USA"), ReportsTo: intp(2)},
		{EmployeeID: 4, FirstName: "Margaret", LastName: "Peacock", Title: strp("Sales Representative"), City: strp("London"), Country: strp("UK"), ReportsTo: intp(2)},
		{EmployeeID: 5, FirstName: "Steven", LastName: "Buchanan", Title: strp("Sales Manager"), City: strp("London"), Country: strp("UK"), ReportsTo: intp(2)},
		{EmployeeID: 6, FirstName: "Michael", LastName: "Suyama", Title: strp("Sales Representative"), City: strp("London"), Country: strp("UK"), ReportsTo: intp(5)},
		{EmployeeID: 7, FirstName: "Robert", LastName: "King", Title: strp("Sales Representative"), City: strp("London"), Country: strp("UK"), ReportsTo: intp(5)},
		{EmployeeID: 8, FirstName: "Laura", LastName: "Callahan", Title: strp("Inside Sales Coordinator"), City: strp("Seattle"), Country: strp("USA"), ReportsTo: intp(2)},
		{EmployeeID: 9, FirstName: "Anne", LastName: "Dodsworth", Title: strp("Sales Representative"), City: strp("London"), Country: strp("UK"), ReportsTo: intp(5)},
	}
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ProductID: 1, ProductName: "Chai", CategoryID: intp(1), UnitPrice: money("18.00"), UnitsInStock: 39},
		{ProductID: 2, ProductName: "Chang", CategoryID: intp(1), UnitPrice: money("19.00"), UnitsInStock: 17},
		{ProductID: 3, ProductName: "Aniseed Syrup", CategoryID: intp(2), UnitPrice: money("10.00"), UnitsInStock: 13},
		{ProductID: 4, ProductName: "Chef Anton's Cajun Seasoning", CategoryID: intp(2), UnitPrice: money("22.00"), UnitsInStock: 53},
		{ProductID: 5, ProductName: "Chef Anton's Gumbo Mix", CategoryID: intp(2), UnitPrice: money("21.35"), UnitsInStock: 0, Discontinued: true},
		{ProductID: 6, ProductName: "Grandma's Boysenberry Spread", CategoryID: intp(2), UnitPrice: money("25.00"), UnitsInStock: 120},
		{ProductID: 7, ProductName: "Uncle Bob's Organic Dried Pears", CategoryID: intp(7), UnitPrice: money("30.00"), UnitsInStock: 15},
		{ProductID: 8, ProductName: "Northwoods Cranberry Sauce", CategoryID: intp(2), UnitPrice: money("40.00"), UnitsInStock: 6},
		{ProductID: 9, ProductName: "Mishi Kobe Niku", CategoryID: intp(6), UnitPrice: money("97.00"), UnitsInStock: 29, Discontinued: true},
		{ProductID: 10, ProductName: "Ikura", CategoryID: intp(8), UnitPrice: money("31.00"), UnitsInStock: 31},
		{ProductID: 11, ProductName: "Queso Cabrales", CategoryID: intp(4), UnitPrice: money("21.00"), UnitsInStock: 22},
		{ProductID: 14, ProductName: "Tofu", CategoryID: intp(7), UnitPrice: money("23.25"), UnitsInStock: 35},
		{ProductID: 20, ProductName: "Sir Rodney's Marmalade", CategoryID: intp(3), UnitPrice: money("81.00"), UnitsInStock: 40},
		{ProductID: 22, ProductName: "Gustaf's Knäckebröd", CategoryID: intp(5), UnitPrice: money("21.00"), UnitsInStock: 104},
		{ProductID: 41, ProductName: "Jack's New England Clam Chowder", CategoryID: intp(8), UnitPrice: money("9.65"), UnitsInStock: 85},
		{ProductID: 42, ProductName: "Singaporean Hokkien Fried Mee", CategoryID: intp(5), UnitPrice: money("14.00"), UnitsInStock: 26, Discontinued: true},
		{ProductID: 51, ProductName: "Manjimup Dried Apples", CategoryID: intp(7), UnitPrice: money("53.00"), UnitsInStock: 20},
		{ProductID: 65, ProductName: "Louisiana Fiery Hot Pepper Sauce", CategoryID: intp(2), UnitPrice: money("21.05"), UnitsInStock: 76},
		{ProductID: 72, ProductName: "Mozzarella di Giovanni", CategoryID: intp(4), UnitPrice: money("34.80"), UnitsInStock: 14},
	}
}

func fixtureCategories() []domain.Category {
	return []domain.Category{
		{CategoryID: 1, CategoryName: "Beverages", Description: strp("Soft drinks, coffees, teas, beers, and ales")},
		{CategoryID: 2, CategoryName: "Condiments", Description: strp("Sweet and savory sauces, relishes, spreads, and seasonings")},
		{CategoryID: 3, CategoryName: "Confections", Description: strp("Desserts, candies, and sweet breads")},
		{CategoryID: 4, CategoryName: "Dairy Products", Description: strp("Cheeses")},
		{CategoryID: 5, CategoryName: "Grains/Cereals", Description: strp("Breads, crackers, pasta, and cereal")},
		{CategoryID: 6, CategoryName: "Meat/Poultry", Description: strp("Prepared meats")},
		{CategoryID: 7, CategoryName: "Produce", Description: strp("Dried fruit and bean curd")},
		{CategoryID: 8, CategoryName: "Seafood", Description: strp("Seaweed and fish")},
	}
}

func fixtureOrderDetails() []domain.OrderDetail {
	return []domain.OrderDetail{
		{OrderID: 10248, ProductID: 11, UnitPrice: money("14.00"), Quantity: 12, Discount: money("0")},
		{OrderID: 10248, ProductID: 42, UnitPrice: money("9.80"), Quantity: 10, Discount: money("0")},
		{OrderID: 10249, ProductID: 72, UnitPrice: money("34.80"), Quantity: 5, Discount: money("0")},
		{OrderID: 10250, ProductID: 14, UnitPrice: money("18.60"), Quantity: 9, Discount: money("0")},
		{OrderID: 10250, ProductID: 51, UnitPrice: money("42.40"), Quantity: 40, Discount: money("0.15")},
		{OrderID: 10251, ProductID: 41, UnitPrice: money("7.70"), Quantity: 10, Discount: money("0.05")},
		{OrderID: 10251, ProductID: 51, UnitPrice: money("42.40"), Quantity: 35, Discount: money("0.15")},
		{OrderID: 10252, ProductID: 22, UnitPrice: money("16.80"), Quantity: 6, Discount: money("0.05")},
		{OrderID: 10252, ProductID: 65, UnitPrice: money("16.80"), Quantity: 15, Discount: money("0")},
		{OrderID: 10253, ProductID: 20, UnitPrice: money("64.80"), Quantity: 40, Discount: money("0")},
	}
}
