package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID   string  `db:"customer_id" json:"customer_id"`
	CompanyName  string  `db:"company_name" json:"company_name"`
	ContactName  *string `db:"contact_name" json:"contact_name,omitempty"`
	ContactTitle *string `db:"contact_title" json:"contact_title,omitempty"`
	City         *string `db:"city" json:"city,omitempty"`
	Country      *string `db:"country" json:"country,omitempty"`
	Phone        *string `db:"phone" json:"phone,omitempty"`
}

type Order struct {
	OrderID     int             `db:"order_id" json:"order_id"`
	CustomerID  *string         `db:"customer_id" json:"customer_id,omitempty"`
	EmployeeID  *int            `db:"employee_id" json:"employee_id,omitempty"`
	OrderDate   *time.Time      `db:"order_date" json:"order_date,omitempty"`
	ShipCountry *string         `db:"ship_country" json:"ship_country,omitempty"`
	Freight     decimal.Decimal `db:"freight" json:"freight"`
}

type Employee struct {
	EmployeeID int     `db:"employee_id" json:"employee_id"`
	FirstName  string  `db:"first_name" json:"first_name"`
	LastName   string  `db:"last_name" json:"last_name"`
	Title      *string `db:"title" json:"title,omitempty"`
	City       *string `db:"city" json:"city,omitempty"`
	Country    *string `db:"country" json:"country,omitempty"`
	ReportsTo  *int    `db:"reports_to" json:"reports_to,omitempty"`
}

type Product struct {
	ProductID    int             `db:"product_id" json:"product_id"`
	ProductName  string          `db:"product_name" json:"product_name"`
	CategoryID   *int            `db:"category_id" json:"category_id,omitempty"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price"`
	UnitsInStock int             `db:"units_in_stock" json:"units_in_stock"`
	Discontinued bool            `db:"discontinued" json:"discontinued"`
}

type Category struct {
	CategoryID   int     `db:"category_id" json:"category_id"`
	CategoryName string  `db:"category_name" json:"category_name"`
	Description  *string `db:"description" json:"description,omitempty"`
}

// OrderDetail carries the price agreed at the time of sale. Revenue is
// always computed from this UnitPrice, not the Product catalog price.
type OrderDetail struct {
	OrderID   int             `db:"order_id" json:"order_id"`
	ProductID int             `db:"product_id" json:"product_id"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Discount  decimal.Decimal `db:"discount" json:"discount"`
}

func (d OrderDetail) Revenue() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
