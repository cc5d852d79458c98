package resolver

import (
	"fmt"
	"time"
)

// Kind tags the single active filter driving a relationship query.
type Kind int

const (
	KindOrder Kind = iota + 1
	KindCustomer
	KindEmployee
	KindProduct
	KindCategory
	KindDateRange
)

func (k Kind) String() string {
	switch k {
	case KindOrder:
		return "order"
	case KindCustomer:
		return "customer"
	case KindEmployee:
		return "employee"
	case KindProduct:
		return "product"
	case KindCategory:
		return "category"
	case KindDateRange:
		return "date_range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Selector is a tagged value over the six query kinds. Construct through
// the By* helpers or FromInputs; the zero Selector is invalid.
type Selector struct {
	kind Kind

	orderID    int
	customerID string
	employeeID int
	productID  int
	categoryID int
	start, end time.Time
}

func ByOrder(orderID int) Selector {
	return Selector{kind: KindOrder, orderID: orderID}
}

func ByCustomer(customerID string) Selector {
	return Selector{kind: KindCustomer, customerID: customerID}
}

func ByEmployee(employeeID int) Selector {
	return Selector{kind: KindEmployee, employeeID: employeeID}
}

func ByProduct(productID int) Selector {
	return Selector{kind: KindProduct, productID: productID}
}

func ByCategory(categoryID int) Selector {
	return Selector{kind: KindCategory, categoryID: categoryID}
}

// ByDateRange selects orders dated within [start, end], both ends
// inclusive, compared on the calendar date only.
func ByDateRange(start, end time.Time) Selector {
	return Selector{kind: KindDateRange, start: start, end: end}
}

func (s Selector) Kind() Kind {
	return s.kind
}

// Inputs carries the raw filter widgets' values; nil means the widget is
// at its default.
type Inputs struct {
	OrderID    *int
	CustomerID *string
	EmployeeID *int
	ProductID  *int
	CategoryID *int
	Start      *time.Time
	End        *time.Time
}

// FromInputs picks the single active selector. When several inputs are
// set at once the precedence is fixed: order, customer, employee,
// product, category, date range. Returns false when nothing is set.
func FromInputs(in Inputs) (Selector, bool) {
	switch {
	case in.OrderID != nil:
		return ByOrder(*in.OrderID), true
	case in.CustomerID != nil:
		return ByCustomer(*in.CustomerID), true
	case in.EmployeeID != nil:
		return ByEmployee(*in.EmployeeID), true
	case in.ProductID != nil:
		return ByProduct(*in.ProductID), true
	case in.CategoryID != nil:
		return ByCategory(*in.CategoryID), true
	case in.Start != nil && in.End != nil:
		return ByDateRange(*in.Start, *in.End), true
	default:
		return Selector{}, false
	}
}
