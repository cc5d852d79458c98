package dataset

import (
	"time"

	"github.com/akarpov/salesdash/internal/domain"
)

// Snapshot is an immutable in-memory copy of the six analytics tables.
// Callers must not mutate its slices; a snapshot is shared read-only
// across sessions until the cache discards it.
type Snapshot struct {
	Customers    []domain.Customer
	Orders       []domain.Order
	Employees    []domain.Employee
	Products     []domain.Product
	Categories   []domain.Category
	OrderDetails []domain.OrderDetail

	LoadedAt time.Time

	idx *Index
}

// Index holds hash lookups over the snapshot, one map per join step the
// relationship queries need. Built once per snapshot.
type Index struct {
	CustomerByID map[string]*domain.Customer
	OrderByID    map[int]*domain.Order
	EmployeeByID map[int]*domain.Employee
	ProductByID  map[int]*domain.Product
	CategoryByID map[int]*domain.Category

	OrdersByCustomer   map[string][]*domain.Order
	OrdersByEmployee   map[int][]*domain.Order
	DetailsByOrder     map[int][]*domain.OrderDetail
	DetailsByProduct   map[int][]*domain.OrderDetail
	ProductsByCategory map[int][]*domain.Product
}

func NewSnapshot(
	customers []domain.Customer,
	orders []domain.Order,
	employees []domain.Employee,
	products []domain.Product,
	categories []domain.Category,
	orderDetails []domain.OrderDetail,
) *Snapshot {
	s := &Snapshot{
		Customers:    customers,
		Orders:       orders,
		Employees:    employees,
		Products:     products,
		Categories:   categories,
		OrderDetails: orderDetails,
		LoadedAt:     time.Now(),
	}
	s.idx = buildIndex(s)
	return s
}

func (s *Snapshot) Index() *Index {
	return s.idx
}

func (s *Snapshot) Age() time.Duration {
	return time.Since(s.LoadedAt)
}

func buildIndex(s *Snapshot) *Index {
	idx := &Index{
		CustomerByID:       make(map[string]*domain.Customer, len(s.Customers)),
		OrderByID:          make(map[int]*domain.Order, len(s.Orders)),
		EmployeeByID:       make(map[int]*domain.Employee, len(s.Employees)),
		ProductByID:        make(map[int]*domain.Product, len(s.Products)),
		CategoryByID:       make(map[int]*domain.Category, len(s.Categories)),
		OrdersByCustomer:   make(map[string][]*domain.Order),
		OrdersByEmployee:   make(map[int][]*domain.Order),
		DetailsByOrder:     make(map[int][]*domain.OrderDetail),
		DetailsByProduct:   make(map[int][]*domain.OrderDetail),
		ProductsByCategory: make(map[int][]*domain.Product),
	}

	for i := range s.Customers {
		c := &s.Customers[i]
		idx.CustomerByID[c.CustomerID] = c
	}

	for i := range s.Orders {
		o := &s.Orders[i]
		idx.OrderByID[o.OrderID] = o
		if o.CustomerID != nil {
			idx.OrdersByCustomer[*o.CustomerID] = append(idx.OrdersByCustomer[*o.CustomerID], o)
		}
		if o.EmployeeID != nil {
			idx.OrdersByEmployee[*o.EmployeeID] = append(idx.OrdersByEmployee[*o.EmployeeID], o)
		}
	}

	for i := range s.Employees {
		e := &s.Employees[i]
		idx.EmployeeByID[e.EmployeeID] = e
	}

	for i := range s.Products {
		p := &s.Products[i]
		idx.ProductByID[p.ProductID] = p
		if p.CategoryID != nil {
			idx.ProductsByCategory[*p.CategoryID] = append(idx.ProductsByCategory[*p.CategoryID], p)
		}
	}

	for i := range s.Categories {
		c := &s.Categories[i]
		idx.CategoryByID[c.CategoryID] = c
	}

	for i := range s.OrderDetails {
		d := &s.OrderDetails[i]
		idx.DetailsByOrder[d.OrderID] = append(idx.DetailsByOrder[d.OrderID], d)
		idx.DetailsByProduct[d.ProductID] = append(idx.DetailsByProduct[d.ProductID], d)
	}

	return idx
}
