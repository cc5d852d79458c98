package store

import (
	"context"
	"fmt"

	"github.com/akarpov/salesdash/internal/domain"
)

var (
	customerColumns    = []string{"customer_id", "company_name", "contact_name", "contact_title", "city", "country", "phone"}
	orderColumns       = []string{"order_id", "customer_id", "employee_id", "order_date", "ship_country", "freight"}
	employeeColumns    = []string{"employee_id", "first_name", "last_name", "title", "city", "country", "reports_to"}
	productColumns     = []string{"product_id", "product_name", "category_id", "unit_price", "units_in_stock", "discontinued"}
	categoryColumns    = []string{"category_id", "category_name", "description"}
	orderDetailColumns = []string{"order_id", "product_id", "unit_price", "quantity", "discount"}
)

func (s *store) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := builder().Select(customerColumns...).
		From(tableCustomers).
		OrderBy("customer_id")

	var selected []domain.Customer
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("select customers: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	query := builder().Select(orderColumns...).
		From(tableOrders).
		OrderBy("order_id")

	var selected []domain.Order
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("select orders: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := builder().Select(employeeColumns...).
		From(tableEmployees).
		OrderBy("employee_id")

	var selected []domain.Employee
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("select employees: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := builder().Select(productColumns...).
		From(tableProducts).
		OrderBy("product_id")

	var selected []domain.Product
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("select products: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := builder().Select(categoryColumns...).
		From(tableCategories).
		OrderBy("category_id")

	var selected []domain.Category
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("select categories: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) ListOrderDetails(ctx context.Context) ([]domain.OrderDetail, error) {
	query := builder().Select(orderDetailColumns...).
		From(tableOrderDetails).
		OrderBy("order_id", "product_id")

	var selected []domain.OrderDetail
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("select order details: %w", wrapErr(err))
	}

	return selected, nil
}
