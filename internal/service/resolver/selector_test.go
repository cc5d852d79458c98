package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInputsPrecedence(t *testing.T) {
	now := time.Now()

	full := Inputs{
		OrderID:    intp(10248),
		CustomerID: strp("VINET"),
		EmployeeID: intp(5),
		ProductID:  intp(11),
		CategoryID: intp(4),
		Start:      &now,
		End:        &now,
	}

	tests := []struct {
		name string
		in   Inputs
		want Kind
	}{
		{"order wins over everything", full, KindOrder},
		{
			"customer wins without order",
			Inputs{CustomerID: full.CustomerID, EmployeeID: full.EmployeeID, ProductID: full.ProductID, CategoryID: full.CategoryID, Start: &now, End: &now},
			KindCustomer,
		},
		{
			"employee wins without order and customer",
			Inputs{EmployeeID: full.EmployeeID, ProductID: full.ProductID, CategoryID: full.CategoryID, Start: &now, End: &now},
			KindEmployee,
		},
		{
			"product wins over category and dates",
			Inputs{ProductID: full.ProductID, CategoryID: full.CategoryID, Start: &now, End: &now},
			KindProduct,
		},
		{
			"category wins over dates",
			Inputs{CategoryID: full.CategoryID, Start: &now, End: &now},
			KindCategory,
		},
		{
			"date range last",
			Inputs{Start: &now, End: &now},
			KindDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, ok := FromInputs(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, sel.Kind())
		})
	}
}

func TestFromInputsNoneSet(t *testing.T) {
	_, ok := FromInputs(Inputs{})
	assert.False(t, ok)
}

func TestFromInputsHalfOpenDateRangeIsNotASelector(t *testing.T) {
	now := time.Now()

	_, ok := FromInputs(Inputs{Start: &now})
	assert.False(t, ok)

	_, ok = FromInputs(Inputs{End: &now})
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "order", KindOrder.String())
	assert.Equal(t, "date_range", KindDateRange.String())
}
