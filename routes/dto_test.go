package routes

import (
	"encoding/json"
	"testing"
	"time"

	"cornerstore/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() models.Order {
	paid := time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC)
	return models.Order{
		ID:         1,
		CashierID:  1,
		Cashier:    models.Cashier{ID: 1, FirstName: "Alice", LastName: "Smith"},
		PaidOnDate: &paid,
		OrderProducts: []models.OrderProduct{
			{
				OrderID:   1,
				ProductID: 1,
				Quantity:  2,
				Product: models.Product{
					ID:         1,
					Name:       "Cola",
					Price:      decimal.RequireFromString("1.49"),
					Brand:      "Coca-Cola",
					CategoryID: 1,
					Category:   models.Category{ID: 1, Name: "Beverages"},
				},
			},
			{
				OrderID:   1,
				ProductID: 2,
				Quantity:  1,
				Product: models.Product{
					ID:         2,
					Name:       "Chips",
					Price:      decimal.RequireFromString("2.99"),
					Brand:      "Lay's",
					CategoryID: 2,
					Category:   models.Category{ID: 2, Name: "Snacks"},
				},
			},
		},
	}
}

func TestOrderTotalMatchesEntityTotal(t *testing.T) {
	order := testOrder()
	dto := newOrderDetailDTO(order)

	want := decimal.RequireFromString("5.97")
	assert.True(t, dto.Total.Equal(want), "got %s", dto.Total)
	assert.True(t, dto.Total.Equal(order.Total()), "DTO and entity totals disagree")
}

func TestOrderTotalZeroWithoutLines(t *testing.T) {
	order := models.Order{ID: 7, CashierID: 2}

	assert.True(t, order.Total().IsZero())
	assert.True(t, newCreatedOrderDTO(order).Total.IsZero())
}

func TestOrderDetailShape(t *testing.T) {
	dto := newOrderDetailDTO(testOrder())

	require.NotNil(t, dto.Cashier)
	assert.Equal(t, "Alice", dto.Cashier.FirstName)
	assert.Nil(t, dto.Cashier.Orders, "detail cashier must not re-embed its orders")

	require.Len(t, dto.OrderProducts, 2)
	for _, line := range dto.OrderProducts {
		require.NotNil(t, line.Product.Category)
	}
	assert.Equal(t, "Beverages", dto.OrderProducts[0].Product.Category.Name)
}

func TestCreatedOrderShape(t *testing.T) {
	dto := newCreatedOrderDTO(testOrder())

	assert.Nil(t, dto.Cashier)
	require.Len(t, dto.OrderProducts, 2)
	for _, line := range dto.OrderProducts {
		assert.Nil(t, line.Product.Category)
	}
}

func TestOrderSummaryShape(t *testing.T) {
	order := testOrder()
	raw, err := json.Marshal(newOrderSummaryDTO(order))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "cashier_id")
	assert.Contains(t, fields, "paid_on_date")
}

func TestCashierDetailNullOrders(t *testing.T) {
	dto := newCashierDetailDTO(models.Cashier{ID: 5, FirstName: "Evelyn", LastName: "Garcia"})

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"orders":null`)
}

func TestCashierDetailOrders(t *testing.T) {
	cashier := models.Cashier{
		ID:        1,
		FirstName: "Alice",
		LastName:  "Smith",
		Orders:    []models.Order{testOrder()},
	}

	dto := newCashierDetailDTO(cashier)
	require.Len(t, dto.Orders, 1)
	assert.Nil(t, dto.Orders[0].Cashier, "nested order must not re-embed the cashier")
	assert.True(t, dto.Orders[0].Total.Equal(decimal.RequireFromString("5.97")))
	for _, line := range dto.Orders[0].OrderProducts {
		assert.Nil(t, line.Product.Category)
	}
}

func TestUnpaidOrderProjectsNullDate(t *testing.T) {
	order := models.Order{ID: 3, CashierID: 3}
	raw, err := json.Marshal(newOrderSummaryDTO(order))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"paid_on_date":null`)
}

func TestProjectionPanicsOnUnloadedProduct(t *testing.T) {
	order := models.Order{
		ID:            1,
		CashierID:     1,
		OrderProducts: []models.OrderProduct{{OrderID: 1, ProductID: 9, Quantity: 1}},
	}

	assert.Panics(t, func() { newCreatedOrderDTO(order) })
}
