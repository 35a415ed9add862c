package routes

import (
	"fmt"
	"time"

	"cornerstore/models"

	"github.com/shopspring/decimal"
)

// Response shapes. Each endpoint projects the entity graph it loaded into
// one of these, dropping back-references so the JSON never cycles. Nested
// collections that were not loaded stay nil and serialize as null.

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductDTO struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Brand      string          `json:"brand"`
	CategoryID uint            `json:"category_id"`
	Category   *CategoryDTO    `json:"category,omitempty"`
}

type OrderProductDTO struct {
	OrderID   uint       `json:"order_id"`
	ProductID uint       `json:"product_id"`
	Quantity  int        `json:"quantity"`
	Product   ProductDTO `json:"product"`
}

type OrderDTO struct {
	ID            uint              `json:"id"`
	CashierID     uint              `json:"cashier_id"`
	Cashier       *CashierDTO       `json:"cashier,omitempty"`
	PaidOnDate    *time.Time        `json:"paid_on_date"`
	OrderProducts []OrderProductDTO `json:"order_products"`
	Total         decimal.Decimal   `json:"total"`
}

// OrderSummaryDTO is the GET /orders list shape: no lines, no total.
type OrderSummaryDTO struct {
	ID         uint       `json:"id"`
	CashierID  uint       `json:"cashier_id"`
	PaidOnDate *time.Time `json:"paid_on_date"`
}

type CashierDTO struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Orders    []OrderDTO `json:"orders"`
}

func newCategoryDTO(c models.Category) *CategoryDTO {
	return &CategoryDTO{ID: c.ID, Name: c.Name}
}

// newProductDTO projects a product; withCategory embeds the category the
// data layer loaded alongside it.
func newProductDTO(p models.Product, withCategory bool) ProductDTO {
	dto := ProductDTO{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Brand:      p.Brand,
		CategoryID: p.CategoryID,
	}
	if withCategory {
		dto.Category = newCategoryDTO(p.Category)
	}
	return dto
}

// newOrderProductDTO projects one order line. The line's Product must have
// been eagerly loaded; a zero product here means the data layer broke its
// contract, so fail fast instead of emitting a partial line.
func newOrderProductDTO(op models.OrderProduct, withCategory bool) OrderProductDTO {
	if op.Product.ID == 0 {
		panic(fmt.Sprintf("order %d line for product %d projected without its product loaded", op.OrderID, op.ProductID))
	}
	return OrderProductDTO{
		OrderID:   op.OrderID,
		ProductID: op.ProductID,
		Quantity:  op.Quantity,
		Product:   newProductDTO(op.Product, withCategory),
	}
}

// orderTotal computes the derived total from the projected lines
// themselves, so the DTO view always agrees with the entity view.
func orderTotal(lines []OrderProductDTO) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// newOrderDetailDTO is the GET /orders/{id} shape: cashier (without its
// order list), lines with product and category, computed total.
func newOrderDetailDTO(o models.Order) OrderDTO {
	var lines []OrderProductDTO
	for _, op := range o.OrderProducts {
		lines = append(lines, newOrderProductDTO(op, true))
	}
	return OrderDTO{
		ID:        o.ID,
		CashierID: o.CashierID,
		Cashier: &CashierDTO{
			ID:        o.Cashier.ID,
			FirstName: o.Cashier.FirstName,
			LastName:  o.Cashier.LastName,
		},
		PaidOnDate:    o.PaidOnDate,
		OrderProducts: lines,
		Total:         orderTotal(lines),
	}
}

// newCreatedOrderDTO is the POST /orders response shape: lines with
// product but no category, no nested cashier.
func newCreatedOrderDTO(o models.Order) OrderDTO {
	var lines []OrderProductDTO
	for _, op := range o.OrderProducts {
		lines = append(lines, newOrderProductDTO(op, false))
	}
	return OrderDTO{
		ID:            o.ID,
		CashierID:     o.CashierID,
		PaidOnDate:    o.PaidOnDate,
		OrderProducts: lines,
		Total:         orderTotal(lines),
	}
}

func newOrderSummaryDTO(o models.Order) OrderSummaryDTO {
	return OrderSummaryDTO{
		ID:         o.ID,
		CashierID:  o.CashierID,
		PaidOnDate: o.PaidOnDate,
	}
}

// newCashierDetailDTO is the GET /cashiers/{id} shape: the cashier's
// orders with their lines and products, no categories, and no cashier
// re-embedded under each order. A cashier with no orders projects a null
// order list.
func newCashierDetailDTO(c models.Cashier) CashierDTO {
	dto := CashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
	for _, o := range c.Orders {
		var lines []OrderProductDTO
		for _, op := range o.OrderProducts {
			lines = append(lines, newOrderProductDTO(op, false))
		}
		dto.Orders = append(dto.Orders, OrderDTO{
			ID:            o.ID,
			CashierID:     o.CashierID,
			PaidOnDate:    o.PaidOnDate,
			OrderProducts: lines,
			Total:         orderTotal(lines),
		})
	}
	return dto
}
