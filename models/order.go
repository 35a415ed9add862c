package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CashierID     uint           `json:"cashier_id" validate:"required"`
	Cashier       Cashier        `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	PaidOnDate    *time.Time     `json:"paid_on_date"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID" json:"order_products,omitempty"`
}

// OrderProduct links an Order to a Product with a quantity. The pair
// (order_id, product_id) is the primary key, so an order carries at most
// one line per product.
type OrderProduct struct {
	OrderID   uint    `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint    `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// Total is derived from the loaded lines, never stored. Lines must have
// their Product populated.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, op := range o.OrderProducts {
		total = total.Add(op.Product.Price.Mul(decimal.NewFromInt(int64(op.Quantity))))
	}
	return total
}
