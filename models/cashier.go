package models

type Cashier struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Orders    []Order `gorm:"foreignKey:CashierID" json:"orders,omitempty"` // One-to-many relationship
}
