package models

import "github.com/shopspring/decimal"

type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Brand      string          `json:"brand"`
	CategoryID uint            `json:"category_id"`                           // Foreign key to Category
	Category   Category        `gorm:"foreignKey:CategoryID" json:"category"` // Belongs to one Category
}
