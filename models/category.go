package models

type Category struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `json:"name" validate:"required"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // One-to-many relationship
}
