package db

import (
	"log"
	"time"

	"cornerstore/models"

	"github.com/shopspring/decimal"
)

// Seed loads the fixed demo rows used for local environments. It is
// idempotent: a database that already has cashiers is left untouched.
func Seed() {
	var count int64
	if err := DB.Model(&models.Cashier{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to check seed state:", err)
	}
	if count > 0 {
		return
	}

	now := time.Now()
	daysAgo := func(d int) *time.Time {
		t := now.AddDate(0, 0, -d)
		return &t
	}

	cashiers := []models.Cashier{
		{ID: 1, FirstName: "Alice", LastName: "Smith"},
		{ID: 2, FirstName: "Bob", LastName: "Johnson"},
		{ID: 3, FirstName: "Carlos", LastName: "Martinez"},
		{ID: 4, FirstName: "Diana", LastName: "Brown"},
		{ID: 5, FirstName: "Evelyn", LastName: "Garcia"},
	}

	categories := []models.Category{
		{ID: 1, Name: "Beverages"},
		{ID: 2, Name: "Snacks"},
		{ID: 3, Name: "Household Supplies"},
		{ID: 4, Name: "Personal Care"},
	}

	products := []models.Product{
		{ID: 1, Name: "Cola", Price: decimal.RequireFromString("1.49"), Brand: "Coca-Cola", CategoryID: 1},
		{ID: 2, Name: "Chips", Price: decimal.RequireFromString("2.99"), Brand: "Lay's", CategoryID: 2},
		{ID: 3, Name: "Dish Soap", Price: decimal.RequireFromString("3.79"), Brand: "Dawn", CategoryID: 3},
		{ID: 4, Name: "Toothpaste", Price: decimal.RequireFromString("4.29"), Brand: "Colgate", CategoryID: 4},
		{ID: 5, Name: "Orange Juice", Price: decimal.RequireFromString("2.99"), Brand: "Tropicana", CategoryID: 1},
	}

	orders := []models.Order{
		{ID: 1, CashierID: 1, PaidOnDate: daysAgo(2)},
		{ID: 2, CashierID: 2, PaidOnDate: daysAgo(1)},
		{ID: 3, CashierID: 3, PaidOnDate: nil},
		{ID: 4, CashierID: 1, PaidOnDate: daysAgo(7)},
		{ID: 5, CashierID: 4, PaidOnDate: daysAgo(3)},
	}

	orderProducts := []models.OrderProduct{
		{OrderID: 1, ProductID: 1, Quantity: 2},
		{OrderID: 1, ProductID: 2, Quantity: 1},
		{OrderID: 2, ProductID: 3, Quantity: 1},
		{OrderID: 2, ProductID: 5, Quantity: 3},
		{OrderID: 3, ProductID: 4, Quantity: 1},
		{OrderID: 3, ProductID: 1, Quantity: 4},
		{OrderID: 4, ProductID: 2, Quantity: 2},
		{OrderID: 4, ProductID: 3, Quantity: 1},
		{OrderID: 5, ProductID: 4, Quantity: 2},
		{OrderID: 5, ProductID: 5, Quantity: 1},
	}

	if err := DB.Create(&cashiers).Error; err != nil {
		log.Fatal("Failed to seed cashiers:", err)
	}
	if err := DB.Create(&categories).Error; err != nil {
		log.Fatal("Failed to seed categories:", err)
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Fatal("Failed to seed products:", err)
	}
	if err := DB.Create(&orders).Error; err != nil {
		log.Fatal("Failed to seed orders:", err)
	}
	if err := DB.Create(&orderProducts).Error; err != nil {
		log.Fatal("Failed to seed order products:", err)
	}
	log.Println("Seeded demo data")
}
