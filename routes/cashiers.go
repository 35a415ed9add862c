package routes

import (
	"errors"

	"cornerstore/db"
	"cornerstore/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCashier - POST /cashiers
func createCashier(c *fiber.Ctx) error {
	cashier := new(models.Cashier)
	if err := c.BodyParser(cashier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(cashier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	// Orders are created through /orders, never inline
	cashier.Orders = nil

	if err := db.DB.Create(&cashier).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create cashier",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(cashier)
}

// GetCashier - GET /cashiers/:id
func getCashier(c *fiber.Ctx) error {
	id := c.Params("id")
	var cashier models.Cashier

	// Preload Orders, their lines, and each line's Product
	if err := db.DB.
		Preload("Orders.OrderProducts.Product").
		Preload("Orders.OrderProducts").
		Preload("Orders").
		First(&cashier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Cashier not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cashier",
		})
	}

	return c.JSON(newCashierDetailDTO(cashier))
}
