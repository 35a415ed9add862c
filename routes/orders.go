package routes

import (
	"errors"
	"fmt"
	"time"

	"cornerstore/db"
	"cornerstore/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetOrder - GET /orders/:id
func getOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	var order models.Order

	// Preload Cashier plus lines, their Products and each Product's Category
	if err := db.DB.
		Preload("Cashier").
		Preload("OrderProducts.Product.Category").
		Preload("OrderProducts.Product").
		Preload("OrderProducts").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get order",
		})
	}

	return c.JSON(newOrderDetailDTO(order))
}

// GetAllOrders - GET /orders
// With paidOnDate=YYYY-MM-DD only orders paid on that calendar day are
// returned; unpaid orders never match.
func getAllOrders(c *fiber.Ctx) error {
	paidOnDate := c.Query("paidOnDate")

	var filterDate time.Time
	if paidOnDate != "" {
		var err error
		filterDate, err = time.ParseInLocation("2006-01-02", paidOnDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid paidOnDate, expected YYYY-MM-DD",
			})
		}
	}

	var orders []models.Order
	if err := db.DB.Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}

	summaries := make([]OrderSummaryDTO, 0, len(orders))
	for _, order := range orders {
		if paidOnDate != "" {
			if order.PaidOnDate == nil {
				continue
			}
			// Compare calendar days in one location; stored timestamps
			// may round-trip with an arbitrary offset
			y, m, d := order.PaidOnDate.In(time.Local).Date()
			fy, fm, fd := filterDate.Date()
			if y != fy || m != fm || d != fd {
				continue
			}
		}
		summaries = append(summaries, newOrderSummaryDTO(order))
	}

	return c.JSON(summaries)
}

// DeleteOrder - DELETE /orders/:id
func deleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	// Check if the order exists first
	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get order",
		})
	}

	// Remove the order together with its lines
	tx := db.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProduct{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order products",
		})
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order",
		})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	notifyOrderEvent("order_deleted", order.ID)

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateOrder - POST /orders
func createOrder(c *fiber.Ctx) error {
	type OrderRequest struct {
		CashierID     uint `json:"cashier_id" validate:"required"`
		OrderProducts []struct {
			ProductID uint `json:"product_id" validate:"required"`
			Quantity  int  `json:"quantity" validate:"required,min=1"`
		} `json:"order_products" validate:"dive"`
	}

	var requestData OrderRequest
	if err := c.BodyParser(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body: " + err.Error(),
		})
	}

	if err := validate.Struct(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	// Orders are stamped paid at creation time
	now := time.Now()
	order := models.Order{
		CashierID:  requestData.CashierID,
		PaidOnDate: &now,
	}

	tx := db.DB.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order: " + err.Error(),
		})
	}

	var orderProducts []models.OrderProduct
	for _, item := range requestData.OrderProducts {
		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Product %d not found", item.ProductID),
			})
		}

		orderProducts = append(orderProducts, models.OrderProduct{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	// An order may have no lines; GORM rejects creating an empty slice
	if len(orderProducts) > 0 {
		if err := tx.Create(&orderProducts).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create order products: " + err.Error(),
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	var fullOrder models.Order
	if err := db.DB.Preload("OrderProducts.Product").First(&fullOrder, order.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Order created but failed to load full details",
		})
	}

	notifyOrderEvent("order_created", fullOrder.ID)

	return c.Status(fiber.StatusCreated).JSON(newCreatedOrderDTO(fullOrder))
}
