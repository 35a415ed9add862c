package routes

import (
	"errors"
	"strings"

	"cornerstore/db"
	"cornerstore/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateProduct - POST /products
func createProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	// Ensure the Category association is empty so only category_id is used
	product.Category = models.Category{}

	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetAllProducts - GET /products
// Supports case-insensitive exact-match filters on productName and
// categoryName; both filters are ANDed when given together.
func getAllProducts(c *fiber.Ctx) error {
	productName := c.Query("productName")
	categoryName := c.Query("categoryName")

	dbQuery := db.DB.Preload("Category")

	if productName != "" {
		dbQuery = dbQuery.Where("LOWER(name) = ?", strings.ToLower(productName))
	}

	if categoryName != "" {
		var categoryIDs []uint
		if err := db.DB.Model(&models.Category{}).
			Where("LOWER(name) = ?", strings.ToLower(categoryName)).
			Pluck("id", &categoryIDs).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to look up category",
			})
		}
		dbQuery = dbQuery.Where("category_id IN ?", categoryIDs)
	}

	var products []models.Product
	if err := dbQuery.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	productDTOs := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		productDTOs = append(productDTOs, newProductDTO(product, true))
	}

	return c.JSON(productDTOs)
}

// UpdateProduct - PUT /products/:id
// Overwrites name, price, brand and category reference of an existing
// product. Responds 204 with no body.
func updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product := new(models.Product)

	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existingProduct models.Product
	if err := db.DB.First(&existingProduct, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}

	existingProduct.Name = product.Name
	existingProduct.Price = product.Price
	existingProduct.Brand = product.Brand
	existingProduct.CategoryID = product.CategoryID

	if err := db.DB.Save(&existingProduct).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
