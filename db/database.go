package db

import (
	"log"
	"os"
	"strings"

	"cornerstore/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDatabase opens the sqlite database named by DB_PATH (default
// cornerstore.db) and migrates the schema. DB_PATH may also be a sqlite
// URI such as "file:test?mode=memory&cache=shared".
func InitDatabase() {
	var err error
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "cornerstore.db"
	}

	// Create the database file up front unless this is a URI DSN
	if !strings.HasPrefix(dbPath, "file:") && !strings.Contains(dbPath, ":memory:") {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			log.Println("Database file does not exist, creating:", dbPath)
			file, err := os.Create(dbPath)
			if err != nil {
				log.Fatal("Failed to create database file:", err)
			}
			file.Close()
		}
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	// Auto migrate the schema
	DB.AutoMigrate(
		&models.Cashier{}, &models.Category{}, &models.Product{},
		&models.Order{}, &models.OrderProduct{},
	)
}
