package database

import (
	"fmt"
	"log"

	"tiffinbox/pkg/config"
	"tiffinbox/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDatabase initializes the database connection
func InitDatabase() error {
	var err error

	gormConfig := &gorm.Config{
		PrepareStmt: false,
	}

	// Development mode - verbose logging
	if config.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		// Production mode - only errors
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	}

	DB, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.AppConfig.DatabaseURL,
		PreferSimpleProtocol: true, // Disable implicit prepared statements to avoid "prepared statement already exists" errors
	}), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	log.Println("✅ Database connection established")

	return nil
}

// AutoMigrate runs auto-migration for all models
func AutoMigrate() error {
	log.Println("🔄 Running database migrations...")

	err := DB.AutoMigrate(
		// Users & roles
		&models.User{},
		&models.RiderProfile{},
		&models.DeviceToken{},

		// Storefront catalog
		&models.Category{},
		&models.Product{},

		// Weekly menu
		&models.MainCategory{},
		&models.SubCategory{},
		&models.MealType{},
		&models.WeeklyMenuItem{},
		&models.StockHistory{},

		// Cart
		&models.Cart{},
		&models.CartItem{},

		// Orders
		&models.Order{},
		&models.OrderItem{},
		&models.WeeklyOrder{},
		&models.WeeklyOrderItem{},

		// Back office
		&models.LocationPricing{},
		&models.Expense{},
		&models.Banner{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed")

	createIndexes()

	return nil
}

// createIndexes creates additional indexes not expressed in model tags
func createIndexes() {
	log.Println("🔄 Creating additional indexes...")

	// Status queues scanned by the kitchen and rider panels
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_orders_kitchen_status ON orders(kitchen_status)`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_orders_rider_id ON orders(rider_id)`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_weekly_orders_status ON weekly_orders(status)`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_weekly_orders_delivery_date ON weekly_orders(delivery_date)`)

	// Menu browsing by date
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_weekly_menu_specific_date ON weekly_menu(specific_date)`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS weekly_menu_slot_key ON weekly_menu(main_category_id, sub_category_id, meal_type_id, specific_date, name)`)

	// Cart uniqueness
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS cart_items_cart_product_key ON cart_items(cart_id, product_id)`)

	log.Println("✅ Additional indexes created")
}

// CloseDatabase closes the database connection
func CloseDatabase() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("✅ Database connection closed")
	}
}
