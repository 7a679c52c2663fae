package main

import (
	"log"

	"tiffinbox/pkg/config"
	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/utils"
)

func main() {
	config.LoadConfig()

	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()

	if err := database.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	seedAdmin()
	seedMainCategories()
	seedMealTypes()
	seedLocations()
}

func seedAdmin() {
	email := "admin@tiffinbox.local"
	password := "admin12345"

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err == nil {
		log.Printf("Admin %s already exists", email)
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user = models.User{
		Name:     "Admin",
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("✅ Admin %s created successfully", email)
}

func seedMainCategories() {
	// Tiffin closes the night before at 22:00; Instant Snacks takes same-day
	// orders until 09:30.
	categories := []models.MainCategory{
		{Name: "Tiffin", OrderCutoffTime: "22:00", AdvanceDays: 1, IsActive: true},
		{Name: "Instant Snacks", OrderCutoffTime: "09:30", AdvanceDays: 0, IsActive: true},
	}

	for _, mc := range categories {
		var existing models.MainCategory
		if err := database.DB.Where("name = ?", mc.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&mc).Error; err != nil {
			log.Fatal("Failed to seed main categories:", err)
		}
		log.Printf("✅ Main category %q created (cutoff %s, advance %d)", mc.Name, mc.OrderCutoffTime, mc.AdvanceDays)
	}
}

func seedMealTypes() {
	for _, name := range []string{"Breakfast", "Lunch", "Dinner"} {
		var existing models.MealType
		if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&models.MealType{Name: name, IsActive: true}).Error; err != nil {
			log.Fatal("Failed to seed meal types:", err)
		}
		log.Printf("✅ Meal type %q created", name)
	}
}

func seedLocations() {
	locations := []models.LocationPricing{
		{Location: "City Centre", DeliveryFee: 30, IsActive: true},
		{Location: "University Area", DeliveryFee: 40, IsActive: true},
		{Location: "Outskirts", DeliveryFee: 60, IsActive: true},
	}

	for _, lp := range locations {
		var existing models.LocationPricing
		if err := database.DB.Where("location = ?", lp.Location).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&lp).Error; err != nil {
			log.Fatal("Failed to seed locations:", err)
		}
		log.Printf("✅ Location %q created (fee %.0f)", lp.Location, lp.DeliveryFee)
	}
}
