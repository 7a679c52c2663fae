package models

import (
	"time"
)

// User model - customers, kitchen staff, riders, and admins
type User struct {
	ID               int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Email            string    `gorm:"unique;not null;column:email" json:"email"`
	Name             string    `gorm:"not null;column:name" json:"name"`
	Password         string    `gorm:"not null;column:password" json:"-"` // Don't expose password in JSON
	Role             Role      `gorm:"type:text;default:'CUSTOMER';column:role" json:"role"`
	Phone            *string   `gorm:"column:phone" json:"phone"`
	IsActive         bool      `gorm:"default:true;column:is_active" json:"isActive"`
	TwoFactorEnabled bool      `gorm:"default:false;column:two_factor_enabled" json:"twoFactorEnabled"`
	TwoFactorSecret  *string   `gorm:"column:two_factor_secret" json:"-"` // Don't expose secret
	CreatedAt        time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`

	// Relationships
	RiderProfile *RiderProfile `gorm:"foreignKey:UserID" json:"riderProfile,omitempty"`
	Cart         *Cart         `gorm:"foreignKey:CustomerID" json:"cart,omitempty"`
	Orders       []Order       `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	WeeklyOrders []WeeklyOrder `gorm:"foreignKey:CustomerID" json:"weeklyOrders,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// RiderProfile model - extra details for delivery riders
type RiderProfile struct {
	ID          int     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID      int     `gorm:"unique;not null;column:user_id" json:"userId"`
	VehicleType *string `gorm:"column:vehicle_type" json:"vehicleType"`
	VehicleNo   *string `gorm:"column:vehicle_no" json:"vehicleNo"`
	IsAvailable bool    `gorm:"default:true;column:is_available" json:"isAvailable"`

	// Relationships
	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

func (RiderProfile) TableName() string {
	return "rider_profiles"
}

// Category model - storefront product category
type Category struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string    `gorm:"unique;not null;column:name" json:"name"`
	ImageURL  *string   `gorm:"column:image_url" json:"imageUrl"`
	IsActive  bool      `gorm:"default:true;column:is_active" json:"isActive"`
	SortOrder int       `gorm:"default:0;column:sort_order" json:"sortOrder"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// Product model - storefront catalog item
type Product struct {
	ID          int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description *string   `gorm:"column:description" json:"description"`
	Price       float64   `gorm:"not null;column:price" json:"price"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl"`
	CategoryID  int       `gorm:"not null;column:category_id" json:"categoryId"`
	IsVeg       bool      `gorm:"default:true;column:is_veg" json:"isVeg"`
	IsActive    bool      `gorm:"default:true;column:is_active" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`

	// Relationships
	Category  Category   `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	CartItems []CartItem `gorm:"foreignKey:ProductID" json:"cartItems,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// MainCategory model - weekly-menu top category carrying the advance-order policy
type MainCategory struct {
	ID              int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string    `gorm:"unique;not null;column:name" json:"name"`
	OrderCutoffTime string    `gorm:"not null;default:'22:00';column:order_cutoff_time" json:"orderCutoffTime"` // "HH:MM"
	AdvanceDays     int       `gorm:"not null;default:1;column:advance_days" json:"advanceDays"`                // 0 same-day, 1 next-day
	IsActive        bool      `gorm:"default:true;column:is_active" json:"isActive"`
	CreatedAt       time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`

	// Relationships
	SubCategories []SubCategory    `gorm:"foreignKey:MainCategoryID" json:"subCategories,omitempty"`
	MenuItems     []WeeklyMenuItem `gorm:"foreignKey:MainCategoryID" json:"menuItems,omitempty"`
}

func (MainCategory) TableName() string {
	return "main_categories"
}

// SubCategory model - belongs to a MainCategory, optionally carries a food plan
type SubCategory struct {
	ID             int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MainCategoryID int       `gorm:"not null;column:main_category_id" json:"mainCategoryId"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	FoodPlan       *FoodPlan `gorm:"type:text;column:food_plan" json:"foodPlan"`
	IsActive       bool      `gorm:"default:true;column:is_active" json:"isActive"`

	// Relationships
	MainCategory MainCategory `gorm:"foreignKey:MainCategoryID;references:ID" json:"mainCategory,omitempty"`
}

func (SubCategory) TableName() string {
	return "sub_categories"
}

// MealType model - breakfast/lunch/dinner slot for the weekly menu
type MealType struct {
	ID       int    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name     string `gorm:"unique;not null;column:name" json:"name"`
	IsActive bool   `gorm:"default:true;column:is_active" json:"isActive"`
}

func (MealType) TableName() string {
	return "meal_types"
}

// WeeklyMenuItem model - a dish offered on one specific date
type WeeklyMenuItem struct {
	ID             int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MainCategoryID int       `gorm:"not null;column:main_category_id" json:"mainCategoryId"`
	SubCategoryID  int       `gorm:"not null;column:sub_category_id" json:"subCategoryId"`
	MealTypeID     int       `gorm:"not null;column:meal_type_id" json:"mealTypeId"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	Description    *string   `gorm:"column:description" json:"description"`
	Price          float64   `gorm:"not null;column:price" json:"price"`
	ImageURL       *string   `gorm:"column:image_url" json:"imageUrl"`
	SpecificDate   time.Time `gorm:"type:date;not null;column:specific_date" json:"specificDate"`
	StockLimit     int       `gorm:"not null;column:stock_limit" json:"stockLimit"`
	CurrentStock   int       `gorm:"not null;column:current_stock" json:"currentStock"`
	CreatedAt      time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`

	// Relationships
	MainCategory MainCategory `gorm:"foreignKey:MainCategoryID;references:ID" json:"mainCategory,omitempty"`
	SubCategory  SubCategory  `gorm:"foreignKey:SubCategoryID;references:ID" json:"subCategory,omitempty"`
	MealType     MealType     `gorm:"foreignKey:MealTypeID;references:ID" json:"mealType,omitempty"`
}

func (WeeklyMenuItem) TableName() string {
	return "weekly_menu"
}

// LocationPricing model - per-location delivery fee for weekly orders
type LocationPricing struct {
	ID          int     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Location    string  `gorm:"unique;not null;column:location" json:"location"`
	DeliveryFee float64 `gorm:"not null;column:delivery_fee" json:"deliveryFee"`
	IsActive    bool    `gorm:"default:true;column:is_active" json:"isActive"`
}

func (LocationPricing) TableName() string {
	return "location_pricing"
}
