package models

import (
	"time"
)

// Order model - storefront order with three independent status tracks
type Order struct {
	ID            int           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Reference     *string       `gorm:"unique;column:reference" json:"reference"` // client idempotency key
	CustomerID    *int          `gorm:"column:customer_id" json:"customerId"`
	CustomerName  string        `gorm:"not null;column:customer_name" json:"customerName"`
	CustomerPhone string        `gorm:"not null;column:customer_phone" json:"customerPhone"`
	Address       string        `gorm:"not null;column:address" json:"address"`
	Location      *string       `gorm:"column:location" json:"location"`
	TotalAmount   float64       `gorm:"not null;column:total_amount" json:"totalAmount"`
	DeliveryFee   float64       `gorm:"default:0;column:delivery_fee" json:"deliveryFee"`
	PaymentMethod PaymentMethod `gorm:"type:text;not null;column:payment_method" json:"paymentMethod"`
	Status        OrderStatus   `gorm:"type:text;default:'pending';column:status" json:"status"`
	KitchenStatus KitchenStatus `gorm:"type:text;default:'not_started';column:kitchen_status" json:"kitchenStatus"`
	RiderStatus   RiderStatus   `gorm:"type:text;default:'not_assigned';column:rider_status" json:"riderStatus"`
	RiderID       *int          `gorm:"column:rider_id" json:"riderId"`
	IsFake        bool          `gorm:"default:false;column:is_fake" json:"isFake"`
	Source        OrderSource   `gorm:"type:text;default:'website';column:source" json:"source"`
	PaymentID     *string       `gorm:"column:payment_id" json:"paymentId"`
	DeliveredAt   *time.Time    `gorm:"column:delivered_at" json:"deliveredAt"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`

	// Relationships
	Customer *User       `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Rider    *User       `gorm:"foreignKey:RiderID;references:ID" json:"rider,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem model
type OrderItem struct {
	ID        int     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   int     `gorm:"not null;column:order_id" json:"orderId"`
	ProductID int     `gorm:"not null;column:product_id" json:"productId"`
	Quantity  int     `gorm:"not null;column:quantity" json:"quantity"`
	UnitPrice float64 `gorm:"not null;column:unit_price" json:"unitPrice"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`
	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// WeeklyOrder model - order scoped to the weekly-menu subsystem
type WeeklyOrder struct {
	ID            int           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Reference     *string       `gorm:"unique;column:reference" json:"reference"`
	CustomerID    *int          `gorm:"column:customer_id" json:"customerId"`
	CustomerName  string        `gorm:"not null;column:customer_name" json:"customerName"`
	CustomerPhone string        `gorm:"not null;column:customer_phone" json:"customerPhone"`
	Address       string        `gorm:"not null;column:address" json:"address"`
	Location      string        `gorm:"not null;column:location" json:"location"`
	DeliveryDate  time.Time     `gorm:"type:date;not null;column:delivery_date" json:"deliveryDate"`
	TotalAmount   float64       `gorm:"not null;column:total_amount" json:"totalAmount"`
	DeliveryFee   float64       `gorm:"default:0;column:delivery_fee" json:"deliveryFee"`
	PaymentMethod PaymentMethod `gorm:"type:text;not null;column:payment_method" json:"paymentMethod"`
	Status        OrderStatus   `gorm:"type:text;default:'pending';column:status" json:"status"`
	KitchenStatus KitchenStatus `gorm:"type:text;default:'not_started';column:kitchen_status" json:"kitchenStatus"`
	RiderStatus   RiderStatus   `gorm:"type:text;default:'not_assigned';column:rider_status" json:"riderStatus"`
	RiderID       *int          `gorm:"column:rider_id" json:"riderId"`
	PaymentID     *string       `gorm:"column:payment_id" json:"paymentId"`
	DeliveredAt   *time.Time    `gorm:"column:delivered_at" json:"deliveredAt"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`

	// Relationships
	Customer *User             `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Rider    *User             `gorm:"foreignKey:RiderID;references:ID" json:"rider,omitempty"`
	Items    []WeeklyOrderItem `gorm:"foreignKey:WeeklyOrderID" json:"items,omitempty"`
}

func (WeeklyOrder) TableName() string {
	return "weekly_orders"
}

// WeeklyOrderItem model
type WeeklyOrderItem struct {
	ID            int     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	WeeklyOrderID int     `gorm:"not null;column:weekly_order_id" json:"weeklyOrderId"`
	MenuItemID    int     `gorm:"not null;column:menu_item_id" json:"menuItemId"`
	Quantity      int     `gorm:"not null;column:quantity" json:"quantity"`
	UnitPrice     float64 `gorm:"not null;column:unit_price" json:"unitPrice"`

	// Relationships
	WeeklyOrder WeeklyOrder    `gorm:"foreignKey:WeeklyOrderID;references:ID" json:"weeklyOrder,omitempty"`
	MenuItem    WeeklyMenuItem `gorm:"foreignKey:MenuItemID;references:ID" json:"menuItem,omitempty"`
}

func (WeeklyOrderItem) TableName() string {
	return "weekly_order_items"
}

// Cart model - one per customer, kept server-side
type Cart struct {
	ID         int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CustomerID int       `gorm:"unique;not null;column:customer_id" json:"customerId"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`

	// Relationships
	Customer User       `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Items    []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem model - keyed by product id + quantity
type CartItem struct {
	ID        int `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CartID    int `gorm:"not null;column:cart_id" json:"cartId"`
	ProductID int `gorm:"not null;column:product_id" json:"productId"`
	Quantity  int `gorm:"not null;column:quantity" json:"quantity"`

	// Relationships
	Cart    Cart    `gorm:"foreignKey:CartID;references:ID" json:"cart,omitempty"`
	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// StockHistory model - audit trail of weekly-menu stock movements
type StockHistory struct {
	ID         int         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MenuItemID int         `gorm:"not null;column:menu_item_id" json:"menuItemId"`
	Quantity   int         `gorm:"not null;column:quantity" json:"quantity"`
	Action     StockAction `gorm:"type:text;not null;column:action" json:"action"`
	Timestamp  time.Time   `gorm:"autoCreateTime;column:timestamp" json:"timestamp"`

	// Relationships
	MenuItem WeeklyMenuItem `gorm:"foreignKey:MenuItemID;references:ID" json:"menuItem,omitempty"`
}

func (StockHistory) TableName() string {
	return "stock_history"
}

// Expense model - back-office expense book
type Expense struct {
	ID          int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Category    string    `gorm:"not null;column:category" json:"category"`
	Amount      float64   `gorm:"not null;column:amount" json:"amount"`
	PaidTo      string    `gorm:"not null;column:paid_to" json:"paidTo"`
	ExpenseDate time.Time `gorm:"not null;column:expense_date" json:"expenseDate"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
}

func (Expense) TableName() string {
	return "expenses"
}

// Banner model - marketing/site-design configuration
type Banner struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Subtitle  *string   `gorm:"column:subtitle" json:"subtitle"`
	ImageURL  string    `gorm:"not null;column:image_url" json:"imageUrl"`
	LinkURL   *string   `gorm:"column:link_url" json:"linkUrl"`
	IsActive  bool      `gorm:"default:true;column:is_active" json:"isActive"`
	SortOrder int       `gorm:"default:0;column:sort_order" json:"sortOrder"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
}

func (Banner) TableName() string {
	return "banners"
}

// DeviceToken model - FCM push targets per user
type DeviceToken struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    int       `gorm:"not null;column:user_id" json:"userId"`
	Token     string    `gorm:"unique;not null;column:token" json:"token"`
	Platform  string    `gorm:"not null;column:platform" json:"platform"`
	IsActive  bool      `gorm:"default:true;column:is_active" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`

	// Relationships
	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
