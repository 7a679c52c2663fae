package models

// Role enum
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleKitchen  Role = "KITCHEN"
	RoleRider    Role = "RIDER"
	RoleAdmin    Role = "ADMIN"
)

// OrderStatus enum - customer-facing order track
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// KitchenStatus enum - food preparation track
type KitchenStatus string

const (
	KitchenStatusNotStarted KitchenStatus = "not_started"
	KitchenStatusPending    KitchenStatus = "pending"
	KitchenStatusCooking    KitchenStatus = "cooking"
	KitchenStatusReady      KitchenStatus = "ready"
	KitchenStatusCompleted  KitchenStatus = "completed"
)

// RiderStatus enum - delivery fulfilment track
type RiderStatus string

const (
	RiderStatusNotAssigned RiderStatus = "not_assigned"
	RiderStatusAssigned    RiderStatus = "assigned"
	RiderStatusPickedUp    RiderStatus = "picked_up"
	RiderStatusDelivering  RiderStatus = "delivering"
	RiderStatusDelivered   RiderStatus = "delivered"
)

// OrderSource enum
type OrderSource string

const (
	OrderSourceWebsite OrderSource = "website"
	OrderSourceMeta    OrderSource = "meta"
	OrderSourceManual  OrderSource = "manual"
)

// PaymentMethod enum
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// FoodPlan enum - meal tier attached to a sub-category
type FoodPlan string

const (
	FoodPlanRegular FoodPlan = "Regular"
	FoodPlanDiet    FoodPlan = "Diet"
	FoodPlanPremium FoodPlan = "Premium"
)

// StockAction enum
type StockAction string

const (
	StockActionDeduct  StockAction = "DEDUCT"
	StockActionRestock StockAction = "RESTOCK"
	StockActionRestore StockAction = "RESTORE"
)
