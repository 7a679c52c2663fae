package admin

import (
	"net/http"
	"time"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboard aggregates the numbers the back-office landing page shows:
// today's orders, revenue, status breakdown, and weekly-order load. Fake
// orders and cancellations are excluded from revenue.
func GetDashboard(c *gin.Context) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var todayOrders, pendingOrders int64
	database.DB.Model(&models.Order{}).
		Where("created_at >= ? AND is_fake = ?", todayStart, false).
		Count(&todayOrders)
	database.DB.Model(&models.Order{}).
		Where("status = ? AND is_fake = ?", models.OrderStatusPending, false).
		Count(&pendingOrders)

	var todayRevenue, monthRevenue float64
	revenueBase := database.DB.Model(&models.Order{}).
		Where("is_fake = ? AND status NOT IN ?", false,
			[]models.OrderStatus{models.OrderStatusPending, models.OrderStatusCancelled}).
		Session(&gorm.Session{})
	revenueBase.
		Where("created_at >= ?", todayStart).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&todayRevenue)
	revenueBase.
		Where("created_at >= ?", monthStart).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&monthRevenue)

	type statusCount struct {
		Status models.OrderStatus `json:"status"`
		Count  int64              `json:"count"`
	}
	var breakdown []statusCount
	database.DB.Model(&models.Order{}).
		Where("is_fake = ?", false).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&breakdown)

	today := now.Format("2006-01-02")
	var weeklyToday, weeklyUpcoming int64
	database.DB.Model(&models.WeeklyOrder{}).
		Where("delivery_date = ? AND status NOT IN ?", today,
			[]models.OrderStatus{models.OrderStatusCancelled}).
		Count(&weeklyToday)
	database.DB.Model(&models.WeeklyOrder{}).
		Where("delivery_date > ? AND status NOT IN ?", today,
			[]models.OrderStatus{models.OrderStatusCancelled}).
		Count(&weeklyUpcoming)

	var weeklyRevenue float64
	database.DB.Model(&models.WeeklyOrder{}).
		Where("created_at >= ? AND status NOT IN ?", monthStart,
			[]models.OrderStatus{models.OrderStatusPending, models.OrderStatusCancelled}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&weeklyRevenue)

	var monthExpenses float64
	database.DB.Model(&models.Expense{}).
		Where("expense_date >= ?", monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&monthExpenses)

	var customers, riders int64
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&customers)
	database.DB.Model(&models.User{}).Where("role = ? AND is_active = ?", models.RoleRider, true).Count(&riders)

	c.JSON(http.StatusOK, gin.H{
		"orders": gin.H{
			"today":           todayOrders,
			"pending":         pendingOrders,
			"statusBreakdown": breakdown,
		},
		"revenue": gin.H{
			"today":       todayRevenue,
			"month":       monthRevenue,
			"weeklyMonth": weeklyRevenue,
		},
		"weeklyOrders": gin.H{
			"today":    weeklyToday,
			"upcoming": weeklyUpcoming,
		},
		"expenses": gin.H{
			"month": monthExpenses,
		},
		"users": gin.H{
			"customers":    customers,
			"activeRiders": riders,
		},
	})
}
