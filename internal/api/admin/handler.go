package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"internship-app/database"
	"internship-app/internal/domain/billing"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/internships"
	"internship-app/internal/domain/tokens"
	"internship-app/internal/domain/users"
	"internship-app/internal/kvstore"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Lastname         string  `json:"lastname"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	IsVerified       bool    `json:"is_verified"`
	University       string  `json:"university,omitempty"`
	PlanName         *string `json:"plan_name,omitempty"`
	TrialUsed        bool    `json:"trial_used"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
}

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	PlanName   *string `json:"plan_name,omitempty"`
	AmountEUR  float64 `json:"amount_eur"`
	Status     string  `json:"status"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers        int     `json:"total_users"`
	TotalInternships  int     `json:"total_internships"`
	TotalApplications int     `json:"total_applications"`
	AutoApplied       int     `json:"auto_applied"`
	TotalRevenue      float64 `json:"total_revenue"`
	RecentRevenue     float64 `json:"recent_revenue"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("id ASC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	clk := clock.System()
	var adminUsers []AdminUser
	for _, u := range all {
		var planName *string
		ledger := entitlement.NewLedger(kvstore.ForUser(database.DB, u.ID), clk)
		if plan, err := ledger.ActivePlan(); err == nil && plan != nil {
			planName = &plan.Name
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:               u.ID,
			Name:             u.Name,
			Lastname:         u.Lastname,
			Email:            u.Email,
			Role:             u.Role,
			IsVerified:       u.IsVerified,
			University:       u.University,
			PlanName:         planName,
			TrialUsed:        u.TrialUsedAt != nil,
			StripeCustomerID: u.StripeCustomerID,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Preload("Plan").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var result []AdminPayment
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			PlanName:   planName,
			AmountEUR:  p.AmountEUR,
			Status:     p.Status,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalInternships, totalApplications, autoApplied int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&internships.Internship{}).Count(&totalInternships)
	database.DB.Model(&internships.Application{}).Count(&totalApplications)
	database.DB.Model(&internships.Application{}).Where("via_auto_apply = ?", true).Count(&autoApplied)

	var totalRevenue, recentRevenue float64
	database.DB.Model(&billing.Payment{}).
		Where("status = ?", "paid").
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalInternships = int(totalInternships)
	stats.TotalApplications = int(totalApplications)
	stats.AutoApplied = int(autoApplied)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	c.JSON(http.StatusOK, stats)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("Plan").Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	clk := clock.System()
	store := kvstore.ForUser(database.DB, user.ID)
	ledger := entitlement.NewLedger(store, clk)
	meter := tokens.NewMeter(store, clk)

	plan, err := ledger.ActivePlan()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load entitlement"})
		return
	}
	balance, err := meter.Balance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load token balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"payments":      payments,
		"active_plan":   plan,
		"token_balance": balance,
	})
}

// POST /admin/users/:id/grant-tokens — support lever for complaints and
// promos; lands on top of the daily credit.
func GrantTokens(c *gin.Context) {
	userID, err := paramUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var body struct {
		Amount int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number"})
		return
	}

	meter := tokens.NewMeter(kvstore.ForUser(database.DB, userID), clock.System())
	balance, err := meter.CreditBonus(body.Amount)
	if err != nil {
		if errors.Is(err, tokens.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"granted": body.Amount,
		"balance": balance,
	})
}

// POST /admin/users/:id/set-plan — manual plan override, e.g. for bank
// transfers or partner deals that never touch Stripe.
func SetUserPlan(c *gin.Context) {
	userID, err := paramUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var body struct {
		Tier   string `json:"tier"`
		Detail string `json:"detail"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Tier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tier"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ledger := entitlement.NewLedger(kvstore.ForUser(database.DB, userID), clock.System())
	plan, err := ledger.ActivatePaidPlan(body.Tier, entitlement.PaymentInfo{
		Method: "admin",
		Detail: body.Detail,
	})
	if err != nil {
		if errors.Is(err, entitlement.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tier"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":          plan.Name,
		"started_at":    plan.StartedAt,
		"duration_days": plan.DurationDays,
	})
}

func paramUserID(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}
