package users

import (
	"net/http"

	"internship-app/database"
	"internship-app/internal/domain/access"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/gate"
	"internship-app/internal/domain/profiles"
	"internship-app/internal/domain/tokens"
	"internship-app/internal/domain/users"
	"internship-app/internal/kvstore"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	_, _ = profiles.EnsureProfileSlug(database.DB, &user)

	store := kvstore.ForUser(database.DB, user.ID)
	clk := clock.System()
	ledger := entitlement.NewLedger(store, clk)
	meter := tokens.NewMeter(store, clk)

	plan, err := ledger.ActivePlan()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't load subscription state, try again"})
		return
	}
	daysLeft, err := ledger.DaysRemaining()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't load subscription state, try again"})
		return
	}
	balance, err := meter.Balance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't load token balance, try again"})
		return
	}

	var lastFreeDay string
	if _, err := store.Get(gate.KeyLastFreeAutoApplyDay, &lastFreeDay); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't load token balance, try again"})
		return
	}

	policy := access.ComputePolicy(plan)

	resp := MeResponse{
		User: BuildUserDTO(user),
		Billing: BillingDTO{
			Plan:          BuildPlanDTO(plan),
			DaysRemaining: daysLeft,
			TrialUsed:     user.TrialUsedAt != nil,
		},
		Access: BuildAccessDTO(policy),
		Tokens: TokensDTO{
			Balance:            balance,
			FreeBatchUsedToday: lastFreeDay == clock.DayID(clk.Now()),
		},
	}

	c.JSON(http.StatusOK, resp)
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	type Token struct {
		UserID int
	}
	var t Token
	if err := database.DB.Table("verification_tokens").Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	_ = database.DB.Exec("DELETE FROM verification_tokens WHERE token = ?", token)

	redirectURL := "http://localhost:5173/signin"
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
