package billing

import (
	"errors"
	"net/http"

	"internship-app/database"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/users"
	"internship-app/internal/kvstore"

	"github.com/gin-gonic/gin"
)

// ActivateTrial starts the one-time 7-day free trial. The trial may only be
// taken once per account, and never while another plan is still running.
func ActivateTrial(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if user.TrialUsedAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Free trial already used"})
		return
	}

	clk := clock.System()
	ledger := entitlement.NewLedger(kvstore.ForUser(database.DB, userID), clk)

	active, err := ledger.IsActive()
	if err != nil {
		respondStorageError(c, err)
		return
	}
	if active {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have an active plan"})
		return
	}

	plan, err := ledger.ActivateFreeTrial()
	if err != nil {
		respondStorageError(c, err)
		return
	}

	now := clk.Now()
	if err := database.DB.Model(&users.User{}).
		Where("id = ?", userID).
		Update("trial_used_at", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record trial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":          plan.Name,
		"started_at":    plan.StartedAt,
		"duration_days": plan.DurationDays,
		"features":      plan.Features,
	})
}

func respondStorageError(c *gin.Context, err error) {
	var serr *kvstore.StorageError
	if errors.As(err, &serr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't save, try again"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Trial activation failed"})
}
