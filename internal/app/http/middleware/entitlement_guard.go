package middleware

import (
	"errors"
	"net/http"

	"internship-app/database"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/kvstore"

	"github.com/gin-gonic/gin"
)

// RequirePremium blocks routes behind an active entitlement (trial or paid).
// Storage failures are 500s, never treated as "no plan".
func RequirePremium() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		ledger := entitlement.NewLedger(kvstore.ForUser(database.DB, userID), clock.System())
		active, err := ledger.IsActive()
		if err != nil {
			var serr *kvstore.StorageError
			if errors.As(err, &serr) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Couldn't read subscription state, try again"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Subscription check failed"})
			return
		}

		if !active {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": "An active plan is required for this feature"})
			return
		}

		c.Next()
	}
}
