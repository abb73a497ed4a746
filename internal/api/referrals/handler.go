package referrals

import (
	"errors"
	"net/http"
	"strings"

	"internship-app/database"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/referrals"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GET /referral-code — returns the user's share code, creating one on first
// request.
func GetMyCode(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var code referrals.Code
	err := database.DB.Where("owner_id = ?", userID).First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		code = referrals.Code{
			OwnerID: userID,
			Code:    newCode(),
		}
		if err := database.DB.Create(&code).Error; err != nil {
			// unique owner_id index absorbs a concurrent first request
			if err2 := database.DB.Where("owner_id = ?", userID).First(&code).Error; err2 != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referral code"})
				return
			}
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load referral code"})
		return
	}

	var redemptions int64
	database.DB.Model(&referrals.Redemption{}).Where("code_id = ?", code.ID).Count(&redemptions)

	c.JSON(http.StatusOK, gin.H{
		"code":          code.Code,
		"redemptions":   redemptions,
		"reward_tokens": referrals.RewardTokens,
	})
}

// POST /referrals/redeem
func Redeem(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing referral code"})
		return
	}

	err := referrals.RedeemForUser(database.DB, clock.System(), userID, strings.TrimSpace(body.Code))
	switch {
	case errors.Is(err, referrals.ErrUnknownCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown referral code"})
	case errors.Is(err, referrals.ErrSelfReferral):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You can't redeem your own code"})
	case errors.Is(err, referrals.ErrAlreadyRedeemed):
		c.JSON(http.StatusConflict, gin.H{"error": "You already redeemed a referral code"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem code"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":       "Referral code redeemed 🎉",
			"reward_tokens": referrals.RewardTokens,
		})
	}
}

// newCode produces a short, url-safe share code.
func newCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
