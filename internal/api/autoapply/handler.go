package autoapply

import (
	"errors"
	"net/http"
	"strconv"

	"internship-app/database"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/gate"
	"internship-app/internal/domain/internships"
	"internship-app/internal/domain/tokens"
	"internship-app/internal/kvstore"

	"github.com/gin-gonic/gin"
)

func gateFor(userID uint) *gate.Gate {
	store := kvstore.ForUser(database.DB, userID)
	clk := clock.System()
	ledger := entitlement.NewLedger(store, clk)
	meter := tokens.NewMeter(store, clk)
	return gate.NewAutoApply(ledger, meter, store, clk)
}

// candidateIDs collects the internships the user could still auto-apply to:
// active listings with an open deadline, minus existing applications.
func candidateIDs(userID uint) ([]string, error) {
	var ids []uint
	err := database.DB.
		Model(&internships.Internship{}).
		Where("active = ?", true).
		Where("apply_by IS NULL OR apply_by > NOW()").
		Where("id NOT IN (?)",
			database.DB.Model(&internships.Application{}).
				Select("internship_id").
				Where("user_id = ?", userID),
		).
		Order("created_at DESC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.FormatUint(uint64(id), 10))
	}
	return out, nil
}

// GET /auto-apply/preview
func Preview(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	candidates, err := candidateIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load internships"})
		return
	}

	decision, err := gateFor(userID).Preview(candidates)
	if err != nil {
		respondGateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":          decision.Mode,
		"eligible":      len(decision.Eligible),
		"would_process": len(decision.Items),
		"token_cost":    decision.TokenCost,
		"affordable":    decision.Affordable,
		"denied":        decision.Denied,
	})
}

// POST /auto-apply
func Apply(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	candidates, err := candidateIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load internships"})
		return
	}

	result, err := gateFor(userID).Apply(candidates)
	if err != nil {
		respondGateError(c, err)
		return
	}

	if result.Denied {
		c.JSON(http.StatusOK, gin.H{
			"applied": []uint{},
			"mode":    result.Mode,
			"denied":  true,
			"reason":  "insufficient_tokens",
		})
		return
	}

	applied := make([]uint, 0, len(result.Processed))
	for _, idStr := range result.Processed {
		id64, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}
		app := internships.Application{
			UserID:       userID,
			InternshipID: uint(id64),
			Status:       internships.StatusSubmitted,
			ViaAutoApply: true,
		}
		if err := database.DB.Create(&app).Error; err != nil {
			// unique index makes re-runs safe; skip rows that already exist
			continue
		}
		applied = append(applied, uint(id64))
	}

	c.JSON(http.StatusOK, gin.H{
		"applied":    applied,
		"mode":       result.Mode,
		"token_cost": result.TokenCost,
		"denied":     false,
	})
}

func respondGateError(c *gin.Context, err error) {
	var serr *kvstore.StorageError
	if errors.As(err, &serr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't save, try again"})
		return
	}
	if errors.Is(err, tokens.ErrInvalidInput) || errors.Is(err, entitlement.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Auto-apply failed"})
}
