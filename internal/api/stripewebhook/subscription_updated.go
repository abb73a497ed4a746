package stripewebhooks

import (
	"fmt"
	"strconv"

	"internship-app/database"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/plans"
	"internship-app/internal/domain/users"
	"internship-app/internal/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

// A subscription renewal (or plan switch in the Stripe portal) restarts the
// 30-day entitlement window on whatever tier the subscription now carries.
func handleSubscriptionUpdated(c *gin.Context, sub *stripe.Subscription) error {
	if sub.ID == "" || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return fmt.Errorf("subscription missing id/items/price")
	}

	if sub.Status != stripe.SubscriptionStatusActive {
		// past_due, canceled etc. never extend access; the window already
		// granted simply runs out on its own.
		return nil
	}

	user, ok := findSubscriptionUser(sub)
	if !ok {
		// acknowledge to avoid Stripe retries if user deleted
		return nil
	}

	activePriceID := sub.Items.Data[0].Price.ID
	var plan plans.Plan
	if err := database.DB.Where("stripe_price_id = ?", activePriceID).First(&plan).Error; err != nil {
		return nil
	}

	ledger := entitlement.NewLedger(kvstore.ForUser(database.DB, user.ID), clock.System())
	if _, err := ledger.ActivatePaidPlan(plans.PlanTier(&plan), entitlement.PaymentInfo{
		Method: "stripe",
		Detail: sub.ID,
	}); err != nil {
		return fmt.Errorf("failed to renew plan: %w", err)
	}

	fmt.Printf("✅ Plan %s renewed for user %d\n", plan.Name, user.ID)
	return nil
}

func findSubscriptionUser(sub *stripe.Subscription) (users.User, bool) {
	var user users.User

	if userID := userIDFromMetadata(sub.Metadata); userID != 0 {
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err == nil {
			return user, true
		}
	}

	if sub.Customer != nil && sub.Customer.ID != "" {
		if err := database.DB.Where("stripe_customer_id = ?", sub.Customer.ID).First(&user).Error; err == nil {
			return user, true
		}
	}

	return users.User{}, false
}

func userIDFromMetadata(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
