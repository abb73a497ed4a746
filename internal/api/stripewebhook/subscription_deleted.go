package stripewebhooks

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

// Cancellation does not cut access short: the user keeps whatever remains of
// the 30-day window they paid for, and the plan expires on its own once
// durationDays elapse. Nothing to mutate, just log.
func handleSubscriptionDeleted(c *gin.Context, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	if user, ok := findSubscriptionUser(sub); ok {
		fmt.Printf("📨 Subscription %s canceled for user %d, access runs out with the current window\n", sub.ID, user.ID)
	}
	return nil
}
