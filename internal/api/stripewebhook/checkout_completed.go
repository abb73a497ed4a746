package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"

	"internship-app/database"
	"internship-app/internal/domain/billing"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/plans"
	"internship-app/internal/domain/users"
	"internship-app/internal/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
)

func handleCheckoutSessionCompleted(c *gin.Context, eventID string, session *stripe.CheckoutSession) error {
	// Idempotency: Stripe retries webhooks, the event id is unique per attempt
	// chain. If we already recorded this event, acknowledge and stop.
	var count int64
	if err := database.DB.Model(&billing.Payment{}).
		Where("stripe_event_id = ?", eventID).
		Count(&count).Error; err == nil && count > 0 {
		return nil
	}

	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	subscriptionID := fullSession.Subscription.ID

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	// Identify user: metadata.user_id preferred, else ClientReferenceID
	userID, err := userIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	// Map Stripe price -> catalog plan -> tier
	priceID := subData.Items.Data[0].Price.ID
	var plan plans.Plan
	if err := database.DB.Where("stripe_price_id = ?", priceID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found for stripe price_id=%s: %w", priceID, err)
	}

	ledger := entitlement.NewLedger(kvstore.ForUser(database.DB, user.ID), clock.System())
	if _, err := ledger.ActivatePaidPlan(plans.PlanTier(&plan), entitlement.PaymentInfo{
		Method: "stripe",
		Detail: subscriptionID,
	}); err != nil {
		return fmt.Errorf("failed to activate plan: %w", err)
	}

	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		if err := database.DB.Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("stripe_customer_id", fullSession.Customer.ID).Error; err != nil {
			return fmt.Errorf("failed to store stripe customer: %w", err)
		}
	}

	payment := billing.Payment{
		UserID:          user.ID,
		PlanID:          &plan.ID,
		StripeSessionID: fullSession.ID,
		StripeEventID:   &eventID,
		AmountEUR:       float64(fullSession.AmountTotal) / 100.0,
		Status:          "paid",
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		// unique indexes on session/event id absorb concurrent retries
		fmt.Println("⚠️ payment row not created:", err)
	}

	fmt.Printf("✅ Plan %s activated for user %d via checkout\n", plan.Name, user.ID)
	return nil
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}
