package billing

import (
	"internship-app/internal/domain/plans"
	"internship-app/internal/domain/users"
	"time"
)

type Payment struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint
	User            users.User
	PlanID          *uint
	Plan            *plans.Plan
	StripeSessionID string  `gorm:"uniqueIndex"`
	StripeEventID   *string `gorm:"column:stripe_event_id;uniqueIndex"` // webhook idempotency
	AmountEUR       float64
	Status          string
	ReceiptURL      *string
	CreatedAt       time.Time
}
