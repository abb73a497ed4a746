package plans

import (
	"time"

	"gorm.io/datatypes"
)

type Plan struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	Tier          string `gorm:"column:tier"` // "basic" | "pro" | "enterprise"
	PriceEUR      float64
	StripePriceID string         `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_plans_stripe_price_id"`
	Interval      string         // month/year
	DurationDays  int            `gorm:"column:duration_days"`
	Features      datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
