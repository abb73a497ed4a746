package users

import "time"

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	// student profile
	University     string
	GraduationYear *int
	ResumeURL      *string `gorm:"column:resume_url"`

	ProfileSlug *string `gorm:"column:profile_slug;uniqueIndex:idx_users_profile_slug"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	// the free trial can be taken once per account
	TrialUsedAt *time.Time `gorm:"column:trial_used_at"`

	ReferredBy *uint `gorm:"column:referred_by"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
