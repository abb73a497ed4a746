package users

import "time"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Access  AccessDTO  `json:"access"`
	Tokens  TokensDTO  `json:"tokens"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID             uint    `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Lastname       string  `json:"lastname"`
	University     *string `json:"university"`
	GraduationYear *int    `json:"graduation_year"`
	ResumeURL      *string `json:"resume_url"`
	Role           string  `json:"role"`
	IsVerified     bool    `json:"is_verified"`
	ProfileURL     string  `json:"profile_url"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan          *PlanDTO `json:"plan"`
	DaysRemaining *int     `json:"days_remaining"`
	TrialUsed     bool     `json:"trial_used"`
}

type PlanDTO struct {
	Name          string    `json:"name"`
	StartedAt     time.Time `json:"started_at"`
	DurationDays  int       `json:"duration_days"`
	Features      []string  `json:"features"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	State        string     `json:"state"` // trial|premium|free
	Capabilities []string   `json:"capabilities"`
	Limits       *LimitsDTO `json:"limits,omitempty"`
}

type LimitsDTO struct {
	AutoApplyFreeQuota int `json:"auto_apply_free_quota"`
	TokenUnitCost      int `json:"token_unit_cost"`
	DailyTokenCredit   int `json:"daily_token_credit"`
}

/* ---------- TOKENS ---------- */

type TokensDTO struct {
	Balance            int  `json:"balance"`
	FreeBatchUsedToday bool `json:"free_batch_used_today"`
}
