package internships

import "time"

// Application statuses. The surrounding tracking flow only ever moves forward
// from "submitted"; the gate never touches rows after creation.
const (
	StatusSubmitted = "submitted"
	StatusInReview  = "in_review"
	StatusRejected  = "rejected"
	StatusOffer     = "offer"
)

type Application struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index;uniqueIndex:idx_applications_user_internship" json:"-"`
	InternshipID uint       `gorm:"not null;index;uniqueIndex:idx_applications_user_internship" json:"internship_id"`
	Internship   Internship `json:"internship"`
	Status       string     `gorm:"not null;default:'submitted';index" json:"status"`
	ViaAutoApply bool       `gorm:"column:via_auto_apply" json:"via_auto_apply"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
