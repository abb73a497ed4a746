package referrals

import "time"

// RewardTokens is credited to both sides of a successful redemption, on top
// of the regular daily credit.
const RewardTokens = 25

type Code struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;uniqueIndex" json:"-"`
	Code      string    `gorm:"not null;uniqueIndex" json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// Redemption links a new user to the code they redeemed. One redemption per
// user, ever — enforced by the unique index.
type Redemption struct {
	ID        uint `gorm:"primaryKey"`
	CodeID    uint `gorm:"not null;index"`
	Code      Code `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}
