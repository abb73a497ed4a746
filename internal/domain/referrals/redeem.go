package referrals

import (
	"errors"
	"fmt"

	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/tokens"
	"internship-app/internal/domain/users"
	"internship-app/internal/kvstore"

	"gorm.io/gorm"
)

var (
	ErrUnknownCode     = errors.New("referrals: unknown code")
	ErrSelfReferral    = errors.New("referrals: cannot redeem own code")
	ErrAlreadyRedeemed = errors.New("referrals: user already redeemed a code")
)

// RedeemForUser applies codeStr for userID: records the redemption, links the
// referrer on the user row, and credits RewardTokens to both sides' meters.
func RedeemForUser(db *gorm.DB, clk clock.Clock, userID uint, codeStr string) error {
	var code Code
	if err := db.Where("code = ?", codeStr).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownCode
		}
		return fmt.Errorf("referrals: lookup code: %w", err)
	}

	if code.OwnerID == userID {
		return ErrSelfReferral
	}

	var existing Redemption
	err := db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return ErrAlreadyRedeemed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("referrals: lookup redemption: %w", err)
	}

	redemption := Redemption{CodeID: code.ID, UserID: userID}
	if err := db.Create(&redemption).Error; err != nil {
		return fmt.Errorf("referrals: record redemption: %w", err)
	}

	if err := db.Model(&users.User{}).
		Where("id = ?", userID).
		Update("referred_by", code.OwnerID).Error; err != nil {
		return fmt.Errorf("referrals: link referrer: %w", err)
	}

	// both sides get the bonus; the meters are independent per-user ledgers
	for _, id := range []uint{userID, code.OwnerID} {
		meter := tokens.NewMeter(kvstore.ForUser(db, id), clk)
		if _, err := meter.CreditBonus(RewardTokens); err != nil {
			return fmt.Errorf("referrals: credit user %d: %w", id, err)
		}
	}

	return nil
}
