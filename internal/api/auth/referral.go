package auth

import (
	"internship-app/database"
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/referrals"
)

func redeemReferralForNewUser(userID uint, code string) error {
	return referrals.RedeemForUser(database.DB, clock.System(), userID, code)
}
