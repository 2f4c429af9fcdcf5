package constants

import (
	"time"
)

// Billing. Amounts are KES; the gateway wants minor units (x100).
const (
	Currency            = "KES"
	MobileMoneyProvider = "mpesa"

	VerificationFee  = 999.0
	ContactAccessFee = 499.0

	DefaultPromotionDays  = 30
	DefaultPromotionPrice = 1499.0
)

// PromotionPricing maps promotion duration in days to its price. An
// unknown duration falls back to the default tier.
var PromotionPricing = map[int]float64{
	1:  99.0,
	7:  499.0,
	30: 1499.0,
}

func PromotionPrice(days int) (float64, int) {
	if price, ok := PromotionPricing[days]; ok {
		return price, days
	}
	return DefaultPromotionPrice, DefaultPromotionDays
}

// Auth and token lifetimes
const (
	DefaultTokenExpiry        = 15 * time.Minute
	DefaultRefreshTokenExpiry = 7 * 24 * time.Hour
	PasswordResetTokenExpiry  = 1 * time.Hour
	PasswordResetTokenLength  = 32
	MinPasswordLength         = 8
)

// Listing search and dashboards
const (
	MapViewLimit        = 500
	RecentActivityLimit = 10
	SlugSuffixMax       = 50
)

// Cron schedules (UTC)
const (
	CronSpecExpirePromotions = "*/10 * * * *"
	CronSpecPurgeTokens      = "0 3 * * *"
)

// Common concurrency conflict / row-version conflict messages
const (
	ErrMsgNoRowsUpdated             = "No rows updated"
	ErrMsgRowVersionConflictRefresh = "The listing has changed, please refresh"
)
