package database

// Column values constrained by CHECK clauses in the schema.
const (
	ProductStatusActive  = "active"
	ProductStatusClosed  = "closed"
	ProductStatusExpired = "expired"

	AuctionTypeTraditional = "traditional"
	AuctionTypeBuyNow      = "buy_now"

	OrderStatusPaymentPending = "payment_pending"
)

// Advisory lock keys for scheduled jobs.
const (
	LockKeyCloseExpiredAuctions   int64 = 7_310_001
	LockKeyDowngradeExpiredSeller int64 = 7_310_002
)
