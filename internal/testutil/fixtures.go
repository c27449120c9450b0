package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/internal/database"
	"github.com/itsDrac/bidhub/internal/notify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type UserOpts struct {
	Role            string
	RatingPlus      int32
	RatingMinus     int32
	SellerExpiresAt *time.Time
}

// CreateUser inserts a user with a unique name. Zero opts give a bidder
// with a good rating.
func CreateUser(t *testing.T, q database.Querier, opts UserOpts) database.User {
	t.Helper()
	if opts.Role == "" {
		opts.Role = "bidder"
	}
	if opts.RatingPlus == 0 && opts.RatingMinus == 0 {
		opts.RatingPlus = 10
	}
	name := "user_" + uuid.NewString()[:8]
	u, err := q.CreateUser(context.Background(), database.CreateUserParams{
		Username:        name,
		Email:           name + "@example.com",
		Role:            opts.Role,
		SellerExpiresAt: opts.SellerExpiresAt,
		RatingPlus:      opts.RatingPlus,
		RatingMinus:     opts.RatingMinus,
	})
	require.NoError(t, err, "create user")
	return u
}

type ProductOpts struct {
	SellerID           uuid.UUID
	StartPrice         string
	BidStep            string
	BuyNowPrice        string
	RequireBidApproval bool
	AutoExtend         bool
	EndTime            time.Time
}

// CreateProduct inserts an active auction. Defaults: start 50, step 10,
// ending in two days.
func CreateProduct(t *testing.T, q database.Querier, opts ProductOpts) database.Product {
	t.Helper()
	if opts.StartPrice == "" {
		opts.StartPrice = "50"
	}
	if opts.BidStep == "" {
		opts.BidStep = "10"
	}
	if opts.EndTime.IsZero() {
		opts.EndTime = time.Now().Add(48 * time.Hour)
	}
	params := database.CreateProductParams{
		Title:              "Item " + uuid.NewString()[:8],
		Category:           "test",
		SellerID:           opts.SellerID,
		StartPrice:         decimal.RequireFromString(opts.StartPrice),
		BidStep:            decimal.RequireFromString(opts.BidStep),
		AuctionType:        database.AuctionTypeTraditional,
		RequireBidApproval: opts.RequireBidApproval,
		AutoExtend:         opts.AutoExtend,
		EndTime:            opts.EndTime,
	}
	if opts.BuyNowPrice != "" {
		params.AuctionType = database.AuctionTypeBuyNow
		params.BuyNowPrice = decimal.NullDecimal{Decimal: decimal.RequireFromString(opts.BuyNowPrice), Valid: true}
	}
	p, err := q.CreateProduct(context.Background(), params)
	require.NoError(t, err, "create product")
	return p
}

// Price parses a decimal literal.
func Price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RecordingNotifier keeps every notification handed to it.
type RecordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (r *RecordingNotifier) Notify(_ context.Context, ns ...notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, ns...)
}

// Kinds returns the kinds of notifications addressed to recipient.
func (r *RecordingNotifier) Kinds(recipient uuid.UUID) []notify.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []notify.Kind
	for _, n := range r.sent {
		if n.RecipientID == recipient {
			out = append(out, n.Kind)
		}
	}
	return out
}

func (r *RecordingNotifier) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}
