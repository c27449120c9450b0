package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/internal/auction"
	"github.com/itsDrac/bidhub/internal/database"
	"github.com/itsDrac/bidhub/internal/db"
	"github.com/shopspring/decimal"
)

func lockProduct(ctx context.Context, q database.Querier, id uuid.UUID) (database.Product, error) {
	p, err := q.GetProductForUpdate(ctx, id)
	if db.IsNotFound(err) {
		return p, ErrProductNotFound
	}
	if err != nil {
		return p, fmt.Errorf("lock product: %w", err)
	}
	return p, nil
}

func getProduct(ctx context.Context, q database.Querier, id uuid.UUID) (database.Product, error) {
	p, err := q.GetProduct(ctx, id)
	if db.IsNotFound(err) {
		return p, ErrProductNotFound
	}
	if err != nil {
		return p, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ownedProduct loads a product and checks it belongs to sellerID.
func ownedProduct(ctx context.Context, q database.Querier, sellerID, productID uuid.UUID, lock bool) (database.Product, error) {
	var (
		p   database.Product
		err error
	)
	if lock {
		p, err = lockProduct(ctx, q, productID)
	} else {
		p, err = getProduct(ctx, q, productID)
	}
	if err != nil {
		return p, err
	}
	if p.SellerID != sellerID {
		return p, ErrForbidden
	}
	return p, nil
}

// checkBiddable enforces the preconditions shared by every way of bidding on
// a locked product.
func checkBiddable(ctx context.Context, q database.Querier, p database.Product, bidderID uuid.UUID, now time.Time) error {
	if p.Status != database.ProductStatusActive {
		return ErrAuctionNotActive
	}
	if !now.Before(p.EndTime) {
		return ErrAuctionEnded
	}
	if p.SellerID == bidderID {
		return ErrSelfBidding
	}
	banned, err := q.IsBanned(ctx, database.IsBannedParams{ProductID: p.ID, BidderID: bidderID})
	if err != nil {
		return fmt.Errorf("check ban: %w", err)
	}
	if banned {
		return ErrBidderBanned
	}
	return nil
}

// checkApproval runs the bid request gate. created reports that a new pending
// request was written; the caller must commit and then answer with
// ErrBidRequestPending.
func checkApproval(ctx context.Context, q database.Querier, p database.Product, bidderID uuid.UUID, settings database.SystemSetting) (created bool, err error) {
	user, err := q.GetUser(ctx, bidderID)
	if db.IsNotFound(err) {
		return false, ErrUserNotFound
	}
	if err != nil {
		return false, fmt.Errorf("get bidder: %w", err)
	}

	policy := approvalPolicy(settings)
	if !policy.Requires(p.RequireBidApproval, int(user.RatingPlus), int(user.RatingMinus)) {
		return false, nil
	}

	req, err := q.GetBidRequest(ctx, database.GetBidRequestParams{ProductID: p.ID, BidderID: bidderID})
	if db.IsNotFound(err) {
		if err := q.CreateBidRequest(ctx, database.CreateBidRequestParams{ProductID: p.ID, BidderID: bidderID}); err != nil {
			return false, fmt.Errorf("create bid request: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("get bid request: %w", err)
	}

	switch status := auction.RequestStatus(req.Status); {
	case status.AllowsBidding():
		return false, nil
	case status == auction.RequestRejected:
		return false, ErrBidRequestRejected
	default:
		return false, ErrBidRequestPending
	}
}

func approvalPolicy(s database.SystemSetting) auction.ApprovalPolicy {
	return auction.ApprovalPolicy{
		MinPositiveRatio:    s.MinPositiveRatingRatio,
		AllowUnratedBidders: s.AllowUnratedBidders,
	}
}

func extendPolicy(s database.SystemSetting) auction.ExtendPolicy {
	return auction.ExtendPolicy{
		Threshold: time.Duration(s.AutoExtendThresholdMinutes) * time.Minute,
		Extension: time.Duration(s.AutoExtendDurationMinutes) * time.Minute,
	}
}

// auctionState builds the resolver state of a locked product, reading the
// leader's ceiling from their proxy bid.
func auctionState(ctx context.Context, q database.Querier, p database.Product) (auction.State, error) {
	s := auction.State{
		StartPrice: p.StartPrice,
		Step:       p.BidStep,
	}
	if !p.HighestBidderID.Valid || !p.CurrentPrice.Valid {
		return s, nil
	}
	s.Leader = p.HighestBidderID.UUID
	s.Price = p.CurrentPrice.Decimal
	s.LeaderMax = s.Price

	ab, err := q.GetAutoBid(ctx, database.GetAutoBidParams{ProductID: p.ID, BidderID: s.Leader})
	if err != nil && !db.IsNotFound(err) {
		return s, fmt.Errorf("get leader proxy: %w", err)
	}
	if err == nil && ab.MaxPrice.GreaterThan(s.LeaderMax) {
		s.LeaderMax = ab.MaxPrice
	}
	return s, nil
}

func usersByID(ctx context.Context, q database.Querier, ids ...uuid.UUID) (map[uuid.UUID]database.User, error) {
	uniq := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	out := make(map[uuid.UUID]database.User, len(uniq))
	if len(uniq) == 0 {
		return out, nil
	}
	users, err := q.GetUsersByIDs(ctx, uniq)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func nullPrice(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func nullID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func pricePtr(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
