package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/internal/auction"
	"github.com/itsDrac/bidhub/internal/database"
	"github.com/itsDrac/bidhub/internal/db"
	"github.com/itsDrac/bidhub/internal/notify"
)

type SellerServicer interface {
	ListBidRequests(ctx context.Context, sellerID, productID uuid.UUID) ([]BidRequestView, error)
	HandleBidRequest(ctx context.Context, sellerID, requestID uuid.UUID, action auction.RequestAction) (BidRequestView, error)
	ListBidders(ctx context.Context, sellerID, productID uuid.UUID) ([]BidderView, error)
	KickBidderFromAuction(ctx context.Context, in KickInput) (KickResult, error)
}

type SellerService struct {
	store    db.Store
	notifier notify.Notifier
	now      func() time.Time
}

func NewSellerService(store db.Store, n notify.Notifier) (*SellerService, error) {
	if store == nil || n == nil {
		return nil, fmt.Errorf("seller service: store and notifier are required")
	}
	return &SellerService{
		store:    store,
		notifier: n,
		now:      time.Now,
	}, nil
}

func (ss *SellerService) ListBidRequests(ctx context.Context, sellerID, productID uuid.UUID) ([]BidRequestView, error) {
	if _, err := ownedProduct(ctx, ss.store, sellerID, productID, false); err != nil {
		return nil, err
	}
	rows, err := ss.store.ListBidRequestsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list bid requests: %w", err)
	}
	out := make([]BidRequestView, 0, len(rows))
	for _, r := range rows {
		out = append(out, BidRequestView{
			ID:          r.ID,
			ProductID:   r.ProductID,
			BidderID:    r.BidderID,
			Username:    r.Username,
			RatingPlus:  r.RatingPlus,
			RatingMinus: r.RatingMinus,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
			DecidedAt:   r.DecidedAt,
		})
	}
	return out, nil
}

// HandleBidRequest moves a pending request to approved or rejected. Only the
// seller of the product may decide, and a decision is final.
func (ss *SellerService) HandleBidRequest(ctx context.Context, sellerID, requestID uuid.UUID, action auction.RequestAction) (BidRequestView, error) {
	if _, err := auction.ParseAction(string(action)); err != nil {
		return BidRequestView{}, err
	}

	var (
		view   BidRequestView
		outbox []notify.Notification
	)
	err := ss.store.RunTx(ctx, func(q database.Querier) error {
		req, err := q.GetBidRequestForUpdate(ctx, requestID)
		if db.IsNotFound(err) {
			return ErrBidRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("get bid request: %w", err)
		}

		p, err := ownedProduct(ctx, q, sellerID, req.ProductID, false)
		if err != nil {
			return err
		}

		next, err := auction.RequestStatus(req.Status).Transition(action)
		if errors.Is(err, auction.ErrRequestDecided) {
			return ErrRequestAlreadyHandled
		}
		if err != nil {
			return err
		}

		decided, err := q.DecideBidRequest(ctx, database.DecideBidRequestParams{
			ID:        req.ID,
			Status:    string(next),
			DecidedAt: ss.now(),
		})
		if db.IsNotFound(err) {
			return ErrRequestAlreadyHandled
		}
		if err != nil {
			return fmt.Errorf("decide bid request: %w", err)
		}

		users, err := usersByID(ctx, q, decided.BidderID)
		if err != nil {
			return err
		}
		bidder := users[decided.BidderID]
		n := notify.New(notify.KindBidRequestDecided, decided.BidderID, p.ID, p.Title)
		n.Email = bidder.Email
		n.Username = bidder.Username
		n.Detail = decided.Status
		outbox = append(outbox, n)

		view = BidRequestView{
			ID:          decided.ID,
			ProductID:   decided.ProductID,
			BidderID:    decided.BidderID,
			Username:    bidder.Username,
			RatingPlus:  bidder.RatingPlus,
			RatingMinus: bidder.RatingMinus,
			Status:      decided.Status,
			CreatedAt:   decided.CreatedAt,
			DecidedAt:   decided.DecidedAt,
		}
		return nil
	})
	if err != nil {
		return BidRequestView{}, err
	}

	ss.notifier.Notify(ctx, outbox...)
	slog.Info("[Seller] bid request handled", "request_id", view.ID, "status", view.Status)
	return view, nil
}

func (ss *SellerService) ListBidders(ctx context.Context, sellerID, productID uuid.UUID) ([]BidderView, error) {
	p, err := ownedProduct(ctx, ss.store, sellerID, productID, false)
	if err != nil {
		return nil, err
	}
	rows, err := ss.store.ListBiddersByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list bidders: %w", err)
	}
	out := make([]BidderView, 0, len(rows))
	for _, r := range rows {
		out = append(out, BidderView{
			ID:          r.ID,
			Username:    r.Username,
			RatingPlus:  r.RatingPlus,
			RatingMinus: r.RatingMinus,
			HighestBid:  r.HighestBid,
			BidCount:    r.BidCount,
			LastBidAt:   r.LastBidAt,
			Banned:      r.Banned,
			IsLeader:    p.HighestBidderID.Valid && p.HighestBidderID.UUID == r.ID,
		})
	}
	return out, nil
}

// KickBidderFromAuction bans a bidder from one auction and, when they were
// leading, rebuilds the leader and price from the remaining proxy bids. The
// ban and the recalculation commit together.
func (ss *SellerService) KickBidderFromAuction(ctx context.Context, in KickInput) (KickResult, error) {
	if in.ProductID == uuid.Nil || in.BidderID == uuid.Nil {
		return KickResult{}, ErrInvalidInput
	}
	if in.SellerID == in.BidderID {
		return KickResult{}, ErrKickSelf
	}

	var (
		res    KickResult
		outbox []notify.Notification
	)
	err := ss.store.RunTx(ctx, func(q database.Querier) error {
		p, err := ownedProduct(ctx, q, in.SellerID, in.ProductID, true)
		if err != nil {
			return err
		}
		if p.Status != database.ProductStatusActive {
			return ErrAuctionNotActive
		}

		users, err := usersByID(ctx, q, in.BidderID)
		if err != nil {
			return err
		}
		bidder, ok := users[in.BidderID]
		if !ok {
			return ErrBidderNotFound
		}

		if _, err := q.InsertBan(ctx, database.InsertBanParams{
			ProductID: p.ID,
			BidderID:  in.BidderID,
			Reason:    in.Reason,
		}); err != nil {
			return fmt.Errorf("insert ban: %w", err)
		}

		wasHighest := p.HighestBidderID.Valid && p.HighestBidderID.UUID == in.BidderID
		res = KickResult{
			ProductID:  p.ID,
			BidderID:   in.BidderID,
			WasHighest: wasHighest,
		}

		if wasHighest {
			state, err := ss.recalculateAfterKick(ctx, q, p)
			if err != nil {
				return err
			}
			if state.HasLeader() {
				price, leader := state.Price, state.Leader
				res.CurrentPrice = &price
				res.HighestBidderID = &leader
			}
		} else {
			res.CurrentPrice = pricePtr(p.CurrentPrice)
			if p.HighestBidderID.Valid {
				leader := p.HighestBidderID.UUID
				res.HighestBidderID = &leader
			}
		}

		n := notify.New(notify.KindKicked, in.BidderID, p.ID, p.Title)
		n.Email = bidder.Email
		n.Username = bidder.Username
		n.Detail = in.Reason
		outbox = append(outbox, n)
		return nil
	})
	if err != nil {
		return KickResult{}, err
	}

	ss.notifier.Notify(ctx, outbox...)
	slog.Info("[Seller] bidder kicked",
		"product_id", res.ProductID,
		"bidder_id", res.BidderID,
		"was_highest", res.WasHighest,
	)
	return res, nil
}

// recalculateAfterKick retracts the removed leader's bids and replays the
// remaining eligible proxy bids from the start price. It must run in the same
// transaction as the ban so the removed bidder is already excluded.
func (ss *SellerService) recalculateAfterKick(ctx context.Context, q database.Querier, p database.Product) (auction.State, error) {
	if _, err := q.RetractBidsByBidder(ctx, database.RetractBidsByBidderParams{
		ProductID: p.ID,
		BidderID:  p.HighestBidderID.UUID,
	}); err != nil {
		return auction.State{}, fmt.Errorf("retract bids: %w", err)
	}

	autos, err := q.ListEligibleAutoBids(ctx, p.ID)
	if err != nil {
		return auction.State{}, fmt.Errorf("list auto bids: %w", err)
	}
	proxies := make([]auction.Proxy, 0, len(autos))
	for _, a := range autos {
		proxies = append(proxies, auction.Proxy{
			BidderID: a.BidderID,
			MaxPrice: a.MaxPrice,
			PlacedAt: a.UpdatedAt,
		})
	}
	state := auction.Replay(p.StartPrice, p.BidStep, proxies)

	params := database.UpdateProductBidStateParams{
		ID:      p.ID,
		EndTime: p.EndTime,
	}
	if state.HasLeader() {
		params.CurrentPrice = nullPrice(state.Price)
		params.HighestBidderID = nullID(state.Leader)
	}
	if err := q.UpdateProductBidState(ctx, params); err != nil {
		return auction.State{}, fmt.Errorf("update product: %w", err)
	}

	if state.HasLeader() {
		if _, err := q.InsertBid(ctx, database.InsertBidParams{
			ProductID: p.ID,
			BidderID:  state.Leader,
			BidAmount: state.Price,
			BidTime:   ss.now(),
		}); err != nil {
			return auction.State{}, fmt.Errorf("insert bid: %w", err)
		}
	}
	return state, nil
}
