package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/internal/auction"
	"github.com/itsDrac/bidhub/internal/database"
	"github.com/itsDrac/bidhub/internal/db"
	"github.com/itsDrac/bidhub/internal/notify"
	"github.com/itsDrac/bidhub/pkg/utils"
	"github.com/shopspring/decimal"
)

type BiddingServicer interface {
	PlaceAutoBid(ctx context.Context, in PlaceBidInput) (BidResult, error)
	BuyNow(ctx context.Context, productID, buyerID uuid.UUID) (BuyNowResult, error)
	GetAuction(ctx context.Context, productID uuid.UUID) (AuctionView, error)
	ListBids(ctx context.Context, productID uuid.UUID) ([]BidView, error)
}

type BiddingService struct {
	store    db.Store
	notifier notify.Notifier
	now      func() time.Time
}

func NewBiddingService(store db.Store, n notify.Notifier) (*BiddingService, error) {
	if store == nil || n == nil {
		return nil, fmt.Errorf("bidding service: store and notifier are required")
	}
	return &BiddingService{
		store:    store,
		notifier: n,
		now:      time.Now,
	}, nil
}

// PlaceAutoBid records or replaces the caller's proxy bid and resolves it
// against the current leader. Resolution for one product is serialized by
// the product row lock.
func (bs *BiddingService) PlaceAutoBid(ctx context.Context, in PlaceBidInput) (BidResult, error) {
	if in.ProductID == uuid.Nil || in.BidderID == uuid.Nil {
		return BidResult{}, ErrInvalidInput
	}
	if err := auction.ValidAmount(in.MaxPrice); err != nil {
		return BidResult{}, err
	}

	var (
		res            BidResult
		pendingCreated bool
		outbox         []notify.Notification
	)

	err := bs.store.RunTx(ctx, func(q database.Querier) error {
		p, err := lockProduct(ctx, q, in.ProductID)
		if err != nil {
			return err
		}
		now := bs.now()
		if err := checkBiddable(ctx, q, p, in.BidderID, now); err != nil {
			return err
		}

		settings, err := q.GetSystemSettings(ctx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		created, err := checkApproval(ctx, q, p, in.BidderID, settings)
		if err != nil {
			return err
		}
		if created {
			pendingCreated = true
			return nil
		}

		state, err := auctionState(ctx, q, p)
		if err != nil {
			return err
		}
		out, err := auction.Apply(state, auction.Proxy{
			BidderID: in.BidderID,
			MaxPrice: in.MaxPrice,
			PlacedAt: now,
		})
		if err != nil {
			return err
		}

		if _, err := q.UpsertAutoBid(ctx, database.UpsertAutoBidParams{
			ProductID: p.ID,
			BidderID:  in.BidderID,
			MaxPrice:  in.MaxPrice,
			PlacedAt:  now,
		}); err != nil {
			return fmt.Errorf("upsert auto bid: %w", err)
		}

		endTime, extended := p.EndTime, false
		if out.BidPlaced {
			if _, err := q.InsertBid(ctx, database.InsertBidParams{
				ProductID: p.ID,
				BidderID:  out.State.Leader,
				BidAmount: out.State.Price,
				BidTime:   now,
			}); err != nil {
				return fmt.Errorf("insert bid: %w", err)
			}
			if p.AutoExtend {
				endTime, extended = extendPolicy(settings).Extend(p.EndTime, now)
			}
			if err := q.UpdateProductBidState(ctx, database.UpdateProductBidStateParams{
				ID:              p.ID,
				CurrentPrice:    nullPrice(out.State.Price),
				HighestBidderID: nullID(out.State.Leader),
				EndTime:         endTime,
			}); err != nil {
				return fmt.Errorf("update product: %w", err)
			}
		}

		if out.Outbid != uuid.Nil {
			users, err := usersByID(ctx, q, out.Outbid)
			if err != nil {
				return err
			}
			outbox = append(outbox, auctionNotification(notify.KindOutbid, p, out.Outbid, users, out.State.Price))
		}

		res = BidResult{
			ProductID:       p.ID,
			CurrentPrice:    out.State.Price,
			HighestBidderID: out.State.Leader,
			IsLeader:        out.State.Leader == in.BidderID,
			MaxPrice:        in.MaxPrice,
			BidPlaced:       out.BidPlaced,
			EndTime:         endTime,
			Extended:        extended,
		}
		return nil
	})
	if err != nil {
		return BidResult{}, err
	}
	if pendingCreated {
		slog.Info("[Bid] approval requested", "product_id", in.ProductID, "bidder_id", in.BidderID)
		return BidResult{}, ErrBidRequestPending
	}

	bs.notifier.Notify(ctx, outbox...)
	slog.Info("[Bid] resolved",
		"product_id", res.ProductID,
		"leader", res.HighestBidderID,
		"price", res.CurrentPrice.String(),
		"bid_placed", res.BidPlaced,
	)
	return res, nil
}

// BuyNow closes a buy-now auction immediately at its buy-now price.
func (bs *BiddingService) BuyNow(ctx context.Context, productID, buyerID uuid.UUID) (BuyNowResult, error) {
	if productID == uuid.Nil || buyerID == uuid.Nil {
		return BuyNowResult{}, ErrInvalidInput
	}

	var (
		res            BuyNowResult
		pendingCreated bool
		outbox         []notify.Notification
	)

	err := bs.store.RunTx(ctx, func(q database.Querier) error {
		p, err := lockProduct(ctx, q, productID)
		if err != nil {
			return err
		}
		now := bs.now()
		if p.AuctionType != database.AuctionTypeBuyNow || !p.BuyNowPrice.Valid {
			return ErrNotBuyNow
		}
		if err := checkBiddable(ctx, q, p, buyerID, now); err != nil {
			return err
		}

		settings, err := q.GetSystemSettings(ctx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		created, err := checkApproval(ctx, q, p, buyerID, settings)
		if err != nil {
			return err
		}
		if created {
			pendingCreated = true
			return nil
		}

		price := p.BuyNowPrice.Decimal
		if p.CurrentPrice.Valid && !price.GreaterThan(p.CurrentPrice.Decimal) {
			return auction.ErrBidTooLow
		}

		if _, err := q.InsertBid(ctx, database.InsertBidParams{
			ProductID: p.ID,
			BidderID:  buyerID,
			BidAmount: price,
			BidTime:   now,
		}); err != nil {
			return fmt.Errorf("insert bid: %w", err)
		}
		if err := q.UpdateProductBidState(ctx, database.UpdateProductBidStateParams{
			ID:              p.ID,
			CurrentPrice:    nullPrice(price),
			HighestBidderID: nullID(buyerID),
			EndTime:         p.EndTime,
		}); err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if err := q.SetProductStatus(ctx, database.SetProductStatusParams{
			ID:     p.ID,
			Status: database.ProductStatusClosed,
		}); err != nil {
			return fmt.Errorf("close product: %w", err)
		}
		if _, err := q.CreateOrderIfAbsent(ctx, database.CreateOrderIfAbsentParams{
			ProductID:  p.ID,
			BuyerID:    buyerID,
			SellerID:   p.SellerID,
			FinalPrice: price,
		}); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		order, err := q.GetOrderByProduct(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		var previous uuid.UUID
		if p.HighestBidderID.Valid && p.HighestBidderID.UUID != buyerID {
			previous = p.HighestBidderID.UUID
		}
		users, err := usersByID(ctx, q, p.SellerID, buyerID, previous)
		if err != nil {
			return err
		}
		outbox = append(outbox,
			auctionNotification(notify.KindAuctionSold, p, p.SellerID, users, price),
			auctionNotification(notify.KindAuctionWon, p, buyerID, users, price),
		)
		if previous != uuid.Nil {
			outbox = append(outbox, auctionNotification(notify.KindOutbid, p, previous, users, price))
		}

		res = BuyNowResult{
			ProductID:  p.ID,
			OrderID:    order.ID,
			FinalPrice: price,
			Status:     database.ProductStatusClosed,
		}
		return nil
	})
	if err != nil {
		return BuyNowResult{}, err
	}
	if pendingCreated {
		return BuyNowResult{}, ErrBidRequestPending
	}

	bs.notifier.Notify(ctx, outbox...)
	slog.Info("[Bid] bought now", "product_id", res.ProductID, "buyer_id", buyerID, "price", res.FinalPrice.String())
	return res, nil
}

func (bs *BiddingService) GetAuction(ctx context.Context, productID uuid.UUID) (AuctionView, error) {
	p, err := getProduct(ctx, bs.store, productID)
	if err != nil {
		return AuctionView{}, err
	}

	view := AuctionView{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		SellerID:           p.SellerID,
		StartPrice:         p.StartPrice,
		BidStep:            p.BidStep,
		CurrentPrice:       pricePtr(p.CurrentPrice),
		BuyNowPrice:        pricePtr(p.BuyNowPrice),
		AuctionType:        p.AuctionType,
		Status:             p.Status,
		RequireBidApproval: p.RequireBidApproval,
		AutoExtend:         p.AutoExtend,
		EndTime:            p.EndTime,
	}
	if p.HighestBidderID.Valid {
		u, err := bs.store.GetUser(ctx, p.HighestBidderID.UUID)
		if err != nil && !db.IsNotFound(err) {
			return AuctionView{}, fmt.Errorf("get highest bidder: %w", err)
		}
		view.HighestBidder = utils.MaskName(u.Username)
	}
	return view, nil
}

// ListBids returns the visible bid history, newest first, with bidder names masked.
func (bs *BiddingService) ListBids(ctx context.Context, productID uuid.UUID) ([]BidView, error) {
	if _, err := getProduct(ctx, bs.store, productID); err != nil {
		return nil, err
	}
	rows, err := bs.store.ListBidsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	out := make([]BidView, 0, len(rows))
	for _, r := range rows {
		out = append(out, BidView{
			ID:      r.ID,
			Bidder:  utils.MaskName(r.Username),
			Amount:  r.BidAmount,
			BidTime: r.BidTime,
		})
	}
	return out, nil
}

func auctionNotification(kind notify.Kind, p database.Product, to uuid.UUID, users map[uuid.UUID]database.User, amount decimal.Decimal) notify.Notification {
	n := notify.New(kind, to, p.ID, p.Title)
	n.Email = users[to].Email
	n.Username = users[to].Username
	n.Amount = amount
	return n
}
