package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/internal/database"
	"github.com/itsDrac/bidhub/internal/db"
	"github.com/itsDrac/bidhub/internal/notify"
)

type CronServicer interface {
	CloseExpiredAuctions(ctx context.Context) (int, error)
	DowngradeExpiredSellers(ctx context.Context) (int64, error)
}

type CronService struct {
	store    db.Store
	notifier notify.Notifier
	now      func() time.Time
}

func NewCronService(store db.Store, n notify.Notifier) (*CronService, error) {
	if store == nil || n == nil {
		return nil, fmt.Errorf("cron service: store and notifier are required")
	}
	return &CronService{
		store:    store,
		notifier: n,
		now:      time.Now,
	}, nil
}

// CloseExpiredAuctions finalizes every active auction whose end time has
// passed: no winner means expired, a winner means closed plus one order.
// Notifications go out only after the transaction commits.
func (cs *CronService) CloseExpiredAuctions(ctx context.Context) (int, error) {
	var (
		processed int
		outbox    []notify.Notification
	)

	err := cs.store.RunTx(ctx, func(q database.Querier) error {
		ok, err := q.TryAdvisoryXactLock(ctx, database.LockKeyCloseExpiredAuctions)
		if err != nil {
			return fmt.Errorf("acquire job lock: %w", err)
		}
		if !ok {
			return ErrJobRunning
		}

		products, err := q.ListExpiredActiveProductsForUpdate(ctx, cs.now())
		if err != nil {
			return fmt.Errorf("list expired auctions: %w", err)
		}
		if len(products) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(products)*2)
		for _, p := range products {
			ids = append(ids, p.SellerID)
			if p.HighestBidderID.Valid {
				ids = append(ids, p.HighestBidderID.UUID)
			}
		}
		users, err := usersByID(ctx, q, ids...)
		if err != nil {
			return err
		}

		for _, p := range products {
			if !p.HighestBidderID.Valid {
				if err := q.SetProductStatus(ctx, database.SetProductStatusParams{
					ID:     p.ID,
					Status: database.ProductStatusExpired,
				}); err != nil {
					return fmt.Errorf("expire product %s: %w", p.ID, err)
				}
				outbox = append(outbox, auctionNotification(notify.KindAuctionExpired, p, p.SellerID, users, p.StartPrice))
				processed++
				continue
			}

			winner := p.HighestBidderID.UUID
			price := p.CurrentPrice.Decimal
			if err := q.SetProductStatus(ctx, database.SetProductStatusParams{
				ID:     p.ID,
				Status: database.ProductStatusClosed,
			}); err != nil {
				return fmt.Errorf("close product %s: %w", p.ID, err)
			}
			if _, err := q.CreateOrderIfAbsent(ctx, database.CreateOrderIfAbsentParams{
				ProductID:  p.ID,
				BuyerID:    winner,
				SellerID:   p.SellerID,
				FinalPrice: price,
			}); err != nil {
				return fmt.Errorf("create order for %s: %w", p.ID, err)
			}
			outbox = append(outbox,
				auctionNotification(notify.KindAuctionSold, p, p.SellerID, users, price),
				auctionNotification(notify.KindAuctionWon, p, winner, users, price),
			)
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	cs.notifier.Notify(ctx, outbox...)
	if processed > 0 {
		slog.Info("[Cron] closed expired auctions", "count", processed)
	}
	return processed, nil
}

// DowngradeExpiredSellers turns sellers whose seller period has ended back
// into bidders.
func (cs *CronService) DowngradeExpiredSellers(ctx context.Context) (int64, error) {
	var n int64
	err := cs.store.RunTx(ctx, func(q database.Querier) error {
		ok, err := q.TryAdvisoryXactLock(ctx, database.LockKeyDowngradeExpiredSeller)
		if err != nil {
			return fmt.Errorf("acquire job lock: %w", err)
		}
		if !ok {
			return ErrJobRunning
		}
		n, err = q.DowngradeExpiredSellers(ctx, cs.now())
		if err != nil {
			return fmt.Errorf("downgrade sellers: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("[Cron] downgraded expired sellers", "count", n)
	}
	return n, nil
}
