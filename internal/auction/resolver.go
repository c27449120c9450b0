// Package auction holds the pure English-auction rules: proxy bid resolution,
// replay after a bidder is removed, the bid request state machine and
// end time extension. Nothing here touches storage.
package auction

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proxy is a standing instruction to bid up to MaxPrice on the bidder's behalf.
type Proxy struct {
	BidderID uuid.UUID
	MaxPrice decimal.Decimal
	// PlacedAt is when MaxPrice was last set.
	PlacedAt time.Time
}

// State is the visible state of one auction plus the leader's ceiling.
// Price and LeaderMax are meaningful only when HasLeader reports true.
type State struct {
	StartPrice decimal.Decimal
	Step       decimal.Decimal
	Price      decimal.Decimal
	Leader     uuid.UUID
	LeaderMax  decimal.Decimal
}

func (s State) HasLeader() bool {
	return s.Leader != uuid.Nil
}

// Outcome is the result of applying a proxy to a state.
type Outcome struct {
	State State
	// BidPlaced is set when a bid row must be appended for State.Leader at State.Price.
	BidPlaced bool
	// Outbid holds the displaced leader when leadership changed hands.
	Outbid uuid.UUID
	// Self is set when the leader only updated their own ceiling.
	Self bool
}

// Apply resolves a new or updated proxy bid against the current state.
//
// On equal ceilings the existing leader keeps priority and a bid row is
// appended only when the visible price moves.
func Apply(s State, p Proxy) (Outcome, error) {
	if err := ValidAmount(p.MaxPrice); err != nil {
		return Outcome{}, err
	}
	if !s.Step.IsPositive() {
		return Outcome{}, ErrInvalidStep
	}

	if !s.HasLeader() {
		if p.MaxPrice.LessThan(s.StartPrice) {
			return Outcome{}, ErrBelowStartPrice
		}
		next := s
		next.Leader = p.BidderID
		next.LeaderMax = p.MaxPrice
		next.Price = s.StartPrice
		return Outcome{State: next, BidPlaced: true}, nil
	}

	if p.MaxPrice.LessThanOrEqual(s.Price) {
		return Outcome{}, ErrBidTooLow
	}

	next := s
	if p.BidderID == s.Leader {
		next.LeaderMax = p.MaxPrice
		return Outcome{State: next, Self: true}, nil
	}

	if p.MaxPrice.GreaterThan(s.LeaderMax) {
		next.Leader = p.BidderID
		next.LeaderMax = p.MaxPrice
		next.Price = decimal.Min(p.MaxPrice, s.LeaderMax.Add(s.Step))
		return Outcome{State: next, BidPlaced: true, Outbid: s.Leader}, nil
	}

	price := decimal.Max(s.Price, decimal.Min(p.MaxPrice.Add(s.Step), s.LeaderMax))
	if price.Equal(s.Price) {
		return Outcome{State: next}, nil
	}
	next.Price = price
	return Outcome{State: next, BidPlaced: true}, nil
}

// Replay rebuilds the auction state from scratch by applying the proxies in
// the order their ceilings were set, so that on equal ceilings the earlier
// one keeps the lead as it did live. Proxies that would be rejected at their
// turn are skipped.
func Replay(startPrice, step decimal.Decimal, proxies []Proxy) State {
	ordered := make([]Proxy, len(proxies))
	copy(ordered, proxies)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PlacedAt.Before(ordered[j].PlacedAt)
	})

	s := State{StartPrice: startPrice, Step: step}
	for _, p := range ordered {
		out, err := Apply(s, p)
		if err != nil {
			continue
		}
		s = out.State
	}
	return s
}
