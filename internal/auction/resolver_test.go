package auction

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

var (
	alice = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	bob   = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	carol = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
)

// leading returns a state where leader holds max at the given price.
func leading(leader uuid.UUID, max, price int64) State {
	return State{
		StartPrice: d(10),
		Step:       d(10),
		Price:      d(price),
		Leader:     leader,
		LeaderMax:  d(max),
	}
}

func TestApply_FirstBidOpensAtStartPrice(t *testing.T) {
	s := State{StartPrice: d(50), Step: d(5)}

	out, err := Apply(s, Proxy{BidderID: alice, MaxPrice: d(120)})

	check.NoError(t, err)
	check.True(t, out.BidPlaced)
	check.Equal(t, alice, out.State.Leader)
	check.Equal(t, "50", out.State.Price.String())
	check.Equal(t, "120", out.State.LeaderMax.String())
	check.Equal(t, uuid.Nil, out.Outbid)
}

func TestApply_FirstBidBelowStartPriceRejected(t *testing.T) {
	s := State{StartPrice: d(50), Step: d(5)}

	_, err := Apply(s, Proxy{BidderID: alice, MaxPrice: d(49)})

	check.True(t, errors.Is(err, ErrBelowStartPrice))
}

func TestApply_ChallengerBelowLeaderMaxRaisesLeader(t *testing.T) {
	// leader max=100 at 50, step 10; challenger max=80 -> leader wins at min(80+10, 100)
	s := leading(alice, 100, 50)

	out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: d(80)})

	check.NoError(t, err)
	check.True(t, out.BidPlaced)
	check.Equal(t, alice, out.State.Leader)
	check.Equal(t, "90", out.State.Price.String())
	check.Equal(t, "100", out.State.LeaderMax.String())
	check.Equal(t, uuid.Nil, out.Outbid)
}

func TestApply_ChallengerAboveLeaderMaxOvertakes(t *testing.T) {
	// leader max=100 at 50; challenger max=150 -> challenger at min(150, 100+10)
	s := leading(alice, 100, 50)

	out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: d(150)})

	check.NoError(t, err)
	check.True(t, out.BidPlaced)
	check.Equal(t, bob, out.State.Leader)
	check.Equal(t, "110", out.State.Price.String())
	check.Equal(t, "150", out.State.LeaderMax.String())
	check.Equal(t, alice, out.Outbid)
}

func TestApply_OvertakeCappedAtChallengerMax(t *testing.T) {
	s := leading(alice, 100, 50)

	out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: d(105)})

	check.NoError(t, err)
	check.Equal(t, bob, out.State.Leader)
	check.Equal(t, "105", out.State.Price.String())
}

func TestApply_RejectsAtOrBelowVisiblePrice(t *testing.T) {
	s := leading(alice, 100, 50)

	for _, max := range []int64{10, 49, 50} {
		out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: d(max)})
		check.True(t, errors.Is(err, ErrBidTooLow))
		check.False(t, out.State.HasLeader())
	}
}

func TestApply_RejectsNonPositiveMax(t *testing.T) {
	s := leading(alice, 100, 50)

	_, err := Apply(s, Proxy{BidderID: bob, MaxPrice: decimal.Zero})
	check.True(t, errors.Is(err, ErrInvalidAmount))

	_, err = Apply(s, Proxy{BidderID: bob, MaxPrice: d(-5)})
	check.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestApply_RejectsAmountsTheStoreCannotHold(t *testing.T) {
	s := leading(alice, 100, 100)

	for _, max := range []string{"100.004", "150.001", "1000000000000", "1e15"} {
		out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: decimal.RequireFromString(max)})
		check.True(t, errors.Is(err, ErrInvalidAmount))
		check.False(t, out.State.HasLeader())
	}

	// trailing zeros beyond two places are fine
	out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: decimal.RequireFromString("120.500")})
	check.NoError(t, err)
	check.Equal(t, bob, out.State.Leader)
}

func TestValidAmount(t *testing.T) {
	check.NoError(t, ValidAmount(decimal.RequireFromString("0.01")))
	check.NoError(t, ValidAmount(MaxAmount))
	check.True(t, errors.Is(ValidAmount(MaxAmount.Add(decimal.RequireFromString("0.01"))), ErrInvalidAmount))
	check.True(t, errors.Is(ValidAmount(decimal.RequireFromString("0.001")), ErrInvalidAmount))
	check.True(t, errors.Is(ValidAmount(decimal.Zero), ErrInvalidAmount))
}

func TestApply_RejectsZeroStep(t *testing.T) {
	s := leading(alice, 100, 50)
	s.Step = decimal.Zero

	_, err := Apply(s, Proxy{BidderID: bob, MaxPrice: d(60)})
	check.True(t, errors.Is(err, ErrInvalidStep))
}

func TestApply_TieKeepsEarliestLeader(t *testing.T) {
	s := leading(alice, 100, 50)

	out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: d(100)})

	check.NoError(t, err)
	check.Equal(t, alice, out.State.Leader)
	check.Equal(t, "100", out.State.Price.String())
	check.True(t, out.BidPlaced)
}

func TestApply_CeilingReachedRejectsEqualChallenge(t *testing.T) {
	// once the price reaches the leader's ceiling an equal challenge is too low
	s := leading(alice, 100, 95)

	out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: d(98)})

	check.NoError(t, err)
	check.Equal(t, alice, out.State.Leader)
	check.Equal(t, "100", out.State.Price.String())
	check.True(t, out.BidPlaced)

	again, err := Apply(out.State, Proxy{BidderID: carol, MaxPrice: d(100)})
	check.True(t, errors.Is(err, ErrBidTooLow))
	check.False(t, again.BidPlaced)
}

func TestApply_LeaderUpdatesOwnCeiling(t *testing.T) {
	s := leading(alice, 100, 50)

	out, err := Apply(s, Proxy{BidderID: alice, MaxPrice: d(300)})

	check.NoError(t, err)
	check.True(t, out.Self)
	check.False(t, out.BidPlaced)
	check.Equal(t, "50", out.State.Price.String())
	check.Equal(t, "300", out.State.LeaderMax.String())

	_, err = Apply(s, Proxy{BidderID: alice, MaxPrice: d(50)})
	check.True(t, errors.Is(err, ErrBidTooLow))
}

func TestApply_DecimalSteps(t *testing.T) {
	s := State{
		StartPrice: decimal.RequireFromString("9.99"),
		Step:       decimal.RequireFromString("0.25"),
		Price:      decimal.RequireFromString("12.50"),
		Leader:     alice,
		LeaderMax:  decimal.RequireFromString("13.10"),
	}

	out, err := Apply(s, Proxy{BidderID: bob, MaxPrice: decimal.RequireFromString("13.20")})

	check.NoError(t, err)
	check.Equal(t, bob, out.State.Leader)
	check.True(t, out.State.Price.Equal(decimal.RequireFromString("13.20")))
}

func TestReplay_PromotesNextProxyAfterRemoval(t *testing.T) {
	now := time.Now()
	// A (200) was leading B (180); A is removed: B remains alone -> start price
	remaining := []Proxy{
		{BidderID: bob, MaxPrice: d(180), PlacedAt: now},
	}

	s := Replay(d(10), d(10), remaining)

	check.Equal(t, bob, s.Leader)
	check.Equal(t, "10", s.Price.String())

	// with C (120) also remaining, B leads at min(120+10, 180)
	remaining = append(remaining, Proxy{BidderID: carol, MaxPrice: d(120), PlacedAt: now.Add(time.Second)})
	s = Replay(d(10), d(10), remaining)

	check.Equal(t, bob, s.Leader)
	check.Equal(t, "130", s.Price.String())
}

func TestReplay_OrderIndependentOfSliceOrder(t *testing.T) {
	now := time.Now()
	early := Proxy{BidderID: alice, MaxPrice: d(100), PlacedAt: now}
	late := Proxy{BidderID: bob, MaxPrice: d(100), PlacedAt: now.Add(time.Minute)}

	s1 := Replay(d(10), d(10), []Proxy{early, late})
	s2 := Replay(d(10), d(10), []Proxy{late, early})

	check.Equal(t, alice, s1.Leader)
	check.Equal(t, alice, s2.Leader)
	check.Equal(t, s1.Price.String(), s2.Price.String())
}

func TestReplay_TieGoesToWhoeverSetTheCeilingFirst(t *testing.T) {
	now := time.Now()
	// B set 150 first; A raised to 150 afterwards and lost the tie
	s := Replay(d(100), d(10), []Proxy{
		{BidderID: alice, MaxPrice: d(150), PlacedAt: now.Add(2 * time.Second)},
		{BidderID: bob, MaxPrice: d(150), PlacedAt: now.Add(time.Second)},
	})

	check.Equal(t, bob, s.Leader)
	check.Equal(t, "150", s.Price.String())
}

func TestReplay_Empty(t *testing.T) {
	s := Replay(d(10), d(10), nil)

	check.False(t, s.HasLeader())
}

// The visible price never decreases while proxies are applied one at a time.
func TestApply_PriceIsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bidders := []uuid.UUID{alice, bob, carol, uuid.New(), uuid.New()}

	for round := 0; round < 200; round++ {
		s := State{StartPrice: d(10), Step: d(5)}
		last := decimal.Zero
		for i := 0; i < 30; i++ {
			p := Proxy{
				BidderID: bidders[rng.Intn(len(bidders))],
				MaxPrice: d(int64(5 + rng.Intn(400))),
			}
			out, err := Apply(s, p)
			if err != nil {
				continue
			}
			check.True(t, out.State.Price.GreaterThanOrEqual(last))
			check.True(t, out.State.Price.LessThanOrEqual(out.State.LeaderMax))
			last = out.State.Price
			s = out.State
		}
	}
}
