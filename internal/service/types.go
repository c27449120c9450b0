package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceBidInput struct {
	ProductID uuid.UUID
	BidderID  uuid.UUID
	MaxPrice  decimal.Decimal
}

// BidResult is the auction state after a proxy bid was resolved.
type BidResult struct {
	ProductID       uuid.UUID       `json:"product_id"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	HighestBidderID uuid.UUID       `json:"highest_bidder_id"`
	IsLeader        bool            `json:"is_leader"`
	MaxPrice        decimal.Decimal `json:"max_price"`
	BidPlaced       bool            `json:"bid_placed"`
	EndTime         time.Time       `json:"end_time"`
	Extended        bool            `json:"extended"`
}

type BuyNowResult struct {
	ProductID  uuid.UUID       `json:"product_id"`
	OrderID    uuid.UUID       `json:"order_id"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Status     string          `json:"status"`
}

type AuctionView struct {
	ID                 uuid.UUID        `json:"id"`
	Title              string           `json:"title"`
	Description        *string          `json:"description,omitempty"`
	Category           string           `json:"category"`
	SellerID           uuid.UUID        `json:"seller_id"`
	StartPrice         decimal.Decimal  `json:"start_price"`
	BidStep            decimal.Decimal  `json:"bid_step"`
	CurrentPrice       *decimal.Decimal `json:"current_price"`
	BuyNowPrice        *decimal.Decimal `json:"buy_now_price,omitempty"`
	AuctionType        string           `json:"auction_type"`
	Status             string           `json:"status"`
	RequireBidApproval bool             `json:"require_bid_approval"`
	AutoExtend         bool             `json:"auto_extend"`
	EndTime            time.Time        `json:"end_time"`
	HighestBidder      string           `json:"highest_bidder,omitempty"`
}

type BidView struct {
	ID      uuid.UUID       `json:"id"`
	Bidder  string          `json:"bidder"`
	Amount  decimal.Decimal `json:"amount"`
	BidTime time.Time       `json:"bid_time"`
}

type BidRequestView struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"product_id"`
	BidderID    uuid.UUID  `json:"bidder_id"`
	Username    string     `json:"username,omitempty"`
	RatingPlus  int32      `json:"rating_plus"`
	RatingMinus int32      `json:"rating_minus"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}

type BidderView struct {
	ID          uuid.UUID       `json:"id"`
	Username    string          `json:"username"`
	RatingPlus  int32           `json:"rating_plus"`
	RatingMinus int32           `json:"rating_minus"`
	HighestBid  decimal.Decimal `json:"highest_bid"`
	BidCount    int64           `json:"bid_count"`
	LastBidAt   *time.Time      `json:"last_bid_at,omitempty"`
	Banned      bool            `json:"banned"`
	IsLeader    bool            `json:"is_leader"`
}

type KickInput struct {
	SellerID  uuid.UUID
	ProductID uuid.UUID
	BidderID  uuid.UUID
	Reason    string
}

type KickResult struct {
	ProductID       uuid.UUID        `json:"product_id"`
	BidderID        uuid.UUID        `json:"bidder_id"`
	WasHighest      bool             `json:"was_highest"`
	CurrentPrice    *decimal.Decimal `json:"current_price"`
	HighestBidderID *uuid.UUID       `json:"highest_bidder_id"`
}
