// Package notify carries auction side effects (mails to sellers and bidders)
// out of the request and job transactions. Notifications are published after
// commit and delivered by a background worker; a failed delivery never touches
// auction state.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindAuctionExpired    Kind = "auction_expired_no_bids"
	KindAuctionSold       Kind = "auction_sold"
	KindAuctionWon        Kind = "auction_won"
	KindOutbid            Kind = "outbid"
	KindBidRequestDecided Kind = "bid_request_decided"
	KindKicked            Kind = "kicked"
)

type Notification struct {
	ID           uuid.UUID       `json:"id"`
	Kind         Kind            `json:"kind"`
	RecipientID  uuid.UUID       `json:"recipient_id"`
	Email        string          `json:"email,omitempty"`
	Username     string          `json:"username,omitempty"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductTitle string          `json:"product_title"`
	Amount       decimal.Decimal `json:"amount"`
	Detail       string          `json:"detail,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// New stamps a notification with an id and creation time.
func New(kind Kind, recipient uuid.UUID, productID uuid.UUID, title string) Notification {
	return Notification{
		ID:           uuid.New(),
		Kind:         kind,
		RecipientID:  recipient,
		ProductID:    productID,
		ProductTitle: title,
		CreatedAt:    time.Now().UTC(),
	}
}

func (n Notification) Subject() string {
	switch n.Kind {
	case KindAuctionExpired:
		return fmt.Sprintf("Your auction %q ended without bids", n.ProductTitle)
	case KindAuctionSold:
		return fmt.Sprintf("Your auction %q sold for %s", n.ProductTitle, n.Amount.StringFixed(2))
	case KindAuctionWon:
		return fmt.Sprintf("You won %q for %s", n.ProductTitle, n.Amount.StringFixed(2))
	case KindOutbid:
		return fmt.Sprintf("You have been outbid on %q", n.ProductTitle)
	case KindBidRequestDecided:
		return fmt.Sprintf("Your bid request for %q was %s", n.ProductTitle, n.Detail)
	case KindKicked:
		return fmt.Sprintf("You were removed from the auction %q", n.ProductTitle)
	}
	return fmt.Sprintf("Update on %q", n.ProductTitle)
}
