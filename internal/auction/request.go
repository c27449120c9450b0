package auction

import "github.com/shopspring/decimal"

// RequestStatus is the state of a bidder's permission to bid on one product.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type RequestAction string

const (
	ActionApprove RequestAction = "approve"
	ActionReject  RequestAction = "reject"
)

func ParseAction(s string) (RequestAction, error) {
	switch RequestAction(s) {
	case ActionApprove, ActionReject:
		return RequestAction(s), nil
	}
	return "", ErrUnknownAction
}

// Transition applies a seller decision. Only pending requests move.
func (s RequestStatus) Transition(a RequestAction) (RequestStatus, error) {
	if s != RequestPending {
		return s, ErrRequestDecided
	}
	switch a {
	case ActionApprove:
		return RequestApproved, nil
	case ActionReject:
		return RequestRejected, nil
	}
	return s, ErrUnknownAction
}

func (s RequestStatus) AllowsBidding() bool {
	return s == RequestApproved
}

// ApprovalPolicy decides whether a bidder must be approved by the seller
// before their bids count.
type ApprovalPolicy struct {
	MinPositiveRatio    decimal.Decimal
	AllowUnratedBidders bool
}

// Requires reports whether approval is needed for a bidder with the given
// rating counts on a product with the given gate flag.
func (p ApprovalPolicy) Requires(productGated bool, ratingPlus, ratingMinus int) bool {
	if productGated {
		return true
	}
	total := ratingPlus + ratingMinus
	if total == 0 {
		return !p.AllowUnratedBidders
	}
	ratio := decimal.NewFromInt(int64(ratingPlus)).Div(decimal.NewFromInt(int64(total)))
	return ratio.LessThan(p.MinPositiveRatio)
}
