package service

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("user not found")
	ErrIDMissing    = errors.New("user id is missing")

	// products
	ErrProductNotFound  = errors.New("product not found")
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrAuctionEnded     = errors.New("auction has already ended")
	ErrNotBuyNow        = errors.New("product cannot be bought immediately")

	// bidding
	ErrSelfBidding        = errors.New("seller cannot bid on their own product")
	ErrBidderBanned       = errors.New("bidder has been removed from this auction")
	ErrBidRequestPending  = errors.New("bid request is waiting for seller approval")
	ErrBidRequestRejected = errors.New("bid request was rejected by the seller")

	// seller
	ErrForbidden             = errors.New("product does not belong to this seller")
	ErrBidRequestNotFound    = errors.New("bid request not found")
	ErrRequestAlreadyHandled = errors.New("bid request has already been handled")
	ErrBidderNotFound        = errors.New("bidder not found")
	ErrKickSelf              = errors.New("seller cannot remove themselves")

	// jobs
	ErrJobRunning = errors.New("job is already running")
)
