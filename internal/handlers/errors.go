package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/itsDrac/bidhub/internal/auction"
	"github.com/itsDrac/bidhub/internal/service"
)

var (
	// common error code
	ErrInternalServer = errors.New("INTERNAL_SERVER_ERROR")
	ErrInvalidRequest = errors.New("VALIDATION_FAILED")
	ErrInvalidJson    = errors.New("INVALID_JSON_FORMAT")
	ErrMissingParam   = errors.New("MISSING_PARAM")
	ErrInvalidParam   = errors.New("INVALID_PARAM")

	// auth error code
	ErrAuthFailed   = errors.New("AUTH_FAILED")
	ErrMissingToken = errors.New("MISSING_TOKEN")
	ErrToken        = errors.New("TOKEN_ERROR")
	ErrRoleDenied   = errors.New("ROLE_NOT_ALLOWED")

	// user error code
	ErrUserNotFound = errors.New("USER_NOT_FOUND")

	// bid error code
	ErrBidLow            = errors.New("BID_TOO_LOW")
	ErrBelowStart        = errors.New("BELOW_START_PRICE")
	ErrSelfBidding       = errors.New("SELF_BIDDING_NOT_ALLOWED")
	ErrBidderBanned      = errors.New("BIDDER_BANNED")
	ErrApprovalPending   = errors.New("BID_REQUEST_PENDING")
	ErrApprovalRejected  = errors.New("BID_REQUEST_REJECTED")
	ErrAuctionNotActive  = errors.New("AUCTION_NOT_ACTIVE")
	ErrAuctionEnded      = errors.New("AUCTION_ENDED")
	ErrNotBuyNow         = errors.New("BUY_NOW_NOT_AVAILABLE")
	ErrInvalidBidAmount  = errors.New("INVALID_BID_AMOUNT")
	ErrJobAlreadyRunning = errors.New("JOB_ALREADY_RUNNING")

	// seller error code
	ErrForbidden       = errors.New("FORBIDDEN")
	ErrRequestNotFound = errors.New("BID_REQUEST_NOT_FOUND")
	ErrRequestHandled  = errors.New("BID_REQUEST_ALREADY_HANDLED")
	ErrUnknownAction   = errors.New("UNKNOWN_ACTION")
	ErrBidderNotFound  = errors.New("BIDDER_NOT_FOUND")
	ErrKickSelf        = errors.New("CANNOT_KICK_SELF")

	//products error code
	ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
)

type errorMapping struct {
	status int
	code   error
}

var serviceErrors = map[error]errorMapping{
	service.ErrInvalidInput:          {http.StatusBadRequest, ErrInvalidRequest},
	service.ErrUserNotFound:          {http.StatusNotFound, ErrUserNotFound},
	service.ErrProductNotFound:       {http.StatusNotFound, ErrProductNotFound},
	service.ErrAuctionNotActive:      {http.StatusBadRequest, ErrAuctionNotActive},
	service.ErrAuctionEnded:          {http.StatusBadRequest, ErrAuctionEnded},
	service.ErrNotBuyNow:             {http.StatusBadRequest, ErrNotBuyNow},
	service.ErrSelfBidding:           {http.StatusBadRequest, ErrSelfBidding},
	service.ErrBidderBanned:          {http.StatusForbidden, ErrBidderBanned},
	service.ErrBidRequestPending:     {http.StatusForbidden, ErrApprovalPending},
	service.ErrBidRequestRejected:    {http.StatusForbidden, ErrApprovalRejected},
	service.ErrForbidden:             {http.StatusForbidden, ErrForbidden},
	service.ErrBidRequestNotFound:    {http.StatusNotFound, ErrRequestNotFound},
	service.ErrRequestAlreadyHandled: {http.StatusBadRequest, ErrRequestHandled},
	service.ErrBidderNotFound:        {http.StatusNotFound, ErrBidderNotFound},
	service.ErrKickSelf:              {http.StatusBadRequest, ErrKickSelf},
	service.ErrJobRunning:            {http.StatusConflict, ErrJobAlreadyRunning},
	auction.ErrBidTooLow:             {http.StatusBadRequest, ErrBidLow},
	auction.ErrBelowStartPrice:       {http.StatusBadRequest, ErrBelowStart},
	auction.ErrInvalidAmount:         {http.StatusBadRequest, ErrInvalidBidAmount},
	auction.ErrUnknownAction:         {http.StatusBadRequest, ErrUnknownAction},
}

// respondServiceError maps a service error to its status and API code.
// Unknown errors are logged and answered with a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for target, m := range serviceErrors {
		if errors.Is(err, target) {
			RespondErrorJSON(w, r, m.status, m.code.Error(), target.Error(), nil)
			return
		}
	}
	slog.Error("[API] request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	RespondErrorJSON(w, r, http.StatusInternalServerError, ErrInternalServer.Error(), "Something went wrong", nil)
}
