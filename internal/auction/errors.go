package auction

import "errors"

var (
	ErrInvalidAmount   = errors.New("max price must be a positive amount with at most two decimal places")
	ErrInvalidStep     = errors.New("bid step must be greater than zero")
	ErrBelowStartPrice = errors.New("max price is below the start price")
	ErrBidTooLow       = errors.New("max price must be greater than the current price")
	ErrUnknownAction   = errors.New("unknown bid request action")
	ErrRequestDecided  = errors.New("bid request has already been decided")
)
