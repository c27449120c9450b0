package model

import "github.com/shopspring/decimal"

type PlaceBidRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	MaxPrice  decimal.Decimal `json:"maxPrice" validate:"required,gt=0,money"`
}

type BuyNowRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

type HandleBidRequestRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type KickBidderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}
