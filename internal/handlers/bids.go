package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/internal/model"
	"github.com/itsDrac/bidhub/internal/service"
)

//go:generate mockgen -destination=mock_services_test.go -package=handlers github.com/itsDrac/bidhub/internal/service BiddingServicer,SellerServicer

const (
	productParamKey string = "productId"
	requestParamKey string = "requestId"
	bidderParamKey  string = "bidderId"
)

type BidHandler struct {
	svc service.BiddingServicer
}

func NewBidHandler(svc service.BiddingServicer) (*BidHandler, error) {
	return &BidHandler{
		svc: svc,
	}, nil
}

// PlaceBid godoc
//
//	@Summary		Place a proxy bid
//	@Description	Record the caller's maximum price for a product and resolve it against the current leader
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			bid	body		model.PlaceBidRequest	true	"Bid details"
//	@Success		200	{object}	map[string]any
//	@Failure		400	{object}	map[string]any
//	@Failure		401	{object}	map[string]any
//	@Failure		403	{object}	map[string]any
//	@Router			/users/bid [post]
func (h *BidHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceBidRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.svc.PlaceAutoBid(r.Context(), service.PlaceBidInput{
		ProductID: uuid.MustParse(req.ProductID),
		BidderID:  claims.UserID,
		MaxPrice:  req.MaxPrice,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Bid placed successfully", res)
}

// BuyNow godoc
//
//	@Summary		Buy a product now
//	@Description	Close a buy-now auction immediately at its buy-now price
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			body	body		model.BuyNowRequest	true	"Product"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	map[string]any
//	@Failure		401		{object}	map[string]any
//	@Failure		403		{object}	map[string]any
//	@Router			/users/buy-now [post]
func (h *BidHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	var req model.BuyNowRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.svc.BuyNow(r.Context(), uuid.MustParse(req.ProductID), claims.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Product bought successfully", res)
}

// GetAuction godoc
//
//	@Summary		Get auction state
//	@Tags			Products
//	@Produce		json
//	@Param			productId	path		string	true	"Product ID"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	map[string]any
//	@Failure		404			{object}	map[string]any
//	@Router			/products/{productId} [get]
func (h *BidHandler) GetAuction(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, productParamKey)
	if !ok {
		return
	}

	view, err := h.svc.GetAuction(r.Context(), productID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Product fetched successfully", view)
}

// ListBids godoc
//
//	@Summary		Get bid history
//	@Description	Visible bids of a product, newest first, with masked bidder names
//	@Tags			Products
//	@Produce		json
//	@Param			productId	path		string	true	"Product ID"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	map[string]any
//	@Failure		404			{object}	map[string]any
//	@Router			/products/{productId}/bids [get]
func (h *BidHandler) ListBids(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, productParamKey)
	if !ok {
		return
	}

	bids, err := h.svc.ListBids(r.Context(), productID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Bids fetched successfully", bids)
}
