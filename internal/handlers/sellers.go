package handlers

import (
	"net/http"

	"github.com/itsDrac/bidhub/internal/auction"
	"github.com/itsDrac/bidhub/internal/model"
	"github.com/itsDrac/bidhub/internal/service"
)

type SellerHandler struct {
	svc service.SellerServicer
}

func NewSellerHandler(svc service.SellerServicer) (*SellerHandler, error) {
	return &SellerHandler{
		svc: svc,
	}, nil
}

// ListBidRequests godoc
//
//	@Summary		List bid requests of a product
//	@Tags			Seller
//	@Produce		json
//	@Param			productId	path		string	true	"Product ID"
//	@Success		200			{object}	map[string]any
//	@Failure		401			{object}	map[string]any
//	@Failure		403			{object}	map[string]any
//	@Router			/seller/products/{productId}/bid-requests [get]
func (h *SellerHandler) ListBidRequests(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, productParamKey)
	if !ok {
		return
	}
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	requests, err := h.svc.ListBidRequests(r.Context(), claims.UserID, productID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Bid requests fetched successfully", requests)
}

// HandleBidRequest godoc
//
//	@Summary		Approve or reject a bid request
//	@Tags			Seller
//	@Accept			json
//	@Produce		json
//	@Param			requestId	path		string							true	"Bid request ID"
//	@Param			body		body		model.HandleBidRequestRequest	true	"Decision"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	map[string]any
//	@Failure		401			{object}	map[string]any
//	@Failure		403			{object}	map[string]any
//	@Router			/seller/bid-requests/{requestId}/handle [post]
func (h *SellerHandler) HandleBidRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := uuidParam(w, r, requestParamKey)
	if !ok {
		return
	}
	var req model.HandleBidRequestRequest
	if !decodeBody(w, r, &req, false) {
		return
	}
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	view, err := h.svc.HandleBidRequest(r.Context(), claims.UserID, requestID, auction.RequestAction(req.Action))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Bid request "+view.Status, view)
}

// ListBidders godoc
//
//	@Summary		List bidders of a product
//	@Tags			Seller
//	@Produce		json
//	@Param			productId	path		string	true	"Product ID"
//	@Success		200			{object}	map[string]any
//	@Failure		401			{object}	map[string]any
//	@Failure		403			{object}	map[string]any
//	@Router			/seller/products/{productId}/bidders [get]
func (h *SellerHandler) ListBidders(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, productParamKey)
	if !ok {
		return
	}
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	bidders, err := h.svc.ListBidders(r.Context(), claims.UserID, productID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Bidders fetched successfully", bidders)
}

// KickBidder godoc
//
//	@Summary		Remove a bidder from an auction
//	@Description	Ban the bidder from the product and recalculate the leader when they were winning
//	@Tags			Seller
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string					true	"Product ID"
//	@Param			bidderId	path		string					true	"Bidder ID"
//	@Param			body		body		model.KickBidderRequest	false	"Reason"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	map[string]any
//	@Failure		401			{object}	map[string]any
//	@Failure		403			{object}	map[string]any
//	@Router			/seller/products/{productId}/kick-bidder/{bidderId} [post]
func (h *SellerHandler) KickBidder(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, productParamKey)
	if !ok {
		return
	}
	bidderID, ok := uuidParam(w, r, bidderParamKey)
	if !ok {
		return
	}
	var req model.KickBidderRequest
	if !decodeBody(w, r, &req, true) {
		return
	}
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.svc.KickBidderFromAuction(r.Context(), service.KickInput{
		SellerID:  claims.UserID,
		ProductID: productID,
		BidderID:  bidderID,
		Reason:    req.Reason,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Bidder removed from auction", res)
}
