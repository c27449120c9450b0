package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/itsDrac/bidhub/internal/handlers"
	auth "github.com/itsDrac/bidhub/internal/middleware"
	"github.com/itsDrac/bidhub/pkg/config"
)

func (s *Server) routes() *chi.Mux {
	mux := chi.NewMux()

	bids := s.Dependencies.BidHandler
	sellers := s.Dependencies.SellerHandler
	requireAuth := auth.AuthMiddleware(s.Dependencies.Services.AuthService)

	// global middlewares
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(s.LoggerMiddleware())
	mux.Use(middleware.Recoverer)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/products/{productId}", func(pr chi.Router) {
			pr.Get("/", bids.GetAuction)
			pr.Get("/bids", bids.ListBids)
		})

		r.Route("/users", func(ur chi.Router) {
			ur.Use(requireAuth)
			ur.Use(auth.RequireRole(config.RoleBidder, config.RoleSeller))
			ur.Post("/bid", bids.PlaceBid)
			ur.Post("/buy-now", bids.BuyNow)
		})

		r.Route("/seller", func(sr chi.Router) {
			sr.Use(requireAuth)
			sr.Use(auth.RequireRole(config.RoleSeller))
			sr.Post("/bid-requests/{requestId}/handle", sellers.HandleBidRequest)
			sr.Get("/products/{productId}/bid-requests", sellers.ListBidRequests)
			sr.Get("/products/{productId}/bidders", sellers.ListBidders)
			sr.Post("/products/{productId}/kick-bidder/{bidderId}", sellers.KickBidder)
		})
	})

	return mux
}
