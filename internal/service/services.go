package service

import (
	"github.com/itsDrac/bidhub/internal/db"
	"github.com/itsDrac/bidhub/internal/notify"
	"github.com/itsDrac/bidhub/pkg/jwt"
)

type Services struct {
	AuthService    AuthServicer
	BiddingService BiddingServicer
	SellerService  SellerServicer
	CronService    CronServicer
}

func NewServices(store db.Store, n notify.Notifier, jm jwt.JWTManager) (*Services, error) {
	authService, err := NewAuthService(jm)
	if err != nil {
		return nil, err
	}

	biddingService, err := NewBiddingService(store, n)
	if err != nil {
		return nil, err
	}
	sellerService, err := NewSellerService(store, n)
	if err != nil {
		return nil, err
	}
	cronService, err := NewCronService(store, n)
	if err != nil {
		return nil, err
	}
	return &Services{
		AuthService:    authService,
		BiddingService: biddingService,
		SellerService:  sellerService,
		CronService:    cronService,
	}, nil
}
