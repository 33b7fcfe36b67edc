package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vpoletaev/giftwell/internal/config"
	authhandlers "github.com/vpoletaev/giftwell/internal/handlers/auth"
	contributionhandlers "github.com/vpoletaev/giftwell/internal/handlers/contributions"
	userhandlers "github.com/vpoletaev/giftwell/internal/handlers/users"
	wishhandlers "github.com/vpoletaev/giftwell/internal/handlers/wishes"

	"github.com/vpoletaev/giftwell/internal/pg"
	"github.com/vpoletaev/giftwell/internal/repo"
	"github.com/vpoletaev/giftwell/internal/service/authservice"
	"github.com/vpoletaev/giftwell/internal/service/contributionservice"
	"github.com/vpoletaev/giftwell/internal/service/wishservice"
	pkgauth "github.com/vpoletaev/giftwell/pkg/auth"
)

type Services struct {
	AuthService         authhandlers.Service
	UserService         userhandlers.Service
	WishService         wishhandlers.Service
	ContributionService contributionhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) (*Services, error) {
	minAmount, err := decimal.NewFromString(cfg.MinContribution)
	if err != nil {
		return nil, fmt.Errorf("invalid minimum contribution %q: %w", cfg.MinContribution, err)
	}
	if !minAmount.IsPositive() {
		return nil, fmt.Errorf("minimum contribution must be positive, got %s", minAmount)
	}

	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	wishService := wishservice.New(repo.WishRepo, cfg.LastWishesLimit, cfg.TopWishesLimit)
	contributionService := contributionservice.New(repo.WishRepo, repo.ContributionRepo, txManager, minAmount)

	return &Services{
		AuthService:         authService,
		UserService:         authService,
		WishService:         wishService,
		ContributionService: contributionService,
	}, nil
}
