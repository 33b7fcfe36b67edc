package contributionservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/funding"
	"github.com/vpoletaev/giftwell/internal/pg"
	"github.com/vpoletaev/giftwell/pkg/money"
)

type WishRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Wish, error)
	IncrementRaised(ctx context.Context, id int, delta decimal.Decimal) error
}

type ContributionRepo interface {
	Create(ctx context.Context, contribution *domain.Contribution) (*domain.Contribution, error)
	FindAll(ctx context.Context) ([]domain.Contribution, error)
	FindByID(ctx context.Context, id int) (*domain.Contribution, error)
	FindByWishIDs(ctx context.Context, wishIDs []int) ([]domain.Contribution, error)
}

type Service struct {
	wishRepo         WishRepo
	contributionRepo ContributionRepo
	txManager        pg.TXManager
	minAmount        decimal.Decimal
}

func New(wishRepo WishRepo, contributionRepo ContributionRepo, txManager pg.TXManager, minAmount decimal.Decimal) *Service {
	return &Service{
		wishRepo:         wishRepo,
		contributionRepo: contributionRepo,
		txManager:        txManager,
		minAmount:        minAmount,
	}
}

var (
	ErrWishNotFound           = errors.New("wish not found")
	ErrSelfFunding            = errors.New("you can't chip in on your own wish")
	ErrAlreadyFunded          = errors.New("you can't chip in on a gift that's already fully funded")
	ErrAmountExceedsRemaining = errors.New("contribution amount exceeds remaining price of the gift")
	ErrAmountBelowMinimum     = errors.New("contribution amount is below the minimum")
	ErrContributionNotFound   = errors.New("contribution not found")
	ErrAdmissionConflict      = errors.New("contribution lost a concurrent admission race")
)

// Admit validates a proposed contribution and persists it. The whole
// check-then-act sequence runs in one transaction with the wish row locked,
// so two concurrent contributors can never jointly overshoot the price.
// Checks run in a fixed order: wish existence, self-funding, already funded,
// remaining-amount bound. A lost serialization race is retried once.
func (s *Service) Admit(ctx context.Context, wishID, contributorID int, amount decimal.Decimal, hidden bool) (*domain.Contribution, error) {
	amount = money.Round2(amount)
	if amount.LessThan(s.minAmount) {
		return nil, fmt.Errorf("%w: minimum is %s", ErrAmountBelowMinimum, s.minAmount.StringFixed(2))
	}

	var created *domain.Contribution
	attempt := func() error {
		created = nil
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			wish, err := s.wishRepo.FindByIDForUpdate(ctx, wishID)
			if err != nil {
				return err
			}
			if wish == nil {
				return ErrWishNotFound
			}
			if wish.OwnerID == contributorID {
				return ErrSelfFunding
			}

			raised := funding.ComputeRaised(wish.Contributions, contributorID)
			if raised.GreaterThanOrEqual(wish.Price) {
				return ErrAlreadyFunded
			}
			if raised.Add(amount).GreaterThan(wish.Price) {
				remaining := wish.Price.Sub(raised)
				return fmt.Errorf("%w: %s remaining", ErrAmountExceedsRemaining, remaining.StringFixed(2))
			}

			contribution := &domain.Contribution{
				WishID: wish.ID,
				UserID: contributorID,
				Amount: amount,
				Hidden: hidden,
			}
			if _, err := s.contributionRepo.Create(ctx, contribution); err != nil {
				return err
			}
			if err := s.wishRepo.IncrementRaised(ctx, wish.ID, amount); err != nil {
				return err
			}
			created = contribution
			return nil
		})
	}

	err := attempt()
	if isSerializationFailure(err) {
		zap.L().Warn("admission lost a concurrency race, retrying",
			zap.Int("wish_id", wishID), zap.Int("user_id", contributorID))
		err = attempt()
		if isSerializationFailure(err) {
			return nil, ErrAdmissionConflict
		}
	}
	if err != nil {
		return nil, err
	}

	full, err := s.contributionRepo.FindByID(ctx, created.ID)
	if err != nil {
		zap.L().Error("can't reload contribution", zap.Error(err))
		return nil, err
	}
	if full == nil {
		return nil, ErrContributionNotFound
	}
	if err := s.attachWishContributions(ctx, full); err != nil {
		return nil, err
	}
	return full, nil
}

// List returns the contributions visible to viewerID, newest-first, each with
// the target wish and the wish's full contribution set attached for raised
// computation.
func (s *Service) List(ctx context.Context, viewerID int) ([]domain.Contribution, error) {
	contributions, err := s.contributionRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch contributions", zap.Error(err))
		return nil, err
	}

	visible, _ := funding.Aggregate(contributions, viewerID)
	if len(visible) == 0 {
		return visible, nil
	}

	seen := make(map[int]bool)
	var wishIDs []int
	for _, c := range visible {
		if !seen[c.WishID] {
			seen[c.WishID] = true
			wishIDs = append(wishIDs, c.WishID)
		}
	}

	siblings, err := s.contributionRepo.FindByWishIDs(ctx, wishIDs)
	if err != nil {
		return nil, err
	}
	byWish := make(map[int][]domain.Contribution)
	for _, c := range siblings {
		byWish[c.WishID] = append(byWish[c.WishID], c)
	}
	for i := range visible {
		if visible[i].Wish != nil {
			visible[i].Wish.Contributions = byWish[visible[i].WishID]
		}
	}
	return visible, nil
}

// Get returns the contribution when it exists and is visible to viewerID.
// An invisible contribution is indistinguishable from an absent one.
func (s *Service) Get(ctx context.Context, id, viewerID int) (*domain.Contribution, error) {
	contribution, err := s.contributionRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to fetch contribution", zap.Error(err))
		return nil, err
	}
	if contribution == nil || !funding.Visible(*contribution, viewerID) {
		return nil, ErrContributionNotFound
	}
	if err := s.attachWishContributions(ctx, contribution); err != nil {
		return nil, err
	}
	return contribution, nil
}

func (s *Service) attachWishContributions(ctx context.Context, contribution *domain.Contribution) error {
	if contribution.Wish == nil {
		return nil
	}
	siblings, err := s.contributionRepo.FindByWishIDs(ctx, []int{contribution.WishID})
	if err != nil {
		return err
	}
	contribution.Wish.Contributions = siblings
	return nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
