package wishservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/pkg/money"
)

type Repo interface {
	Create(ctx context.Context, wish *domain.Wish) (*domain.Wish, error)
	FindByID(ctx context.Context, id int) (*domain.Wish, error)
	FindLast(ctx context.Context, limit int) ([]domain.Wish, error)
	FindTop(ctx context.Context, limit int) ([]domain.Wish, error)
	Update(ctx context.Context, id int, upd domain.WishUpdate) error
	IncrementCopied(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo      Repo
	lastLimit int
	topLimit  int
}

func New(repo Repo, lastLimit, topLimit int) *Service {
	return &Service{
		repo:      repo,
		lastLimit: lastLimit,
		topLimit:  topLimit,
	}
}

var (
	ErrWishNotFound       = errors.New("wish not found")
	ErrNotOwner           = errors.New("you can only modify or delete your own wishes")
	ErrChangeAfterFunding = errors.New("you can't change the wish if there are already users willing to chip in")
	ErrInvalidPrice       = errors.New("wish price must be positive")
)

func (s *Service) Create(ctx context.Context, ownerID int, wish *domain.Wish) (*domain.Wish, error) {
	wish.Price = money.Round2(wish.Price)
	if !wish.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	wish.OwnerID = ownerID

	created, err := s.repo.Create(ctx, wish)
	if err != nil {
		zap.L().Error("can't create wish", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx, created.ID)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Wish, error) {
	wish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get wish", zap.Error(err))
		return nil, err
	}
	if wish == nil {
		return nil, ErrWishNotFound
	}
	return wish, nil
}

func (s *Service) Last(ctx context.Context) ([]domain.Wish, error) {
	wishes, err := s.repo.FindLast(ctx, s.lastLimit)
	if err != nil {
		zap.L().Error("failed to get last wishes", zap.Error(err))
		return nil, err
	}
	return wishes, nil
}

func (s *Service) Top(ctx context.Context) ([]domain.Wish, error) {
	wishes, err := s.repo.FindTop(ctx, s.topLimit)
	if err != nil {
		zap.L().Error("failed to get top wishes", zap.Error(err))
		return nil, err
	}
	return wishes, nil
}

// GuardMutation reports whether the wish may still be changed or deleted.
// The answer comes from the contribution set, not the cached raised column:
// any contribution at all freezes the wish, hidden ones included.
func (s *Service) GuardMutation(ctx context.Context, wishID int) error {
	wish, err := s.Get(ctx, wishID)
	if err != nil {
		return err
	}
	return guardMutation(wish)
}

func guardMutation(wish *domain.Wish) error {
	raised := decimal.Zero
	for _, c := range wish.Contributions {
		raised = raised.Add(c.Amount)
	}
	if raised.IsPositive() {
		return ErrChangeAfterFunding
	}
	return nil
}

func (s *Service) Update(ctx context.Context, id, userID int, upd domain.WishUpdate) (*domain.Wish, error) {
	wish, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if wish.OwnerID != userID {
		return nil, ErrNotOwner
	}
	if err := guardMutation(wish); err != nil {
		return nil, err
	}
	if upd.Price != nil {
		rounded := money.Round2(*upd.Price)
		if !rounded.IsPositive() {
			return nil, ErrInvalidPrice
		}
		upd.Price = &rounded
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		zap.L().Error("can't update wish", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes an unfunded wish and returns its last loaded state for the
// response view.
func (s *Service) Delete(ctx context.Context, id, userID int) (*domain.Wish, error) {
	wish, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if wish.OwnerID != userID {
		return nil, ErrNotOwner
	}
	if err := guardMutation(wish); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete wish", zap.Error(err))
		return nil, err
	}
	return wish, nil
}

// Copy clones someone else's wish into the copier's own list and bumps the
// source's copied counter. The clone starts with no contributions.
func (s *Service) Copy(ctx context.Context, id, userID int) (*domain.Wish, error) {
	wish, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementCopied(ctx, id); err != nil {
		zap.L().Error("can't increment copied counter", zap.Error(err))
		return nil, err
	}

	clone := &domain.Wish{
		OwnerID:     userID,
		Name:        wish.Name,
		Link:        wish.Link,
		Image:       wish.Image,
		Description: wish.Description,
		Price:       wish.Price,
	}
	created, err := s.repo.Create(ctx, clone)
	if err != nil {
		zap.L().Error("can't create wish copy", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx, created.ID)
}
