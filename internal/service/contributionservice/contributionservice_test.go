package contributionservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWishRepo, *MockContributionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	wishRepo := NewMockWishRepo(ctrl)
	contributionRepo := NewMockContributionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(wishRepo, contributionRepo, txManager, dec("0.01"))
	defer ctrl.Finish()
	return service, wishRepo, contributionRepo, txManager
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestAdmit(t *testing.T) {
	service, wishRepo, contributionRepo, txManager := NewMock(t)
	tests := []struct {
		name          string
		wishID        int
		contributorID int
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Admit first contribution",
			wishID:        1,
			contributorID: 3,
			amount:        dec("60.00"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
					ID:      1,
					OwnerID: 2,
					Price:   dec("100.00"),
				}, nil)
				contributionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Contribution) (*domain.Contribution, error) {
						c.ID = 10
						return c, nil
					})
				wishRepo.EXPECT().IncrementRaised(gomock.Any(), 1, gomock.Any()).Return(nil)
				contributionRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Contribution{
					ID:     10,
					WishID: 1,
					UserID: 3,
					Amount: dec("60.00"),
					Wish:   &domain.Wish{ID: 1, OwnerID: 2, Price: dec("100.00")},
				}, nil)
				contributionRepo.EXPECT().FindByWishIDs(gomock.Any(), []int{1}).Return([]domain.Contribution{
					{ID: 10, WishID: 1, UserID: 3, Amount: dec("60.00")},
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Exact fill of the remaining amount",
			wishID:        1,
			contributorID: 3,
			amount:        dec("40.00"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
					ID:      1,
					OwnerID: 2,
					Price:   dec("100.00"),
					Contributions: []domain.Contribution{
						{ID: 10, WishID: 1, UserID: 4, Amount: dec("60.00")},
					},
				}, nil)
				contributionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Contribution) (*domain.Contribution, error) {
						c.ID = 11
						return c, nil
					})
				wishRepo.EXPECT().IncrementRaised(gomock.Any(), 1, gomock.Any()).Return(nil)
				contributionRepo.EXPECT().FindByID(gomock.Any(), 11).Return(&domain.Contribution{
					ID:     11,
					WishID: 1,
					UserID: 3,
					Amount: dec("40.00"),
					Wish:   &domain.Wish{ID: 1, OwnerID: 2, Price: dec("100.00")},
				}, nil)
				contributionRepo.EXPECT().FindByWishIDs(gomock.Any(), []int{1}).Return(nil, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Wish does not exist",
			wishID:        99,
			contributorID: 3,
			amount:        dec("10.00"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrWishNotFound,
		},
		{
			name:          "Owner can't chip in on own wish",
			wishID:        1,
			contributorID: 2,
			amount:        dec("10.00"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
					ID:      1,
					OwnerID: 2,
					Price:   dec("100.00"),
				}, nil)
			},
			expectedError: ErrSelfFunding,
		},
		{
			name:          "Self-funding check wins over already-funded on a full wish",
			wishID:        1,
			contributorID: 2,
			amount:        dec("1.00"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
					ID:      1,
					OwnerID: 2,
					Price:   dec("50.00"),
					Contributions: []domain.Contribution{
						{ID: 10, WishID: 1, UserID: 4, Amount: dec("50.00")},
					},
				}, nil)
			},
			expectedError: ErrSelfFunding,
		},
		{
			name:          "Fully funded wish rejects any further pledge",
			wishID:        1,
			contributorID: 3,
			amount:        dec("0.01"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
					ID:      1,
					OwnerID: 2,
					Price:   dec("50.00"),
					Contributions: []domain.Contribution{
						{ID: 10, WishID: 1, UserID: 4, Amount: dec("50.00")},
					},
				}, nil)
			},
			expectedError: ErrAlreadyFunded,
		},
		{
			name:          "Pledge overshooting the remaining amount",
			wishID:        1,
			contributorID: 3,
			amount:        dec("50.00"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
					ID:      1,
					OwnerID: 2,
					Price:   dec("100.00"),
					Contributions: []domain.Contribution{
						{ID: 10, WishID: 1, UserID: 3, Amount: dec("60.00")},
					},
				}, nil)
			},
			expectedError: ErrAmountExceedsRemaining,
		},
		{
			name:          "Amount below the configured minimum",
			wishID:        1,
			contributorID: 3,
			amount:        dec("0.001"),
			prepareMock:   nil,
			expectedError: ErrAmountBelowMinimum,
		},
		{
			name:          "Database error while loading the wish",
			wishID:        1,
			contributorID: 3,
			amount:        dec("10.00"),
			prepareMock: func() {
				passThrough(txManager)
				wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			contribution, err := service.Admit(context.Background(), tt.wishID, tt.contributorID, tt.amount, false)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, contribution)
				if errors.Is(tt.expectedError, err) || errors.Is(err, tt.expectedError) {
					return
				}
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, contribution)
				assert.NotNil(t, contribution.Wish)
			}
		})
	}
}

func TestAdmitRemainingAmountInError(t *testing.T) {
	service, wishRepo, _, txManager := NewMock(t)
	passThrough(txManager)
	wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
		ID:      1,
		OwnerID: 2,
		Price:   dec("100.00"),
		Contributions: []domain.Contribution{
			{ID: 10, WishID: 1, UserID: 3, Amount: dec("60.00")},
		},
	}, nil)

	_, err := service.Admit(context.Background(), 1, 4, dec("50.00"), false)
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)
	assert.Contains(t, err.Error(), "40.00")
}

func TestAdmitRetriesOnSerializationFailure(t *testing.T) {
	service, wishRepo, contributionRepo, txManager := NewMock(t)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "40001"})
	passThrough(txManager)
	wishRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.Wish{
		ID:      1,
		OwnerID: 2,
		Price:   dec("100.00"),
	}, nil)
	contributionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.Contribution) (*domain.Contribution, error) {
			c.ID = 10
			return c, nil
		})
	wishRepo.EXPECT().IncrementRaised(gomock.Any(), 1, gomock.Any()).Return(nil)
	contributionRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Contribution{
		ID:     10,
		WishID: 1,
		UserID: 3,
		Amount: dec("10.00"),
		Wish:   &domain.Wish{ID: 1, OwnerID: 2, Price: dec("100.00")},
	}, nil)
	contributionRepo.EXPECT().FindByWishIDs(gomock.Any(), []int{1}).Return(nil, nil)

	contribution, err := service.Admit(context.Background(), 1, 3, dec("10.00"), false)
	assert.NoError(t, err)
	assert.Equal(t, 10, contribution.ID)
}

func TestAdmitConflictAfterRetry(t *testing.T) {
	service, _, _, txManager := NewMock(t)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "40001"}).Times(2)

	contribution, err := service.Admit(context.Background(), 1, 3, dec("10.00"), false)
	assert.ErrorIs(t, err, ErrAdmissionConflict)
	assert.Nil(t, contribution)
}

func TestList(t *testing.T) {
	service, _, contributionRepo, _ := NewMock(t)
	all := []domain.Contribution{
		{ID: 3, WishID: 1, UserID: 4, Amount: dec("20.00"), Hidden: true, Wish: &domain.Wish{ID: 1}},
		{ID: 2, WishID: 2, UserID: 5, Amount: dec("15.00"), Wish: &domain.Wish{ID: 2}},
		{ID: 1, WishID: 1, UserID: 3, Amount: dec("10.00"), Hidden: true, Wish: &domain.Wish{ID: 1}},
	}
	siblings := []domain.Contribution{
		{ID: 3, WishID: 1, UserID: 4, Amount: dec("20.00"), Hidden: true},
		{ID: 2, WishID: 2, UserID: 5, Amount: dec("15.00")},
		{ID: 1, WishID: 1, UserID: 3, Amount: dec("10.00"), Hidden: true},
	}

	contributionRepo.EXPECT().FindAll(gomock.Any()).Return(all, nil)
	contributionRepo.EXPECT().FindByWishIDs(gomock.Any(), []int{2, 1}).Return(siblings, nil)

	visible, err := service.List(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, visible, 2)
	assert.Equal(t, 2, visible[0].ID)
	assert.Equal(t, 1, visible[1].ID)
	assert.Len(t, visible[1].Wish.Contributions, 2)
}

func TestListError(t *testing.T) {
	service, _, contributionRepo, _ := NewMock(t)
	contributionRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))

	visible, err := service.List(context.Background(), 3)
	assert.Error(t, err)
	assert.Nil(t, visible)
}

func TestGet(t *testing.T) {
	service, _, contributionRepo, _ := NewMock(t)
	tests := []struct {
		name          string
		id            int
		viewerID      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Visible contribution",
			id:       1,
			viewerID: 5,
			prepareMock: func() {
				contributionRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Contribution{
					ID:     1,
					WishID: 2,
					UserID: 3,
					Amount: dec("10.00"),
					Wish:   &domain.Wish{ID: 2},
				}, nil)
				contributionRepo.EXPECT().FindByWishIDs(gomock.Any(), []int{2}).Return(nil, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Hidden contribution is invisible to other viewers",
			id:       1,
			viewerID: 5,
			prepareMock: func() {
				contributionRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Contribution{
					ID:     1,
					WishID: 2,
					UserID: 3,
					Amount: dec("10.00"),
					Hidden: true,
				}, nil)
			},
			expectedError: ErrContributionNotFound,
		},
		{
			name:     "Hidden contribution stays visible to its author",
			id:       1,
			viewerID: 3,
			prepareMock: func() {
				contributionRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Contribution{
					ID:     1,
					WishID: 2,
					UserID: 3,
					Amount: dec("10.00"),
					Hidden: true,
					Wish:   &domain.Wish{ID: 2},
				}, nil)
				contributionRepo.EXPECT().FindByWishIDs(gomock.Any(), []int{2}).Return(nil, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Missing contribution",
			id:       99,
			viewerID: 3,
			prepareMock: func() {
				contributionRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrContributionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			contribution, err := service.Get(context.Background(), tt.id, tt.viewerID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, contribution)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, contribution.ID)
			}
		})
	}
}

// memStore models the wish row lock with a plain mutex so concurrent
// admissions exercise the same serialization the row lock gives in Postgres.
type memStore struct {
	mu     sync.Mutex
	wish   *domain.Wish
	nextID int
}

func (s *memStore) Begin(ctx context.Context, fn func(context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

func (s *memStore) cloneWishLocked() *domain.Wish {
	clone := *s.wish
	clone.Contributions = append([]domain.Contribution(nil), s.wish.Contributions...)
	return &clone
}

func (s *memStore) FindByIDForUpdate(ctx context.Context, id int) (*domain.Wish, error) {
	if id != s.wish.ID {
		return nil, nil
	}
	return s.cloneWishLocked(), nil
}

func (s *memStore) IncrementRaised(ctx context.Context, id int, delta decimal.Decimal) error {
	s.wish.Raised = s.wish.Raised.Add(delta)
	return nil
}

func (s *memStore) Create(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	s.nextID++
	c.ID = s.nextID
	s.wish.Contributions = append(s.wish.Contributions, *c)
	return c, nil
}

func (s *memStore) FindAll(ctx context.Context) ([]domain.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Contribution(nil), s.wish.Contributions...), nil
}

func (s *memStore) FindByID(ctx context.Context, id int) (*domain.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.wish.Contributions {
		if c.ID == id {
			found := c
			found.Wish = s.cloneWishLocked()
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByWishIDs(ctx context.Context, wishIDs []int) ([]domain.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Contribution(nil), s.wish.Contributions...), nil
}

func TestAdmitConcurrentContributorsNeverOvershoot(t *testing.T) {
	store := &memStore{
		wish: &domain.Wish{
			ID:      1,
			OwnerID: 1,
			Price:   dec("100.00"),
		},
	}
	service := New(store, store, store, dec("0.01"))

	const contributors = 20
	results := make([]error, contributors)

	var g errgroup.Group
	for i := 0; i < contributors; i++ {
		i := i
		g.Go(func() error {
			_, err := service.Admit(context.Background(), 1, i+2, dec("30.00"), false)
			results[i] = err
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	var admitted int
	for _, err := range results {
		if err == nil {
			admitted++
			continue
		}
		if !errors.Is(err, ErrAmountExceedsRemaining) && !errors.Is(err, ErrAlreadyFunded) {
			t.Fatalf("unexpected admission error: %v", err)
		}
	}
	assert.Equal(t, 3, admitted)

	total := decimal.Zero
	for _, c := range store.wish.Contributions {
		total = total.Add(c.Amount)
	}
	assert.True(t, total.LessThanOrEqual(store.wish.Price))
	assert.True(t, store.wish.Raised.Equal(total))
}
