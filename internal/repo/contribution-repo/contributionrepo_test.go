package contributionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vpoletaev/giftwell/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var fullColumns = []string{
	"id", "wish_id", "user_id", "amount", "hidden", "created_at", "updated_at",
	"u_id", "username", "email", "about", "avatar", "u_created_at", "u_updated_at",
	"w_id", "owner_id", "name", "link", "image", "description",
	"price", "raised", "copied", "w_created_at", "w_updated_at",
}

func fullRow(rows *pgxmock.Rows, id int, amount decimal.Decimal, hidden bool, now time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, 1, 3, amount, hidden, now, now,
		3, "bob", "bob@example.com", "", "", now, now,
		1, 2, "keyboard", "", "", "", dec("100.00"), amount, 0, now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Creates contribution",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(10, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contributions`)).
					WithArgs(1, 3, dec("60.00"), false).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contributions`)).
					WithArgs(1, 3, dec("60.00"), false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			contribution := &domain.Contribution{WishID: 1, UserID: 3, Amount: dec("60.00")}
			result, err := repo.Create(context.Background(), contribution)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(fullColumns)
	rows = fullRow(rows, 11, dec("25.00"), false, now)
	rows = fullRow(rows, 10, dec("40.00"), true, now)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.created_at DESC`)).
		WillReturnRows(rows)

	contributions, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, contributions, 2)
	assert.Equal(t, 11, contributions[0].ID)
	assert.Equal(t, "bob", contributions[0].User.Username)
	assert.Equal(t, "keyboard", contributions[0].Wish.Name)
	assert.True(t, contributions[1].Hidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing contribution",
			id:   10,
			mockSetup: func() {
				rows := fullRow(pgxmock.NewRows(fullColumns), 10, dec("40.00"), false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.id = $1`)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Missing contribution returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.id = $1`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			contribution, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, contribution)
				assert.Equal(t, tt.id, contribution.ID)
				assert.NotNil(t, contribution.Wish)
			} else {
				assert.Nil(t, contribution)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByWishIDs(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "wish_id", "user_id", "amount", "hidden", "created_at", "updated_at"}).
		AddRow(11, 1, 4, dec("25.00"), false, now, now).
		AddRow(10, 1, 3, dec("40.00"), true, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE wish_id = ANY($1)`)).
		WithArgs([]int{1}).
		WillReturnRows(rows)

	contributions, err := repo.FindByWishIDs(context.Background(), []int{1})
	assert.NoError(t, err)
	assert.Len(t, contributions, 2)
	assert.Nil(t, contributions[0].User)
	assert.True(t, contributions[1].Hidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}
