package contributionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts an append-only contribution record. There is no update or
// delete counterpart: a pledge is immutable once admitted.
func (r *Repository) Create(ctx context.Context, contribution *domain.Contribution) (*domain.Contribution, error) {
	query := `
		INSERT INTO contributions (wish_id, user_id, amount, hidden)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, contribution.WishID, contribution.UserID, contribution.Amount, contribution.Hidden).
		Scan(&contribution.ID, &contribution.CreatedAt, &contribution.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save contribution", zap.Error(err))
		return nil, err
	}
	return contribution, nil
}

const contributionColumns = `
        c.id, c.wish_id, c.user_id, c.amount, c.hidden, c.created_at, c.updated_at,
        u.id, u.username, u.email, u.about, u.avatar, u.created_at, u.updated_at,
        w.id, w.owner_id, w.name, w.link, w.image, w.description,
        w.price, w.raised, w.copied, w.created_at, w.updated_at
`

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var c domain.Contribution
	var user domain.User
	var wish domain.Wish
	err := row.Scan(
		&c.ID, &c.WishID, &c.UserID, &c.Amount, &c.Hidden, &c.CreatedAt, &c.UpdatedAt,
		&user.ID, &user.Username, &user.Email, &user.About, &user.Avatar, &user.CreatedAt, &user.UpdatedAt,
		&wish.ID, &wish.OwnerID, &wish.Name, &wish.Link, &wish.Image, &wish.Description,
		&wish.Price, &wish.Raised, &wish.Copied, &wish.CreatedAt, &wish.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.User = &user
	c.Wish = &wish
	return &c, nil
}

// FindAll returns every contribution newest-first with contributor and target
// wish attached. Visibility filtering happens in the service layer.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Contribution, error) {
	query := `
        SELECT ` + contributionColumns + `
        FROM contributions c
        JOIN users u ON u.id = c.user_id
        JOIN wishes w ON w.id = c.wish_id
        ORDER BY c.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get contributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contributions []domain.Contribution
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			zap.L().Error("can't scan contribution row", zap.Error(err))
			return nil, err
		}
		contributions = append(contributions, *c)
	}
	return contributions, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Contribution, error) {
	query := `
        SELECT ` + contributionColumns + `
        FROM contributions c
        JOIN users u ON u.id = c.user_id
        JOIN wishes w ON w.id = c.wish_id
        WHERE c.id = $1
    `
	c, err := scanContribution(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find contribution", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// FindByWishIDs loads the bare contribution rows for a set of wishes, enough
// to aggregate raised totals without the user/wish joins.
func (r *Repository) FindByWishIDs(ctx context.Context, wishIDs []int) ([]domain.Contribution, error) {
	query := `
        SELECT id, wish_id, user_id, amount, hidden, created_at, updated_at
        FROM contributions
        WHERE wish_id = ANY($1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, wishIDs)
	if err != nil {
		zap.L().Error("can't get contributions by wish ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contributions []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		err := rows.Scan(&c.ID, &c.WishID, &c.UserID, &c.Amount, &c.Hidden, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan contribution row", zap.Error(err))
			return nil, err
		}
		contributions = append(contributions, c)
	}
	return contributions, nil
}
