package wishrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const wishColumns = `
        w.id, w.owner_id, w.name, w.link, w.image, w.description,
        w.price, w.raised, w.copied, w.created_at, w.updated_at,
        u.id, u.username, u.email, u.about, u.avatar, u.created_at, u.updated_at
`

func scanWish(row pgx.Row) (*domain.Wish, error) {
	var wish domain.Wish
	var owner domain.User
	err := row.Scan(
		&wish.ID, &wish.OwnerID, &wish.Name, &wish.Link, &wish.Image, &wish.Description,
		&wish.Price, &wish.Raised, &wish.Copied, &wish.CreatedAt, &wish.UpdatedAt,
		&owner.ID, &owner.Username, &owner.Email, &owner.About, &owner.Avatar, &owner.CreatedAt, &owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	wish.Owner = &owner
	return &wish, nil
}

func (r *Repository) Create(ctx context.Context, wish *domain.Wish) (*domain.Wish, error) {
	query := `
        INSERT INTO wishes (owner_id, name, link, image, description, price)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, raised, copied, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, wish.OwnerID, wish.Name, wish.Link, wish.Image, wish.Description, wish.Price).
		Scan(&wish.ID, &wish.Raised, &wish.Copied, &wish.CreatedAt, &wish.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save wish", zap.Error(err))
		return nil, err
	}
	return wish, nil
}

// FindByID loads the wish with its owner and full contribution set, each
// contribution carrying its contributor.
func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Wish, error) {
	return r.findByID(ctx, id, false)
}

// FindByIDForUpdate is FindByID with the wish row locked. It must be called
// inside a transaction; the lock serializes concurrent admissions per wish.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Wish, error) {
	return r.findByID(ctx, id, true)
}

func (r *Repository) findByID(ctx context.Context, id int, forUpdate bool) (*domain.Wish, error) {
	query := `
        SELECT ` + wishColumns + `
        FROM wishes w
        JOIN users u ON u.id = w.owner_id
        WHERE w.id = $1
    `
	if forUpdate {
		query += ` FOR UPDATE OF w`
	}

	wish, err := scanWish(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find wish", zap.Error(err))
		return nil, err
	}

	contributions, err := r.findContributions(ctx, []int{wish.ID})
	if err != nil {
		return nil, err
	}
	wish.Contributions = contributions[wish.ID]
	return wish, nil
}

func (r *Repository) FindLast(ctx context.Context, limit int) ([]domain.Wish, error) {
	query := `
        SELECT ` + wishColumns + `
        FROM wishes w
        JOIN users u ON u.id = w.owner_id
        ORDER BY w.created_at DESC
        LIMIT $1
    `
	return r.findMany(ctx, query, limit)
}

func (r *Repository) FindTop(ctx context.Context, limit int) ([]domain.Wish, error) {
	query := `
        SELECT ` + wishColumns + `
        FROM wishes w
        JOIN users u ON u.id = w.owner_id
        ORDER BY w.copied DESC
        LIMIT $1
    `
	return r.findMany(ctx, query, limit)
}

func (r *Repository) findMany(ctx context.Context, query string, limit int) ([]domain.Wish, error) {
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get wishes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wishes []domain.Wish
	var ids []int
	for rows.Next() {
		wish, err := scanWish(rows)
		if err != nil {
			zap.L().Error("can't scan wish row", zap.Error(err))
			return nil, err
		}
		wishes = append(wishes, *wish)
		ids = append(ids, wish.ID)
	}
	if len(wishes) == 0 {
		return wishes, nil
	}

	contributions, err := r.findContributions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range wishes {
		wishes[i].Contributions = contributions[wishes[i].ID]
	}
	return wishes, nil
}

func (r *Repository) findContributions(ctx context.Context, wishIDs []int) (map[int][]domain.Contribution, error) {
	query := `
        SELECT c.id, c.wish_id, c.user_id, c.amount, c.hidden, c.created_at, c.updated_at,
               u.id, u.username, u.email, u.about, u.avatar, u.created_at, u.updated_at
        FROM contributions c
        JOIN users u ON u.id = c.user_id
        WHERE c.wish_id = ANY($1)
        ORDER BY c.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, wishIDs)
	if err != nil {
		zap.L().Error("can't get wish contributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make(map[int][]domain.Contribution)
	for rows.Next() {
		var c domain.Contribution
		var user domain.User
		err := rows.Scan(
			&c.ID, &c.WishID, &c.UserID, &c.Amount, &c.Hidden, &c.CreatedAt, &c.UpdatedAt,
			&user.ID, &user.Username, &user.Email, &user.About, &user.Avatar, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan contribution row", zap.Error(err))
			return nil, err
		}
		c.User = &user
		result[c.WishID] = append(result[c.WishID], c)
	}
	return result, nil
}

func (r *Repository) Update(ctx context.Context, id int, upd domain.WishUpdate) error {
	query := `
        UPDATE wishes
        SET name        = COALESCE($1, name),
            link        = COALESCE($2, link),
            image       = COALESCE($3, image),
            description = COALESCE($4, description),
            price       = COALESCE($5, price),
            updated_at  = now()
        WHERE id = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, upd.Name, upd.Link, upd.Image, upd.Description, upd.Price, id)
		if err != nil {
			zap.L().Error("can't update wish", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// IncrementRaised bumps the denormalized raised column inside the caller's
// transaction. The column is a read optimization; admission decisions never
// consult it.
func (r *Repository) IncrementRaised(ctx context.Context, id int, delta decimal.Decimal) error {
	query := `
        UPDATE wishes
        SET raised = round(raised + $1, 2), updated_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		zap.L().Error("can't increment wish raised", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementCopied(ctx context.Context, id int) error {
	query := `
        UPDATE wishes
        SET copied = copied + 1, updated_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment wish copied", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM wishes
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete wish", zap.Error(err))
		return err
	}
	return nil
}
