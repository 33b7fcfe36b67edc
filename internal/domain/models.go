package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	About        string    `db:"about"`
	Avatar       string    `db:"avatar"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Wish struct {
	ID          int             `db:"id"`
	OwnerID     int             `db:"owner_id"`
	Name        string          `db:"name"`
	Link        string          `db:"link"`
	Image       string          `db:"image"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	// Raised mirrors the denormalized column. It is bumped on every admitted
	// contribution as a read optimization; responses never serve it directly
	// and always recompute from Contributions.
	Raised        decimal.Decimal `db:"raised"`
	Copied        int             `db:"copied"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	Owner         *User
	Contributions []Contribution
}

type Contribution struct {
	ID        int             `db:"id"`
	WishID    int             `db:"wish_id"`
	UserID    int             `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	Hidden    bool            `db:"hidden"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
	User      *User
	Wish      *Wish
}

// WishUpdate carries the mutable wish fields; nil leaves a field unchanged.
type WishUpdate struct {
	Name        *string
	Link        *string
	Image       *string
	Description *string
	Price       *decimal.Decimal
}
