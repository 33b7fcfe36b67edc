package dto

import (
	"time"

	"github.com/vpoletaev/giftwell/pkg/money"
)

type CreateWishRequestDTO struct {
	Name        string       `json:"name" validate:"required,min=1,max=250"`
	Link        string       `json:"link" validate:"omitempty,url"`
	Image       string       `json:"image" validate:"omitempty,url"`
	Price       money.Amount `json:"price" example:"100.00"`
	Description string       `json:"description" validate:"max=1024"`
}

type UpdateWishRequestDTO struct {
	Name        *string       `json:"name,omitempty"`
	Link        *string       `json:"link,omitempty"`
	Image       *string       `json:"image,omitempty"`
	Price       *money.Amount `json:"price,omitempty"`
	Description *string       `json:"description,omitempty"`
}

// WishPartialDTO is the wish without its associations; raised is always the
// viewer-scoped computed value, not the stored column.
type WishPartialDTO struct {
	ID          int          `json:"id" example:"1"`
	Name        string       `json:"name" example:"Mechanical keyboard"`
	Link        string       `json:"link" example:"https://shop.example.com/kb"`
	Image       string       `json:"image" example:"https://shop.example.com/kb.jpg"`
	Price       money.Amount `json:"price" example:"100.00"`
	Raised      money.Amount `json:"raised" example:"60.00"`
	Copied      int          `json:"copied" example:"0"`
	Description string       `json:"description" example:"Browns, please"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type WishViewDTO struct {
	WishPartialDTO
	Owner         UserPublicProfileDTO  `json:"owner"`
	Contributions []ContributionViewDTO `json:"offers"`
}
