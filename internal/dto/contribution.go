package dto

import (
	"time"

	"github.com/vpoletaev/giftwell/pkg/money"
)

type CreateContributionRequestDTO struct {
	Amount money.Amount `json:"amount" example:"50.50"`
	Hidden bool         `json:"hidden" example:"false"`
	WishID int          `json:"itemId" validate:"required,min=1" example:"1"`
}

// ContributionViewDTO hides the contributor from everyone but the contributor
// themselves: User is omitted from the payload entirely when not visible, so a
// reader cannot tell a hidden contributor apart from an unrequested field.
type ContributionViewDTO struct {
	ID        int                   `json:"id" example:"1"`
	Amount    money.Amount          `json:"amount" example:"50.50"`
	Hidden    bool                  `json:"hidden" example:"false"`
	Item      WishPartialDTO        `json:"item"`
	User      *UserPublicProfileDTO `json:"user,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}
