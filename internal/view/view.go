// Package view builds viewer-scoped projections of domain entities. Visibility
// rules are applied here exactly once per response: the contribution list and
// the raised total for a wish come out of the same funding.Aggregate pass.
package view

import (
	"github.com/shopspring/decimal"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/dto"
	"github.com/vpoletaev/giftwell/internal/funding"
	"github.com/vpoletaev/giftwell/pkg/money"
)

// Profile is the user's own view of themselves, email included.
func Profile(user *domain.User) dto.UserProfileDTO {
	return dto.UserProfileDTO{
		ID:        user.ID,
		Username:  user.Username,
		About:     user.About,
		Avatar:    user.Avatar,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// PublicProfile is how everyone else sees a user. No email, ever.
func PublicProfile(user *domain.User) dto.UserPublicProfileDTO {
	return dto.UserPublicProfileDTO{
		ID:        user.ID,
		Username:  user.Username,
		About:     user.About,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Wish assembles the viewer-scoped wish projection. Raised is recomputed from
// the contribution set here; the stored column never reaches a response.
func Wish(wish *domain.Wish, viewerID int) dto.WishViewDTO {
	visible, raised := funding.Aggregate(wish.Contributions, viewerID)

	contributions := make([]dto.ContributionViewDTO, 0, len(visible))
	for i := range visible {
		contributions = append(contributions, contributionView(&visible[i], wish, viewerID))
	}

	return dto.WishViewDTO{
		WishPartialDTO: wishPartial(wish, raised),
		Owner:          PublicProfile(wish.Owner),
		Contributions:  contributions,
	}
}

// Wishes builds views for a list of wishes with a shared viewer.
func Wishes(wishes []domain.Wish, viewerID int) []dto.WishViewDTO {
	views := make([]dto.WishViewDTO, 0, len(wishes))
	for i := range wishes {
		views = append(views, Wish(&wishes[i], viewerID))
	}
	return views
}

// Contribution builds the standalone contribution projection. The caller must
// only pass contributions already visible to viewerID; invisibility is decided
// at the service layer where it turns into a not-found.
func Contribution(contribution *domain.Contribution, viewerID int) dto.ContributionViewDTO {
	return contributionView(contribution, contribution.Wish, viewerID)
}

// Contributions filters and projects in one pass over the visible set.
func Contributions(contributions []domain.Contribution, viewerID int) []dto.ContributionViewDTO {
	visible, _ := funding.Aggregate(contributions, viewerID)
	views := make([]dto.ContributionViewDTO, 0, len(visible))
	for i := range visible {
		views = append(views, contributionView(&visible[i], visible[i].Wish, viewerID))
	}
	return views
}

func contributionView(contribution *domain.Contribution, wish *domain.Wish, viewerID int) dto.ContributionViewDTO {
	v := dto.ContributionViewDTO{
		ID:        contribution.ID,
		Amount:    money.New(contribution.Amount),
		Hidden:    contribution.Hidden,
		CreatedAt: contribution.CreatedAt,
		UpdatedAt: contribution.UpdatedAt,
	}
	if wish != nil {
		raised := funding.ComputeRaised(wish.Contributions, viewerID)
		v.Item = wishPartial(wish, raised)
	}
	// The contributor field is omitted, not nulled, when the viewer may not
	// see it. Lists arrive pre-filtered so this only fires on bare rows.
	if contribution.User != nil && funding.Visible(*contribution, viewerID) {
		user := PublicProfile(contribution.User)
		v.User = &user
	}
	return v
}

func wishPartial(wish *domain.Wish, raised decimal.Decimal) dto.WishPartialDTO {
	return dto.WishPartialDTO{
		ID:          wish.ID,
		Name:        wish.Name,
		Link:        wish.Link,
		Image:       wish.Image,
		Price:       money.New(wish.Price),
		Raised:      money.New(raised),
		Copied:      wish.Copied,
		Description: wish.Description,
		CreatedAt:   wish.CreatedAt,
		UpdatedAt:   wish.UpdatedAt,
	}
}
