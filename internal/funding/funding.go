// Package funding derives the viewer-scoped state of a wish's collection from
// its contribution set. Raised is never read from storage: it is always the sum
// over the contributions visible to the viewer, and the visible set and the sum
// come out of the same pass so the two can never disagree.
package funding

import (
	"github.com/shopspring/decimal"

	"github.com/vpoletaev/giftwell/internal/domain"
)

// Visible reports whether the contributor behind c may be shown to viewerID.
// A hidden contribution is visible only to the contributor themselves; the
// wish owner gets no special treatment.
func Visible(c domain.Contribution, viewerID int) bool {
	return !c.Hidden || c.UserID == viewerID
}

// Aggregate filters contributions by Visible and sums their amounts in one
// pass. The returned slice preserves input order and is safe to reuse for view
// construction without re-filtering.
func Aggregate(contributions []domain.Contribution, viewerID int) ([]domain.Contribution, decimal.Decimal) {
	visible := make([]domain.Contribution, 0, len(contributions))
	raised := decimal.Zero
	for _, c := range contributions {
		if !Visible(c, viewerID) {
			continue
		}
		visible = append(visible, c)
		raised = raised.Add(c.Amount)
	}
	return visible, raised
}

// ComputeRaised returns the sum component of Aggregate.
func ComputeRaised(contributions []domain.Contribution, viewerID int) decimal.Decimal {
	_, raised := Aggregate(contributions, viewerID)
	return raised
}
