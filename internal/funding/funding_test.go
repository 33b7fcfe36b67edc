package funding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vpoletaev/giftwell/internal/domain"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name         string
		contribution domain.Contribution
		viewerID     int
		expected     bool
	}{
		{
			name:         "Open contribution visible to anyone",
			contribution: domain.Contribution{UserID: 2, Hidden: false},
			viewerID:     7,
			expected:     true,
		},
		{
			name:         "Hidden contribution visible to contributor",
			contribution: domain.Contribution{UserID: 2, Hidden: true},
			viewerID:     2,
			expected:     true,
		},
		{
			name:         "Hidden contribution invisible to stranger",
			contribution: domain.Contribution{UserID: 2, Hidden: true},
			viewerID:     7,
			expected:     false,
		},
		{
			name:         "Hidden contribution invisible to wish owner",
			contribution: domain.Contribution{UserID: 2, Hidden: true, WishID: 10},
			viewerID:     1,
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Visible(tt.contribution, tt.viewerID))
		})
	}
}

func TestAggregate(t *testing.T) {
	contributions := []domain.Contribution{
		{ID: 1, UserID: 2, Amount: amount("60.00"), Hidden: false},
		{ID: 2, UserID: 3, Amount: amount("25.50"), Hidden: true},
		{ID: 3, UserID: 4, Amount: amount("0.01"), Hidden: false},
	}

	tests := []struct {
		name           string
		viewerID       int
		expectedIDs    []int
		expectedRaised string
	}{
		{
			name:           "Stranger sees only open contributions",
			viewerID:       9,
			expectedIDs:    []int{1, 3},
			expectedRaised: "60.01",
		},
		{
			name:           "Hidden contributor sees their own",
			viewerID:       3,
			expectedIDs:    []int{1, 2, 3},
			expectedRaised: "85.51",
		},
		{
			name:           "Open contributor sees open set",
			viewerID:       2,
			expectedIDs:    []int{1, 3},
			expectedRaised: "60.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, raised := Aggregate(contributions, tt.viewerID)

			ids := make([]int, 0, len(visible))
			for _, c := range visible {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.True(t, raised.Equal(amount(tt.expectedRaised)),
				"raised = %s, want %s", raised, tt.expectedRaised)
		})
	}
}

func TestAggregateEmpty(t *testing.T) {
	visible, raised := Aggregate(nil, 1)
	assert.Empty(t, visible)
	assert.True(t, raised.IsZero())
}

// The visible list and the raised sum must always come from the same filtered
// set: summing the returned slice reproduces the returned total exactly.
func TestAggregateSinglePassCoupling(t *testing.T) {
	contributions := []domain.Contribution{
		{ID: 1, UserID: 2, Amount: amount("10.10"), Hidden: true},
		{ID: 2, UserID: 3, Amount: amount("20.20"), Hidden: false},
		{ID: 3, UserID: 2, Amount: amount("0.70"), Hidden: true},
		{ID: 4, UserID: 5, Amount: amount("99.99"), Hidden: true},
	}

	for _, viewerID := range []int{1, 2, 3, 5, 42} {
		visible, raised := Aggregate(contributions, viewerID)

		sum := decimal.Zero
		for _, c := range visible {
			sum = sum.Add(c.Amount)
		}
		assert.True(t, raised.Equal(sum), "viewer %d: raised %s != sum of visible %s", viewerID, raised, sum)
		assert.True(t, raised.Equal(ComputeRaised(contributions, viewerID)))
	}
}

// Decimal accumulation must not drift the way float64 does: a hundred 0.10
// contributions sum to exactly 10.00.
func TestAggregateExactCents(t *testing.T) {
	contributions := make([]domain.Contribution, 100)
	for i := range contributions {
		contributions[i] = domain.Contribution{ID: i + 1, UserID: i + 2, Amount: amount("0.10")}
	}

	raised := ComputeRaised(contributions, 1)
	assert.Equal(t, "10.00", raised.StringFixed(2))
}
