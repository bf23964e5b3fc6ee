package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

func TestResolve(t *testing.T) {
	rules := []model.LoyaltyRule{
		{MinTotalAmount: 0, BonusPoints: 0, DiscountPercent: 0},
		{MinTotalAmount: 5000, BonusPoints: 50, DiscountPercent: 3},
		{MinTotalAmount: 15000, BonusPoints: 100, DiscountPercent: 5},
		{MinTotalAmount: 50000, BonusPoints: 200, DiscountPercent: 10},
	}

	tests := []struct {
		name   string
		rules  []model.LoyaltyRule
		total  float64
		wantOK bool
		want   Award
	}{
		{
			name:   "below first paid tier",
			rules:  rules,
			total:  4999.99,
			wantOK: true,
			want:   Award{BonusPoints: 0, DiscountPercent: 0},
		},
		{
			name:   "exact threshold qualifies",
			rules:  rules,
			total:  5000,
			wantOK: true,
			want:   Award{BonusPoints: 50, DiscountPercent: 3},
		},
		{
			name:   "between tiers picks lower",
			rules:  rules,
			total:  5500,
			wantOK: true,
			want:   Award{BonusPoints: 50, DiscountPercent: 3},
		},
		{
			name:   "top tier",
			rules:  rules,
			total:  120000,
			wantOK: true,
			want:   Award{BonusPoints: 200, DiscountPercent: 10},
		},
		{
			name:   "empty rule set",
			rules:  nil,
			total:  100000,
			wantOK: false,
		},
		{
			name: "no qualifying threshold",
			rules: []model.LoyaltyRule{
				{MinTotalAmount: 5000, BonusPoints: 50, DiscountPercent: 3},
			},
			total:  4000,
			wantOK: false,
		},
		{
			name: "unsorted input",
			rules: []model.LoyaltyRule{
				{MinTotalAmount: 50000, BonusPoints: 200, DiscountPercent: 10},
				{MinTotalAmount: 0, BonusPoints: 0, DiscountPercent: 0},
				{MinTotalAmount: 15000, BonusPoints: 100, DiscountPercent: 5},
				{MinTotalAmount: 5000, BonusPoints: 50, DiscountPercent: 3},
			},
			total:  16000,
			wantOK: true,
			want:   Award{BonusPoints: 100, DiscountPercent: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.rules, tt.total)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	rules := []model.LoyaltyRule{
		{MinTotalAmount: 5000},
		{MinTotalAmount: 0},
	}

	_, _ = Resolve(rules, 10000)

	assert.Equal(t, float64(5000), rules[0].MinTotalAmount)
	assert.Equal(t, float64(0), rules[1].MinTotalAmount)
}
