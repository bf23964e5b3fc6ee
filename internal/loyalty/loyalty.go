// Package loyalty реализует подбор ступени программы лояльности.
package loyalty

import (
	"sort"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// Award описывает результат подбора ступени для накопленной суммы.
type Award struct {
	BonusPoints     int
	DiscountPercent float64
}

// Resolve выбирает ступень с максимальным порогом, не превышающим
// накопленную сумму клиента. Если ни одна ступень не подходит,
// возвращает ok=false: бонусы не начисляются, скидка клиента не меняется.
func Resolve(rules []model.LoyaltyRule, cumulativeTotal float64) (Award, bool) {
	sorted := make([]model.LoyaltyRule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinTotalAmount > sorted[j].MinTotalAmount
	})

	for _, r := range sorted {
		if r.MinTotalAmount <= cumulativeTotal {
			return Award{
				BonusPoints:     r.BonusPoints,
				DiscountPercent: r.DiscountPercent,
			}, true
		}
	}

	return Award{}, false
}
