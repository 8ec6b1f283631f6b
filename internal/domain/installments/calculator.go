// Package installments derives the financing tiers offered for a price.
package installments

import (
	"fmt"

	"stuff3d_checkout/internal/domain/entities"
)

const DefaultMaxTiers = 12

// Calculate returns up to maxTiers options ordered by installment count.
//
// Rounding rule: each tier's regular installment is price/count rounded half-up
// to the cent; the first installment absorbs the difference so the tier always
// sums to the exact price (100,00 in 3x = 33,34 + 33,33 + 33,33).
//
// A tier is offered only when every installment is at least one cent, so small
// prices get fewer tiers (0,07 stops at 7x). The single payment is always
// offered.
func Calculate(price entities.Money, maxTiers int) []entities.InstallmentOption {
	if maxTiers < 1 {
		maxTiers = 1
	}
	options := make([]entities.InstallmentOption, 0, maxTiers)
	for count := 1; count <= maxTiers; count++ {
		amount := divideHalfUp(price, count)
		first := price - amount*entities.Money(count-1)
		if count > 1 && (amount < 1 || first < 1) {
			continue
		}
		options = append(options, entities.InstallmentOption{
			Installments:           count,
			InstallmentAmount:      amount,
			FirstInstallmentAmount: first,
			TotalAmount:            price,
			RecommendedMessage:     recommendedMessage(count, amount),
		})
	}
	return options
}

// Single is the always-available fallback: one installment of the full price.
func Single(price entities.Money) []entities.InstallmentOption {
	return Calculate(price, 1)
}

// Find returns the option with the given count.
func Find(options []entities.InstallmentOption, count int) (entities.InstallmentOption, bool) {
	for _, o := range options {
		if o.Installments == count {
			return o, true
		}
	}
	return entities.InstallmentOption{}, false
}

func divideHalfUp(price entities.Money, count int) entities.Money {
	cents := price.Cents()
	n := int64(count)
	if cents < 0 {
		return -entities.Money((-cents*2 + n) / (2 * n))
	}
	return entities.Money((cents*2 + n) / (2 * n))
}

func recommendedMessage(count int, amount entities.Money) string {
	if count == 1 {
		return "À vista"
	}
	return fmt.Sprintf("%dx de %s sem juros", count, amount)
}
