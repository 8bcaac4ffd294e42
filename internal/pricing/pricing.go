// Package pricing computes line and cart totals for the storefront,
// including the half-and-half flavor rule and option add-ons.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cardapio/pkg/models"
)

// SelectedOption is one chosen add-on on a cart line
type SelectedOption struct {
	GroupName  string          `json:"group_name"`
	OptionName string          `json:"option_name"`
	Price      decimal.Decimal `json:"price"`
}

// HalfHalf is a two-flavor combination. Either half may be nil while the
// customer is still picking.
type HalfHalf struct {
	FirstHalf  *models.Product
	SecondHalf *models.Product
}

// UnitPrice returns the higher-priced of the chosen halves. The customer
// always pays the more expensive flavor, never a blend. With a single half
// chosen that half's price is used; with none, zero.
func (h *HalfHalf) UnitPrice() decimal.Decimal {
	price := decimal.Zero
	if h.FirstHalf != nil {
		price = h.FirstHalf.Price
	}
	if h.SecondHalf != nil && h.SecondHalf.Price.GreaterThan(price) {
		price = h.SecondHalf.Price
	}
	return price
}

// LineTotal computes the total for one cart line. Half-and-half and option
// add-ons are mutually exclusive: a half-half line ignores selectedOptions
// entirely and charges max(first, second) per unit.
func LineTotal(product models.Product, quantity int, selectedOptions []SelectedOption, halfHalf *HalfHalf) decimal.Decimal {
	var unit decimal.Decimal
	if halfHalf != nil {
		unit = halfHalf.UnitPrice()
	} else {
		unit = product.Price
		for _, opt := range selectedOptions {
			unit = unit.Add(opt.Price)
		}
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums the cached line totals of a cart
func Subtotal(lineTotals []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, total := range lineTotals {
		sum = sum.Add(total)
	}
	return sum
}

// Total adds the delivery fee to the subtotal. The fee is zero for pickup
// and table modes.
func Total(subtotal, deliveryFee decimal.Decimal) decimal.Decimal {
	return subtotal.Add(deliveryFee)
}

// MinimumOrderGap returns how much is still missing to reach the store's
// minimum order. Never negative; zero exactly when the minimum is met.
// Checkout stays blocked while the gap is positive.
func MinimumOrderGap(subtotal, minimumOrder decimal.Decimal) decimal.Decimal {
	gap := minimumOrder.Sub(subtotal)
	if gap.IsNegative() {
		return decimal.Zero
	}
	return gap
}

// HalfHalfCandidates filters the flavors a product can be combined with:
// same category, flagged for half-half and currently available. The
// half-half path is only offered when at least two candidates exist.
func HalfHalfCandidates(products []models.Product, current models.Product) []models.Product {
	if current.CategoryID == nil {
		return nil
	}

	candidates := make([]models.Product, 0)
	for _, p := range products {
		if p.CategoryID == nil || *p.CategoryID != *current.CategoryID {
			continue
		}
		if !p.AllowsHalfHalf || !p.IsAvailable {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// ValidateSelections enforces option group cardinality: at most max_select
// per group, and at least one for required groups. Half-half mode
// suppresses option groups entirely, so everything passes there.
func ValidateSelections(product models.Product, selections []SelectedOption, halfHalfActive bool) error {
	if halfHalfActive {
		return nil
	}

	countByGroup := make(map[string]int)
	for _, sel := range selections {
		countByGroup[sel.GroupName]++
	}

	for _, group := range product.OptionGroups {
		count := countByGroup[group.Title]
		if count > group.MaxSelect {
			return fmt.Errorf("grupo %q permite no máximo %d opções", group.Title, group.MaxSelect)
		}
		if group.IsRequired && count == 0 {
			return fmt.Errorf("grupo %q é obrigatório", group.Title)
		}
	}
	return nil
}
