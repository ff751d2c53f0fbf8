package pricing

import (
	"fmt"
	"sort"

	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

// ResolveUnitPrice determines the unit price a buyer pays for a product at a
// given quantity. Buyers without wholesale approval always pay retail, as do
// approved buyers whose quantity falls outside every tier. Tiers are scanned
// in ascending min_quantity order and the first range containing the
// quantity wins. Pure function, no side effects.
func ResolveUnitPrice(product *models.Product, quantity int, wholesaleApproved bool) float64 {
	if !wholesaleApproved || len(product.Tiers) == 0 {
		return product.RetailPrice
	}

	tiers := make([]models.WholesalePriceTier, len(product.Tiers))
	copy(tiers, product.Tiers)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinQuantity < tiers[j].MinQuantity
	})

	for _, tier := range tiers {
		if quantity >= tier.MinQuantity &&
			(tier.MaxQuantity == nil || quantity <= *tier.MaxQuantity) {
			return tier.PricePerUnit
		}
	}

	// No matching tier is not an error; the buyer pays retail.
	return product.RetailPrice
}

// OverlapError reports which existing tier range a candidate collides with.
type OverlapError struct {
	TierID      uint
	MinQuantity int
	MaxQuantity *int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf(
		"quantity range overlaps with an existing wholesale price (%s)",
		FormatRange(e.MinQuantity, e.MaxQuantity),
	)
}

// MalformedRangeError rejects a candidate whose bounds make no sense on
// their own, before any overlap comparison.
type MalformedRangeError struct {
	MinQuantity int
	MaxQuantity *int
}

func (e *MalformedRangeError) Error() string {
	if e.MinQuantity < 1 {
		return "min_quantity must be at least 1"
	}
	return fmt.Sprintf("min_quantity %d exceeds max_quantity %d", e.MinQuantity, *e.MaxQuantity)
}

// ValidateTierRange checks a candidate [min, max] range against a product's
// existing tiers. excludeID skips the tier being edited in place (0 for a
// new tier). A nil max is treated as unbounded (+inf) on both sides of the
// comparison. Returns nil when the candidate may be written.
func ValidateTierRange(minQuantity int, maxQuantity *int, existing []models.WholesalePriceTier, excludeID uint) error {
	if minQuantity < 1 || (maxQuantity != nil && minQuantity > *maxQuantity) {
		return &MalformedRangeError{MinQuantity: minQuantity, MaxQuantity: maxQuantity}
	}

	for _, tier := range existing {
		if excludeID != 0 && tier.ID == excludeID {
			continue
		}
		if rangesOverlap(minQuantity, maxQuantity, tier.MinQuantity, tier.MaxQuantity) {
			return &OverlapError{
				TierID:      tier.ID,
				MinQuantity: tier.MinQuantity,
				MaxQuantity: tier.MaxQuantity,
			}
		}
	}
	return nil
}

// rangesOverlap: two ranges are disjoint iff one ends before the other
// starts. Unbounded maxima never end.
func rangesOverlap(aMin int, aMax *int, bMin int, bMax *int) bool {
	if aMax != nil && *aMax < bMin {
		return false
	}
	if bMax != nil && aMin > *bMax {
		return false
	}
	return true
}

// FormatRange renders a tier range for error messages and exports,
// e.g. "5 - 20" or "21+".
func FormatRange(minQuantity int, maxQuantity *int) string {
	if maxQuantity == nil {
		return fmt.Sprintf("%d+", minQuantity)
	}
	return fmt.Sprintf("%d - %d", minQuantity, *maxQuantity)
}
