package pricing

import "fmt"

// PriceBelowFloorError is returned when a proposed unit rate undercuts the
// weight tier's minimum and no administrative override is in effect.
type PriceBelowFloorError struct {
	MinimumRate float64
}

func (e *PriceBelowFloorError) Error() string {
	return fmt.Sprintf("unit rate below tier minimum %.2f", e.MinimumRate)
}

// FloorValidator enforces the minimum-price policy.
type FloorValidator struct {
	table TierTable
}

func NewFloorValidator(table TierTable) *FloorValidator {
	return &FloorValidator{table: table}
}

// Validate checks the proposed unit rate against the weight tier's floor.
// With override set the check passes regardless; the caller must retain the
// override marker on the resulting record for audit.
func (v *FloorValidator) Validate(weightKG, unitRate float64, override bool) error {
	min := v.table.MinimumRate(weightKG)
	if unitRate >= min {
		return nil
	}
	if override {
		return nil
	}
	return &PriceBelowFloorError{MinimumRate: min}
}

// MinimumRate exposes the floor for a given weight without validating.
func (v *FloorValidator) MinimumRate(weightKG float64) float64 {
	return v.table.MinimumRate(weightKG)
}
