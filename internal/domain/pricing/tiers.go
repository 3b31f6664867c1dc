package pricing

// Tier bands order weight to determine the minimum permissible unit rate.
// Thresholds are evaluated in ascending weight order; first match wins.
type Tier struct {
	MaxWeightKG float64 // exclusive upper bound; <= 0 means unbounded
	MinRate     float64
}

type TierTable []Tier

// DefaultTierTable reflects the factory's standing price-floor policy. The
// literal rates are configuration defaults, not law; see config.Pricing.
func DefaultTierTable() TierTable {
	return TierTable{
		{MaxWeightKG: 10, MinRate: 36.00},
		{MaxWeightKG: 100, MinRate: 26.00},
		{MaxWeightKG: 0, MinRate: 12.60},
	}
}

// NewTierTable builds the standard three-band table from configured values.
func NewTierTable(smallMaxKG, mediumMaxKG, smallRate, mediumRate, largeRate float64) TierTable {
	return TierTable{
		{MaxWeightKG: smallMaxKG, MinRate: smallRate},
		{MaxWeightKG: mediumMaxKG, MinRate: mediumRate},
		{MaxWeightKG: 0, MinRate: largeRate},
	}
}

// MinimumRate returns the minimum unit rate for the given order weight.
func (t TierTable) MinimumRate(weightKG float64) float64 {
	for _, tier := range t {
		if tier.MaxWeightKG <= 0 || weightKG < tier.MaxWeightKG {
			return tier.MinRate
		}
	}
	return 0
}
