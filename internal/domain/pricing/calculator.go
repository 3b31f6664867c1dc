package pricing

import "errors"

// DefaultDensity is the density constant for the PVC sheet material (g/cm3).
const DefaultDensity = 0.91

var ErrInvalidDimension = errors.New("invalid dimension")

// Dimensions are the physical inputs of a sheet order. All lengths are in
// millimeters; Quantity is the number of pieces.
type Dimensions struct {
	ThicknessMM float64
	WidthMM     float64
	LengthMM    float64
	Quantity    int
}

func (d Dimensions) validate() error {
	if d.ThicknessMM <= 0 || d.WidthMM <= 0 || d.LengthMM <= 0 {
		return ErrInvalidDimension
	}
	if d.Quantity < 1 {
		return ErrInvalidDimension
	}
	return nil
}

// Weight computes total order weight in kilograms:
//
//	weight = thickness * width * length * density * quantity / 1_000_000
func Weight(d Dimensions, density float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	if density <= 0 {
		return 0, ErrInvalidDimension
	}
	return d.ThicknessMM * d.WidthMM * d.LengthMM * density * float64(d.Quantity) / 1_000_000, nil
}

// PrintingSurcharge computes the surface-printing cost added to the material
// subtotal. Setup is charged once per color; run cost scales with quantity.
// A zero color count means no printing and costs nothing.
func PrintingSurcharge(colorCount int, setupFeePerColor, runRatePerColor float64, quantity int) float64 {
	if colorCount <= 0 || quantity < 1 {
		return 0
	}
	c := float64(colorCount)
	return c*setupFeePerColor + c*runRatePerColor*float64(quantity)
}

// Tax returns the sales tax (SST) on amount at the given percent rate.
func Tax(amount, percent float64) float64 {
	if amount <= 0 || percent <= 0 {
		return 0
	}
	return amount * percent / 100
}
