package pricing

// Sales commission bands by order total (RM). Larger orders earn a higher
// rate, matching the latest revision of the factory's commission policy.
const (
	commissionHighThreshold = 10000.0
	commissionMidThreshold  = 3000.0

	commissionHighRate = 0.03
	commissionMidRate  = 0.02
	commissionBaseRate = 0.01
)

// CommissionRate returns the commission fraction owed to the sales agent for
// an order of the given total price.
func CommissionRate(totalPrice float64) float64 {
	switch {
	case totalPrice >= commissionHighThreshold:
		return commissionHighRate
	case totalPrice >= commissionMidThreshold:
		return commissionMidRate
	default:
		return commissionBaseRate
	}
}

// Commission returns the commission amount for an order total.
func Commission(totalPrice float64) float64 {
	if totalPrice <= 0 {
		return 0
	}
	return totalPrice * CommissionRate(totalPrice)
}
