// Package pricing provides refill cost calculation functions.
package pricing

const (
	// SubscriptionRate is the multiplier applied to subscriber costs (25% off).
	SubscriptionRate = 0.75
	// CouponAmount is the flat amount taken off when a coupon is present.
	CouponAmount = 10.0
)

// TotalCost returns the cost of refills at pricePerRefill each.
func TotalCost(pricePerRefill float64, refills int) float64 {
	return pricePerRefill * float64(refills)
}

// ApplyDiscount applies the subscription discount when subscriber is set.
func ApplyDiscount(cost float64, subscriber bool) float64 {
	if subscriber {
		return cost * SubscriptionRate
	}
	return cost
}

// ApplyCoupon takes CouponAmount off cost when hasCoupon is set.
// The result is not floored, so small costs go negative.
func ApplyCoupon(cost float64, hasCoupon bool) float64 {
	if hasCoupon {
		return cost - CouponAmount
	}
	return cost
}
