package models

import "time"

type Prescription struct {
	ID             int       `json:"id,omitempty"`
	Name           string    `json:"prescription"`
	PricePerRefill float64   `json:"price_per_refill"`
	Refills        int       `json:"refills"`
	Subscription   bool      `json:"subscription"`
	Coupon         bool      `json:"coupon"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// SamplePrescriptions is the seed catalog used when no database is configured.
func SamplePrescriptions() []Prescription {
	return []Prescription{
		{Name: "acetaminophen", PricePerRefill: 25, Refills: 3, Subscription: false, Coupon: true},
		{Name: "diphenhydramine", PricePerRefill: 50, Refills: 1, Subscription: true, Coupon: false},
		{Name: "phenylephrine", PricePerRefill: 30, Refills: 5, Subscription: true, Coupon: true},
	}
}

// Request converts a catalog entry into a quote request with its stored flags.
func (p Prescription) Request() QuoteRequest {
	return QuoteRequest{
		Prescription:   p.Name,
		PricePerRefill: p.PricePerRefill,
		Refills:        p.Refills,
		Subscription:   p.Subscription,
		Coupon:         p.Coupon,
	}
}
