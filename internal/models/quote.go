package models

import "time"

type QuoteRequest struct {
	Prescription   string  `json:"prescription"`
	PricePerRefill float64 `json:"price_per_refill"`
	Refills        int     `json:"refills"`
	Subscription   bool    `json:"subscription"`
	Coupon         bool    `json:"coupon"`
}

// Quote is the cost breakdown for one request. Total may be negative.
type Quote struct {
	ID             string    `json:"id"`
	Prescription   string    `json:"prescription"`
	PricePerRefill float64   `json:"price_per_refill"`
	Refills        int       `json:"refills"`
	Subscription   bool      `json:"subscription"`
	Coupon         bool      `json:"coupon"`
	BaseCost       float64   `json:"base_cost"`
	AfterDiscount  float64   `json:"after_discount"`
	Total          float64   `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}
