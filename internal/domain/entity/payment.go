package entity

import "time"

// PaymentRecord is the durable result of a confirmed checkout session,
// keyed by customer email with upsert semantics: at most one current
// record per email.
type PaymentRecord struct {
	Email  string
	Plan   string
	Amount float64 // Major currency units (provider total divided by 100).
	Status string
	PaidAt time.Time
}

// CheckoutSession is the provider-side representation of a purchase.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string // "paid" when the charge settled.
	CustomerEmail string
	AmountTotal   int64 // Minor currency units.
	Plan          string
}

// CheckoutPaid is the provider's payment_status value for a settled session.
const CheckoutPaid = "paid"
