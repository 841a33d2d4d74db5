package domain

// PaymentPlan is a named rental duration option. The registry is global
// and admin-managed; equipment listings and rentals reference plans by id.
type PaymentPlan struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DurationDays int    `json:"duration_days"`
}
