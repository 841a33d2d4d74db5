package domain

type EquipmentStatus string

// Listing-level availability flag, set by the shopkeeper through the
// catalog. It is NOT reconciled with the rental lifecycle: a listing can
// read "Rented" with no active rental and vice versa. The relationship
// between the two is undefined.
const (
	EquipmentStatusRenting EquipmentStatus = "Renting" // available for requests
	EquipmentStatusRented  EquipmentStatus = "Rented"
)

type Equipment struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Categories     []string        `json:"categories,omitempty"`
	PriceCents     int64           `json:"price_cents"` // per day
	PaymentPlanIDs []string        `json:"payment_plan_ids"`
	Images         []string        `json:"images"` // image URIs
	Status         EquipmentStatus `json:"status"`
	CreatedOn      string          `json:"created_on"`
}
