package domain

type RentalStatus string

const (
	RentalStatusRequested RentalStatus = "Requested"
	RentalStatusReceived  RentalStatus = "Received"
	RentalStatusReturned  RentalStatus = "Returned"
)

// Rental is the single record for one rental of one piece of equipment.
// Renter and owner views are repository lookups over the same record,
// never copies. Plan and price fields are snapshots taken at request
// time; later edits to the listing or the plan registry do not affect a
// rental in flight.
type Rental struct {
	ID              string       `json:"id"`
	EquipmentID     string       `json:"equipment_id"`
	EquipmentName   string       `json:"equipment_name"`
	RenterID        string       `json:"renter_id"`
	OwnerID         string       `json:"owner_id"`
	PlanID          string       `json:"plan_id"`
	PlanTitle       string       `json:"plan_title"`
	PlanDays        int          `json:"plan_days"`
	PriceCents      int64        `json:"price_cents"`
	Status          RentalStatus `json:"status"`
	TotalExtensions int          `json:"total_extensions"`
	IsReturnPending bool         `json:"is_return_pending"`
	CreatedOn       string       `json:"created_on"`
	UpdatedOn       string       `json:"updated_on"`
}

// Active reports whether the rental still occupies its equipment,
// i.e. has not been cancelled, rejected or return-confirmed.
func (r *Rental) Active() bool {
	return r.Status == RentalStatusRequested ||
		r.Status == RentalStatusReceived ||
		r.Status == RentalStatusReturned
}
