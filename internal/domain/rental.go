package domain

import "time"

// DateLayout is the wire format for all dates.
const DateLayout = "2006-01-02"

type RentalStatus string

const (
	RentalStatusPending            RentalStatus = "pending"
	RentalStatusActive             RentalStatus = "active"
	RentalStatusReturned           RentalStatus = "returned"
	RentalStatusCancelled          RentalStatus = "cancelled"
	RentalStatusExtensionRequested RentalStatus = "extension_requested"
)

// InFlight reports whether the status still ties up a vehicle.
func (s RentalStatus) InFlight() bool {
	return s == RentalStatusPending || s == RentalStatusActive
}

// Terminal statuses admit no further transitions.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusReturned || s == RentalStatusCancelled
}

// Rental starts pending with no vehicle assigned; VehicleID is set when an
// admin approves the request with a concrete vehicle of the requested type.
type Rental struct {
	ID                 int32        `json:"rental_id"`
	RentalDate         string       `json:"rental_date"`
	RentalStoreID      int32        `json:"rental_store_id"`
	UserID             int32        `json:"user_id"`
	VehicleID          *int32       `json:"vehicle_id"`
	VehicleTypeID      int32        `json:"vehicle_type_id"`
	ExpectedReturnDate string       `json:"expected_return_date"`
	ReturnStoreID      int32        `json:"return_store_id"`
	Status             RentalStatus `json:"rental_status"`
	IsOverdue          bool         `json:"is_overdue"`
}

// OverdueOn recomputes the derived overdue flag against the given day.
// Only active rentals can be overdue. ISO dates compare lexically, so no
// parse is needed.
func (r *Rental) OverdueOn(today time.Time) bool {
	if r.Status != RentalStatusActive {
		return false
	}
	return r.ExpectedReturnDate < today.Format(DateLayout)
}
