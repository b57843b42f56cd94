package domain

type VehicleType struct {
	ID             int32   `json:"type_id"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	DailyRentPrice float64 `json:"daily_rent_price"`
}

// Vehicle is always at exactly one store; the home store only changes when
// a transfer to that store completes.
type Vehicle struct {
	ID              int32        `json:"vehicle_id"`
	TypeID          int32        `json:"type_id"`
	StoreID         int32        `json:"store_id"`
	ManufactureDate string       `json:"manufacture_date"`
	Type            *VehicleType `json:"type,omitempty"` // populated on reads
}
