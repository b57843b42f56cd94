package domain

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusApproved  TransferStatus = "approved"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// Open reports whether the transfer still holds a claim on its vehicle.
func (s TransferStatus) Open() bool {
	return s == TransferStatusPending || s == TransferStatusApproved
}

type VehicleTransfer struct {
	ID            int32          `json:"transfer_id"`
	VehicleID     int32          `json:"vehicle_id"`
	SourceStoreID int32          `json:"source_store_id"`
	DestStoreID   int32          `json:"destination_store_id"`
	TransferDate  string         `json:"transfer_date"`
	Status        TransferStatus `json:"transfer_status"`
	ApprovedBy    *int32         `json:"approved_by"`
	CompletedDate *string        `json:"completed_date"`
	Notes         string         `json:"notes"`
}
