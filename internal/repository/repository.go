package repository

import (
	"context"
	"errors"

	"fleetrent-backend/internal/domain"
)

// ErrNoRows is returned by lookups when the entity does not exist, so
// callers never depend on database/sql directly.
var ErrNoRows = errors.New("no rows found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	ListRegular(ctx context.Context) ([]domain.User, error)
	ListManagers(ctx context.Context, storeID int32) ([]domain.User, error)
	CountManagers(ctx context.Context, storeID int32) (int32, error)
}

type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, id int32) (*domain.Store, error)
	List(ctx context.Context) ([]domain.Store, error)
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id int32) error
}

type VehicleTypeRepository interface {
	Create(ctx context.Context, vt *domain.VehicleType) error
	GetByID(ctx context.Context, id int32) (*domain.VehicleType, error)
	List(ctx context.Context) ([]domain.VehicleType, error)
	Update(ctx context.Context, vt *domain.VehicleType) error
	Delete(ctx context.Context, id int32) error
	CountVehicles(ctx context.Context, typeID int32) (int32, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListByStore(ctx context.Context, storeID int32) ([]domain.Rental, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListOverdue(ctx context.Context) ([]domain.Rental, error)

	// AssignVehicle activates a pending rental with a concrete vehicle.
	// The update is conditional on the rental still being pending and the
	// vehicle having no in-flight rental; false means the guard failed.
	AssignVehicle(ctx context.Context, rentalID, vehicleID int32) (bool, error)

	// Transition moves a rental between statuses with a check-and-set on
	// the expected current status. The overdue flag is cleared on every
	// transition; newExpectedReturn, when non-nil, replaces the expected
	// return date in the same statement. Returns false when the rental was
	// no longer in the expected status.
	Transition(ctx context.Context, id int32, from, to domain.RentalStatus, newExpectedReturn *string) (bool, error)

	SetOverdue(ctx context.Context, id int32, overdue bool) error

	// RefreshOverdue reconciles the persisted overdue flag of every active
	// rental against today's date and reports how many rows were flagged
	// and cleared.
	RefreshOverdue(ctx context.Context, today string) (flagged, cleared int64, err error)

	HasInFlightByVehicle(ctx context.Context, vehicleID int32) (bool, error)
	HasActiveByVehicle(ctx context.Context, vehicleID int32) (bool, error)
	HasInFlightByStore(ctx context.Context, storeID int32) (bool, error)
}

type TransferRepository interface {
	Create(ctx context.Context, t *domain.VehicleTransfer) error
	GetByID(ctx context.Context, id int32) (*domain.VehicleTransfer, error)
	List(ctx context.Context) ([]domain.VehicleTransfer, error)
	ListByStore(ctx context.Context, storeID int32) ([]domain.VehicleTransfer, error)

	// Transition moves a transfer between statuses with a check-and-set on
	// the expected current status; approvedBy is recorded when non-nil.
	Transition(ctx context.Context, id int32, from, to domain.TransferStatus, approvedBy *int32) (bool, error)

	// Complete finishes an approved transfer and relocates the vehicle's
	// home store in a single transaction. Returns false when the transfer
	// was no longer approved; nothing is written in that case.
	Complete(ctx context.Context, id int32, completedDate string) (bool, error)

	HasPendingByVehicle(ctx context.Context, vehicleID int32) (bool, error)
	HasOpenByVehicle(ctx context.Context, vehicleID int32) (bool, error)
}
