package service

import (
	"context"
	"errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error) // new access token only
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, in ProfileUpdate) (*domain.User, error)
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	GetUser(ctx context.Context, actor domain.Actor, id int32) (*domain.User, error)
	UpdatePermissions(ctx context.Context, actor domain.Actor, userID int32, in PermissionsUpdate) (*domain.User, error)
}

type StoreService interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, id int32) (*domain.Store, error)
	CreateStore(ctx context.Context, actor domain.Actor, in StoreInput) (*domain.Store, error)
	UpdateStore(ctx context.Context, actor domain.Actor, id int32, in StoreUpdate) (*domain.Store, error)
	DeleteStore(ctx context.Context, actor domain.Actor, id int32) error
	ListManagers(ctx context.Context, actor domain.Actor, storeID int32) ([]domain.User, error)
}

type VehicleService interface {
	ListTypes(ctx context.Context) ([]domain.VehicleType, error)
	GetType(ctx context.Context, id int32) (*domain.VehicleType, error)
	CreateType(ctx context.Context, actor domain.Actor, in VehicleTypeInput) (*domain.VehicleType, error)
	UpdateType(ctx context.Context, actor domain.Actor, id int32, in VehicleTypeUpdate) (*domain.VehicleType, error)
	DeleteType(ctx context.Context, actor domain.Actor, id int32) error

	ListVehicles(ctx context.Context, actor domain.Actor) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, actor domain.Actor, id int32) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, actor domain.Actor, in VehicleInput) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, actor domain.Actor, id int32, in VehicleUpdate) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, actor domain.Actor, id int32) error
}

type RentalService interface {
	ListRentals(ctx context.Context, actor domain.Actor) ([]domain.Rental, error)
	GetRental(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error)
	CreateRental(ctx context.Context, actor domain.Actor, in RentalInput) (*domain.Rental, error)
	ApproveRental(ctx context.Context, actor domain.Actor, rentalID, vehicleID int32) (*domain.Rental, error)
	ReturnRental(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error)
	RequestExtension(ctx context.Context, actor domain.Actor, id int32, newReturnDate string) (*domain.Rental, error)
	ApproveExtension(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error)
	RejectExtension(ctx context.Context, actor domain.Actor, id int32, originalReturnDate string) (*domain.Rental, error)
	CancelRental(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error)
}

type TransferService interface {
	ListTransfers(ctx context.Context, actor domain.Actor) ([]domain.VehicleTransfer, error)
	GetTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error)
	CreateTransfer(ctx context.Context, actor domain.Actor, in TransferInput) (*domain.VehicleTransfer, error)
	ApproveTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error)
	CompleteTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error)
	CancelTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error)
}

type EmailService interface {
	SendRentalApproved(ctx context.Context, email, name string, rentalID int32, returnDate string) error
	SendExtensionDecision(ctx context.Context, email, name string, rentalID int32, approved bool, returnDate string) error
	SendOverdueReminder(ctx context.Context, email, name string, rentalID int32, dueDate string) error
}

// Inputs are decoded by the HTTP layer; pointer fields mean "not provided"
// on partial updates.

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Address     string
	PhoneNumber string
}

type ProfileUpdate struct {
	Name        *string
	Address     *string
	PhoneNumber *string
	Password    *string
}

// PermissionsUpdate distinguishes "managed_store_id absent" from
// "managed_store_id: null" (which demotes a store-admin to super scope).
type PermissionsUpdate struct {
	IsAdmin         *bool
	ManagedStoreID  *int32
	ManagedStoreSet bool
}

type StoreInput struct {
	Name        string
	Address     string
	PhoneNumber string
}

type StoreUpdate struct {
	Name        *string
	Address     *string
	PhoneNumber *string
}

type VehicleTypeInput struct {
	Brand          string
	Model          string
	DailyRentPrice float64
}

type VehicleTypeUpdate struct {
	Brand          *string
	Model          *string
	DailyRentPrice *float64
}

type VehicleInput struct {
	TypeID          int32
	StoreID         int32
	ManufactureDate string
}

type VehicleUpdate struct {
	TypeID          *int32
	StoreID         *int32
	ManufactureDate *string
}

type RentalInput struct {
	RentalStoreID      int32
	ReturnStoreID      int32
	VehicleTypeID      int32
	ExpectedReturnDate string
}

type TransferInput struct {
	VehicleID     int32
	SourceStoreID int32
	DestStoreID   int32
	Notes         string
}

// notFoundOr converts a repository miss into a typed not-found error and
// passes every other failure through untouched.
func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNoRows) {
		return domain.NotFound(format, args...)
	}
	return err
}
