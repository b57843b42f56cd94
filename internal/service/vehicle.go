package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo  repository.VehicleRepository
	typeRepo     repository.VehicleTypeRepository
	storeRepo    repository.StoreRepository
	rentalRepo   repository.RentalRepository
	transferRepo repository.TransferRepository
}

func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	typeRepo repository.VehicleTypeRepository,
	storeRepo repository.StoreRepository,
	rentalRepo repository.RentalRepository,
	transferRepo repository.TransferRepository,
) VehicleService {
	return &vehicleService{
		vehicleRepo:  vehicleRepo,
		typeRepo:     typeRepo,
		storeRepo:    storeRepo,
		rentalRepo:   rentalRepo,
		transferRepo: transferRepo,
	}
}

func (s *vehicleService) ListTypes(ctx context.Context) ([]domain.VehicleType, error) {
	return s.typeRepo.List(ctx)
}

func (s *vehicleService) GetType(ctx context.Context, id int32) (*domain.VehicleType, error) {
	vt, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Vehicle type not found")
	}
	return vt, nil
}

func (s *vehicleService) CreateType(ctx context.Context, actor domain.Actor, in VehicleTypeInput) (*domain.VehicleType, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	if in.DailyRentPrice <= 0 {
		return nil, domain.Invalid("Daily rent price must be positive")
	}
	vt := &domain.VehicleType{
		Brand:          in.Brand,
		Model:          in.Model,
		DailyRentPrice: in.DailyRentPrice,
	}
	if err := s.typeRepo.Create(ctx, vt); err != nil {
		return nil, err
	}
	return vt, nil
}

func (s *vehicleService) UpdateType(ctx context.Context, actor domain.Actor, id int32, in VehicleTypeUpdate) (*domain.VehicleType, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	vt, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Vehicle type not found")
	}

	if in.Brand != nil {
		vt.Brand = *in.Brand
	}
	if in.Model != nil {
		vt.Model = *in.Model
	}
	if in.DailyRentPrice != nil {
		if *in.DailyRentPrice <= 0 {
			return nil, domain.Invalid("Daily rent price must be positive")
		}
		vt.DailyRentPrice = *in.DailyRentPrice
	}

	if err := s.typeRepo.Update(ctx, vt); err != nil {
		return nil, err
	}
	return vt, nil
}

func (s *vehicleService) DeleteType(ctx context.Context, actor domain.Actor, id int32) error {
	if !actor.IsAdmin() {
		return domain.PermissionDenied("Permission denied. Admin access required.")
	}
	if _, err := s.typeRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Vehicle type not found")
	}

	count, err := s.typeRepo.CountVehicles(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflict("Cannot delete vehicle type with associated vehicles")
	}

	return s.typeRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, actor domain.Actor) ([]domain.Vehicle, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) GetVehicle(ctx context.Context, actor domain.Actor, id int32) (*domain.Vehicle, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Vehicle not found")
	}
	return v, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, actor domain.Actor, in VehicleInput) (*domain.Vehicle, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	if _, err := s.typeRepo.GetByID(ctx, in.TypeID); err != nil {
		return nil, notFoundOr(err, "Vehicle type not found")
	}
	if _, err := s.storeRepo.GetByID(ctx, in.StoreID); err != nil {
		return nil, notFoundOr(err, "Store not found")
	}
	if _, err := time.Parse(domain.DateLayout, in.ManufactureDate); err != nil {
		return nil, domain.Invalid("Invalid date format. Use YYYY-MM-DD")
	}

	v := &domain.Vehicle{
		TypeID:          in.TypeID,
		StoreID:         in.StoreID,
		ManufactureDate: in.ManufactureDate,
	}
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return s.vehicleRepo.GetByID(ctx, v.ID)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, actor domain.Actor, id int32, in VehicleUpdate) (*domain.Vehicle, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Vehicle not found")
	}

	if in.TypeID != nil {
		if _, err := s.typeRepo.GetByID(ctx, *in.TypeID); err != nil {
			return nil, notFoundOr(err, "Vehicle type not found")
		}
		v.TypeID = *in.TypeID
	}
	if in.StoreID != nil && *in.StoreID != v.StoreID {
		if _, err := s.storeRepo.GetByID(ctx, *in.StoreID); err != nil {
			return nil, notFoundOr(err, "Store not found")
		}
		// Relocation must go through the transfer workflow when the
		// vehicle is rented or already being moved.
		active, err := s.rentalRepo.HasActiveByVehicle(ctx, id)
		if err != nil {
			return nil, err
		}
		if active {
			return nil, domain.Conflict("Cannot change store of a vehicle that is currently rented")
		}
		open, err := s.transferRepo.HasOpenByVehicle(ctx, id)
		if err != nil {
			return nil, err
		}
		if open {
			return nil, domain.Conflict("Cannot change store of a vehicle that has a pending or approved transfer")
		}
		v.StoreID = *in.StoreID
	}
	if in.ManufactureDate != nil {
		if _, err := time.Parse(domain.DateLayout, *in.ManufactureDate); err != nil {
			return nil, domain.Invalid("Invalid date format. Use YYYY-MM-DD")
		}
		v.ManufactureDate = *in.ManufactureDate
	}

	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, actor domain.Actor, id int32) error {
	if !actor.IsAdmin() {
		return domain.PermissionDenied("Permission denied. Admin access required.")
	}
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Vehicle not found")
	}

	inFlight, err := s.rentalRepo.HasInFlightByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if inFlight {
		return domain.Conflict("Cannot delete vehicle with active rentals")
	}

	return s.vehicleRepo.Delete(ctx, id)
}
