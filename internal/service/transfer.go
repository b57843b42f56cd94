package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type transferService struct {
	transferRepo repository.TransferRepository
	vehicleRepo  repository.VehicleRepository
	storeRepo    repository.StoreRepository
	rentalRepo   repository.RentalRepository
}

func NewTransferService(
	transferRepo repository.TransferRepository,
	vehicleRepo repository.VehicleRepository,
	storeRepo repository.StoreRepository,
	rentalRepo repository.RentalRepository,
) TransferService {
	return &transferService{
		transferRepo: transferRepo,
		vehicleRepo:  vehicleRepo,
		storeRepo:    storeRepo,
		rentalRepo:   rentalRepo,
	}
}

func (s *transferService) ListTransfers(ctx context.Context, actor domain.Actor) ([]domain.VehicleTransfer, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	if actor.Role == domain.RoleStoreAdmin {
		return s.transferRepo.ListByStore(ctx, actor.StoreID)
	}
	return s.transferRepo.List(ctx)
}

func (s *transferService) GetTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Transfer not found")
	}
	if actor.Role == domain.RoleStoreAdmin && !actor.CanAccessStore(t.SourceStoreID, t.DestStoreID) {
		return nil, domain.PermissionDenied("Permission denied. You can only view transfers from/to your store.")
	}
	return t, nil
}

func (s *transferService) CreateTransfer(ctx context.Context, actor domain.Actor, in TransferInput) (*domain.VehicleTransfer, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, notFoundOr(err, "Vehicle not found")
	}
	if _, err := s.storeRepo.GetByID(ctx, in.SourceStoreID); err != nil {
		return nil, notFoundOr(err, "Source store or destination store not found")
	}
	if _, err := s.storeRepo.GetByID(ctx, in.DestStoreID); err != nil {
		return nil, notFoundOr(err, "Source store or destination store not found")
	}
	if in.SourceStoreID == in.DestStoreID {
		return nil, domain.Invalid("Source and destination stores must be different")
	}
	if vehicle.StoreID != in.SourceStoreID {
		return nil, domain.Conflict("Vehicle is not currently at the source store")
	}

	inFlight, err := s.rentalRepo.HasInFlightByVehicle(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if inFlight {
		return nil, domain.Conflict("Cannot transfer a vehicle that is currently rented or has a pending rental")
	}

	pending, err := s.transferRepo.HasPendingByVehicle(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.Conflict("Vehicle already has a pending transfer")
	}

	t := &domain.VehicleTransfer{
		VehicleID:     in.VehicleID,
		SourceStoreID: in.SourceStoreID,
		DestStoreID:   in.DestStoreID,
		TransferDate:  time.Now().UTC().Format(domain.DateLayout),
		Status:        domain.TransferStatusPending,
		Notes:         in.Notes,
	}
	if err := s.transferRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transferService) ApproveTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Transfer not found")
	}
	if actor.Role == domain.RoleStoreAdmin && t.SourceStoreID != actor.StoreID {
		return nil, domain.PermissionDenied("Permission denied. You can only approve transfers from your store.")
	}
	if t.Status != domain.TransferStatusPending {
		return nil, domain.Conflict("Cannot approve transfer with status: %s", t.Status)
	}

	approver := actor.UserID
	ok, err := s.transferRepo.Transition(ctx, id, domain.TransferStatusPending, domain.TransferStatusApproved, &approver)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("Cannot approve transfer with status: %s", t.Status)
	}

	t.Status = domain.TransferStatusApproved
	t.ApprovedBy = &approver
	return t, nil
}

// CompleteTransfer is the single point where a vehicle's home store
// durably changes; approval and cancellation never move the vehicle.
func (s *transferService) CompleteTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Transfer not found")
	}
	if actor.Role == domain.RoleStoreAdmin && t.DestStoreID != actor.StoreID {
		return nil, domain.PermissionDenied("Permission denied. You can only complete transfers to your store.")
	}
	if t.Status != domain.TransferStatusApproved {
		return nil, domain.Conflict("Cannot complete transfer with status: %s", t.Status)
	}

	completed := time.Now().UTC().Format(domain.DateLayout)
	ok, err := s.transferRepo.Complete(ctx, id, completed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("Cannot complete transfer with status: %s", t.Status)
	}

	t.Status = domain.TransferStatusCompleted
	t.CompletedDate = &completed
	return t, nil
}

func (s *transferService) CancelTransfer(ctx context.Context, actor domain.Actor, id int32) (*domain.VehicleTransfer, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Transfer not found")
	}
	if actor.Role == domain.RoleStoreAdmin && !actor.CanAccessStore(t.SourceStoreID, t.DestStoreID) {
		return nil, domain.PermissionDenied("Permission denied. You can only cancel transfers from/to your store.")
	}
	if !t.Status.Open() {
		return nil, domain.Conflict("Cannot cancel transfer with status: %s", t.Status)
	}

	ok, err := s.transferRepo.Transition(ctx, id, t.Status, domain.TransferStatusCancelled, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("Cannot cancel transfer with status: %s", t.Status)
	}

	t.Status = domain.TransferStatusCancelled
	return t, nil
}
