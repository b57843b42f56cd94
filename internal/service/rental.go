package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	vehicleRepo repository.VehicleRepository
	typeRepo    repository.VehicleTypeRepository
	storeRepo   repository.StoreRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	typeRepo repository.VehicleTypeRepository,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		typeRepo:    typeRepo,
		storeRepo:   storeRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// ListRentals reconciles overdue flags first, so a listing always reflects
// the current date without a background scheduler.
func (s *rentalService) ListRentals(ctx context.Context, actor domain.Actor) ([]domain.Rental, error) {
	s.refreshOverdue(ctx)

	switch actor.Role {
	case domain.RoleSuper:
		return s.rentalRepo.List(ctx)
	case domain.RoleStoreAdmin:
		return s.rentalRepo.ListByStore(ctx, actor.StoreID)
	default:
		return s.rentalRepo.ListByUser(ctx, actor.UserID)
	}
}

func (s *rentalService) GetRental(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Rental not found")
	}

	if !actor.IsAdmin() && rt.UserID != actor.UserID {
		return nil, domain.PermissionDenied("Permission denied. You can only view your own rentals.")
	}
	if actor.Role == domain.RoleStoreAdmin && !actor.CanAccessStore(rt.RentalStoreID, rt.ReturnStoreID) {
		return nil, domain.PermissionDenied("Permission denied. You can only view rentals from/to your store.")
	}

	// Recompute the derived overdue flag on read; persist only on change.
	if overdue := rt.OverdueOn(time.Now().UTC()); overdue != rt.IsOverdue {
		if err := s.rentalRepo.SetOverdue(ctx, rt.ID, overdue); err != nil {
			return nil, err
		}
		rt.IsOverdue = overdue
	}

	return rt, nil
}

func (s *rentalService) CreateRental(ctx context.Context, actor domain.Actor, in RentalInput) (*domain.Rental, error) {
	if _, err := s.storeRepo.GetByID(ctx, in.RentalStoreID); err != nil {
		return nil, notFoundOr(err, "Rental store or return store not found")
	}
	if _, err := s.storeRepo.GetByID(ctx, in.ReturnStoreID); err != nil {
		return nil, notFoundOr(err, "Rental store or return store not found")
	}
	if _, err := s.typeRepo.GetByID(ctx, in.VehicleTypeID); err != nil {
		return nil, notFoundOr(err, "Vehicle type not found")
	}

	today := time.Now().UTC().Format(domain.DateLayout)
	expected, err := time.Parse(domain.DateLayout, in.ExpectedReturnDate)
	if err != nil {
		return nil, domain.Invalid("Invalid date format. Use YYYY-MM-DD")
	}
	if expected.Format(domain.DateLayout) < today {
		return nil, domain.Invalid("Expected return date cannot be in the past")
	}

	rt := &domain.Rental{
		RentalDate:         today,
		RentalStoreID:      in.RentalStoreID,
		UserID:             actor.UserID,
		VehicleID:          nil, // assigned at approval
		VehicleTypeID:      in.VehicleTypeID,
		ExpectedReturnDate: expected.Format(domain.DateLayout),
		ReturnStoreID:      in.ReturnStoreID,
		Status:             domain.RentalStatusPending,
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) ApproveRental(ctx context.Context, actor domain.Actor, rentalID, vehicleID int32) (*domain.Rental, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, notFoundOr(err, "Rental not found")
	}
	if actor.Role == domain.RoleStoreAdmin && rt.RentalStoreID != actor.StoreID {
		return nil, domain.PermissionDenied("Permission denied. You can only approve rentals from your store.")
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, domain.Conflict("Cannot approve rental with status: %s", rt.Status)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, notFoundOr(err, "Vehicle not found")
	}
	if vehicle.TypeID != rt.VehicleTypeID {
		return nil, domain.Conflict("Vehicle type does not match the requested vehicle type")
	}
	rented, err := s.rentalRepo.HasActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if rented {
		return nil, domain.Conflict("Vehicle is already rented")
	}

	// The assignment re-validates status and availability at write time,
	// so a concurrent approval of the same vehicle loses here instead of
	// double-booking it.
	ok, err := s.rentalRepo.AssignVehicle(ctx, rentalID, vehicleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("Vehicle is already rented")
	}

	rt.VehicleID = &vehicleID
	rt.Status = domain.RentalStatusActive

	s.notifyApproval(ctx, rt)
	return rt, nil
}

func (s *rentalService) ReturnRental(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}

	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Rental not found")
	}
	if actor.Role == domain.RoleStoreAdmin && rt.ReturnStoreID != actor.StoreID {
		return nil, domain.PermissionDenied("Permission denied. You can only process returns at your store.")
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, domain.Conflict("Cannot return rental with status: %s", rt.Status)
	}

	ok, err := s.rentalRepo.Transition(ctx, id, domain.RentalStatusActive, domain.RentalStatusReturned, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("Cannot return rental with status: %s", rt.Status)
	}

	rt.Status = domain.RentalStatusReturned
	rt.IsOverdue = false
	return rt, nil
}

func (s *rentalService) RequestExtension(ctx context.Context, actor domain.Actor, id int32, newReturnDate string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Rental not found")
	}
	if rt.UserID != actor.UserID {
		return nil, domain.PermissionDenied("Permission denied. You can only extend your own rentals.")
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, domain.Conflict("Cannot extend rental with status: %s", rt.Status)
	}

	parsed, err := time.Parse(domain.DateLayout, newReturnDate)
	if err != nil {
		return nil, domain.Invalid("Invalid date format. Use YYYY-MM-DD")
	}
	newDate := parsed.Format(domain.DateLayout)
	if newDate <= rt.ExpectedReturnDate {
		return nil, domain.Invalid("New return date must be after current return date")
	}

	// The requested date becomes the live expected date immediately; a
	// rejection restores the caller-supplied original.
	ok, err := s.rentalRepo.Transition(ctx, id, domain.RentalStatusActive, domain.RentalStatusExtensionRequested, &newDate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("Cannot extend rental with status: %s", rt.Status)
	}

	rt.Status = domain.RentalStatusExtensionRequested
	rt.ExpectedReturnDate = newDate
	rt.IsOverdue = false
	return rt, nil
}

func (s *rentalService) ApproveExtension(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error) {
	rt, err := s.extensionDecisionTarget(ctx, actor, id, "approve")
	if err != nil {
		return nil, err
	}

	ok, err := s.rentalRepo.Transition(ctx, id, domain.RentalStatusExtensionRequested, domain.RentalStatusActive, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("No extension request for rental with status: %s", rt.Status)
	}

	rt.Status = domain.RentalStatusActive
	rt.IsOverdue = false
	s.notifyExtensionDecision(ctx, rt, true)
	return rt, nil
}

func (s *rentalService) RejectExtension(ctx context.Context, actor domain.Actor, id int32, originalReturnDate string) (*domain.Rental, error) {
	rt, err := s.extensionDecisionTarget(ctx, actor, id, "reject")
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(domain.DateLayout, originalReturnDate)
	if err != nil {
		return nil, domain.Invalid("Invalid date format. Use YYYY-MM-DD")
	}
	restored := parsed.Format(domain.DateLayout)

	ok, err := s.rentalRepo.Transition(ctx, id, domain.RentalStatusExtensionRequested, domain.RentalStatusActive, &restored)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("No extension request for rental with status: %s", rt.Status)
	}

	rt.Status = domain.RentalStatusActive
	rt.ExpectedReturnDate = restored
	rt.IsOverdue = false
	s.notifyExtensionDecision(ctx, rt, false)
	return rt, nil
}

// extensionDecisionTarget loads and guards the rental both extension
// decisions operate on: admin only, store-scoped over either end of the
// rental, and an extension actually requested.
func (s *rentalService) extensionDecisionTarget(ctx context.Context, actor domain.Actor, id int32, verb string) (*domain.Rental, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Rental not found")
	}
	if actor.Role == domain.RoleStoreAdmin && !actor.CanAccessStore(rt.RentalStoreID, rt.ReturnStoreID) {
		return nil, domain.PermissionDenied("Permission denied. You can only %s extensions for rentals from/to your store.", verb)
	}
	if rt.Status != domain.RentalStatusExtensionRequested {
		return nil, domain.Conflict("No extension request for rental with status: %s", rt.Status)
	}
	return rt, nil
}

func (s *rentalService) CancelRental(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Rental not found")
	}

	if !actor.IsAdmin() {
		if rt.UserID != actor.UserID {
			return nil, domain.PermissionDenied("Permission denied. You can only cancel your own rentals.")
		}
		if rt.Status != domain.RentalStatusPending {
			return nil, domain.Conflict("You can only cancel pending rentals.")
		}
	}
	if actor.Role == domain.RoleStoreAdmin && !actor.CanAccessStore(rt.RentalStoreID, rt.ReturnStoreID) {
		return nil, domain.PermissionDenied("Permission denied. You can only cancel rentals from/to your store.")
	}
	if rt.Status.Terminal() {
		return nil, domain.Conflict("Cannot cancel rental with status: %s", rt.Status)
	}

	ok, err := s.rentalRepo.Transition(ctx, id, rt.Status, domain.RentalStatusCancelled, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Conflict("Cannot cancel rental with status: %s", rt.Status)
	}

	rt.Status = domain.RentalStatusCancelled
	rt.IsOverdue = false
	return rt, nil
}

func (s *rentalService) refreshOverdue(ctx context.Context) {
	today := time.Now().UTC().Format(domain.DateLayout)
	flagged, cleared, err := s.rentalRepo.RefreshOverdue(ctx, today)
	if err != nil {
		logger.Error("Failed to refresh overdue rentals", "error", err)
		return
	}
	if flagged > 0 || cleared > 0 {
		logger.Info("Refreshed overdue rentals", "flagged", flagged, "cleared", cleared)
	}
}

// Notification emails are best effort; a delivery failure never fails the
// state transition that triggered it.
func (s *rentalService) notifyApproval(ctx context.Context, rt *domain.Rental) {
	user, err := s.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		logger.Warn("Skipping rental approval email", "rental_id", rt.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendRentalApproved(ctx, user.Email, user.Name, rt.ID, rt.ExpectedReturnDate); err != nil {
		logger.Warn("Failed to send rental approval email", "rental_id", rt.ID, "error", err)
	}
}

func (s *rentalService) notifyExtensionDecision(ctx context.Context, rt *domain.Rental, approved bool) {
	user, err := s.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		logger.Warn("Skipping extension decision email", "rental_id", rt.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendExtensionDecision(ctx, user.Email, user.Name, rt.ID, approved, rt.ExpectedReturnDate); err != nil {
		logger.Warn("Failed to send extension decision email", "rental_id", rt.ID, "error", err)
	}
}
