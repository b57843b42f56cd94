package service

import (
	"context"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type storeService struct {
	storeRepo  repository.StoreRepository
	userRepo   repository.UserRepository
	rentalRepo repository.RentalRepository
}

func NewStoreService(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	rentalRepo repository.RentalRepository,
) StoreService {
	return &storeService{storeRepo: storeRepo, userRepo: userRepo, rentalRepo: rentalRepo}
}

func (s *storeService) ListStores(ctx context.Context) ([]domain.Store, error) {
	return s.storeRepo.List(ctx)
}

func (s *storeService) GetStore(ctx context.Context, id int32) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Store not found")
	}
	return store, nil
}

func (s *storeService) CreateStore(ctx context.Context, actor domain.Actor, in StoreInput) (*domain.Store, error) {
	if !actor.IsSuper() {
		return nil, domain.PermissionDenied("Permission denied. Global admin access required.")
	}
	store := &domain.Store{
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) UpdateStore(ctx context.Context, actor domain.Actor, id int32, in StoreUpdate) (*domain.Store, error) {
	if !actor.IsSuper() {
		return nil, domain.PermissionDenied("Permission denied. Global admin access required.")
	}
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Store not found")
	}

	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.PhoneNumber != nil {
		store.PhoneNumber = *in.PhoneNumber
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) DeleteStore(ctx context.Context, actor domain.Actor, id int32) error {
	if !actor.IsSuper() {
		return domain.PermissionDenied("Permission denied. Global admin access required.")
	}
	if _, err := s.storeRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Store not found")
	}

	managers, err := s.userRepo.CountManagers(ctx, id)
	if err != nil {
		return err
	}
	if managers > 0 {
		return domain.Conflict("Cannot delete store with assigned managers")
	}

	inFlight, err := s.rentalRepo.HasInFlightByStore(ctx, id)
	if err != nil {
		return err
	}
	if inFlight {
		return domain.Conflict("Cannot delete store with active rentals")
	}

	return s.storeRepo.Delete(ctx, id)
}

func (s *storeService) ListManagers(ctx context.Context, actor domain.Actor, storeID int32) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	if _, err := s.storeRepo.GetByID(ctx, storeID); err != nil {
		return nil, notFoundOr(err, "Store not found")
	}
	return s.userRepo.ListManagers(ctx, storeID)
}
