package service

import (
	"context"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
}

func NewUserService(userRepo repository.UserRepository, storeRepo repository.StoreRepository) UserService {
	return &userService{userRepo: userRepo, storeRepo: storeRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, in ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	// Store-admins only see regular users; admin accounts stay between
	// supers.
	if actor.Role == domain.RoleStoreAdmin {
		return s.userRepo.ListRegular(ctx)
	}
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, actor domain.Actor, id int32) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.PermissionDenied("Permission denied. Admin access required.")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	if actor.Role == domain.RoleStoreAdmin && user.IsAdmin {
		return nil, domain.PermissionDenied("Permission denied. You can only view regular users.")
	}
	return user, nil
}

func (s *userService) UpdatePermissions(ctx context.Context, actor domain.Actor, userID int32, in PermissionsUpdate) (*domain.User, error) {
	if !actor.IsSuper() {
		return nil, domain.PermissionDenied("Permission denied. Global admin access required.")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}

	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	if in.ManagedStoreSet {
		if in.ManagedStoreID != nil {
			if _, err := s.storeRepo.GetByID(ctx, *in.ManagedStoreID); err != nil {
				return nil, notFoundOr(err, "Store not found")
			}
		}
		user.ManagedStoreID = in.ManagedStoreID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
