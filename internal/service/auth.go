package service

import (
	"context"
	"errors"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, "", "", domain.Conflict("Email already registered")
	} else if !errors.Is(err, repository.ErrNoRows) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Name:         in.Name,
		Address:      in.Address,
		PhoneNumber:  in.PhoneNumber,
		JoinDate:     time.Now().UTC().Format(domain.DateLayout),
		Email:        in.Email,
		PasswordHash: string(hash),
		IsAdmin:      false, // registration never grants admin
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokens(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", domain.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", domain.Unauthorized("Invalid email or password")
	}

	access, refresh, err := s.generateTokens(user)
	return user, access, refresh, err
}

// Refresh issues a new access token only; handing out a fresh refresh
// token each time would allow an unlimited refresh chain.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", domain.Unauthorized("Invalid or expired refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", domain.Unauthorized("Invalid or expired refresh token")
	}
	return s.tokens.GenerateAccessToken(claims.UserID, claims.Email)
}

func (s *authService) generateTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
