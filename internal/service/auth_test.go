package service_test

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/security"
	"fleetrent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	input := service.RegisterInput{
		Name:        "Alice",
		Email:       "alice@test.com",
		Password:    "secret123",
		Address:     "1 Main St",
		PhoneNumber: "555-0100",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(nil, repository.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		tokens.On("GenerateAccessToken", mock.Anything, "alice@test.com").Return("access", nil)
		tokens.On("GenerateRefreshToken", mock.Anything, "alice@test.com").Return("refresh", nil)

		user, access, refresh, err := svc.Register(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "access", access)
		assert.Equal(t, "refresh", refresh)
		assert.False(t, user.IsAdmin)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	})

	t.Run("Email taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(&domain.User{ID: 1}, nil)

		_, _, _, err := svc.Register(ctx, input)
		assert.Equal(t, domain.CodeConflict, domain.CodeOf(err))
		assert.Contains(t, err.Error(), "Email already registered")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &domain.User{ID: 1, Email: "alice@test.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(user, nil)
		tokens.On("GenerateAccessToken", int32(1), "alice@test.com").Return("access", nil)
		tokens.On("GenerateRefreshToken", int32(1), "alice@test.com").Return("refresh", nil)

		res, access, refresh, err := svc.Login(ctx, "alice@test.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, res.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(user, nil)

		_, _, _, err := svc.Login(ctx, "alice@test.com", "nope")
		assert.Equal(t, domain.CodeUnauthorized, domain.CodeOf(err))
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "bob@test.com").Return(nil, repository.ErrNoRows)

		_, _, _, err := svc.Login(ctx, "bob@test.com", "secret123")
		assert.Equal(t, domain.CodeUnauthorized, domain.CodeOf(err))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Success issues access token only", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		claims := &security.UserClaims{UserID: 1, Email: "alice@test.com", Type: security.TokenTypeRefresh}
		tokens.On("ValidateToken", "refresh-token").Return(claims, nil)
		tokens.On("GenerateAccessToken", int32(1), "alice@test.com").Return("new-access", nil)

		access, err := svc.Refresh(ctx, "refresh-token")
		assert.NoError(t, err)
		assert.Equal(t, "new-access", access)
		tokens.AssertNotCalled(t, "GenerateRefreshToken", mock.Anything, mock.Anything)
	})

	t.Run("Access token rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		claims := &security.UserClaims{UserID: 1, Type: security.TokenTypeAccess}
		tokens.On("ValidateToken", "access-token").Return(claims, nil)

		_, err := svc.Refresh(ctx, "access-token")
		assert.Equal(t, domain.CodeUnauthorized, domain.CodeOf(err))
	})

	t.Run("Invalid token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		tokens.On("ValidateToken", "garbage").Return(nil, security.ErrInvalidToken)

		_, err := svc.Refresh(ctx, "garbage")
		assert.Equal(t, domain.CodeUnauthorized, domain.CodeOf(err))
	})
}
