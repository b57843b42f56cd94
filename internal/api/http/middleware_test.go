package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *mockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *mockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *mockUserRepo) ListRegular(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *mockUserRepo) ListManagers(ctx context.Context, storeID int32) ([]domain.User, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *mockUserRepo) CountManagers(ctx context.Context, storeID int32) (int32, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int32), args.Error(1)
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Generates id when absent", func(t *testing.T) {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestIDFrom(r.Context())
		})

		rec := httptest.NewRecorder()
		RequestIDMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("Preserves caller-provided id", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		RequestIDMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	storeID := int32(3)
	adminUser := &domain.User{ID: 42, Email: "admin@test.com", IsAdmin: true, ManagedStoreID: &storeID}

	next := func(captured *domain.Actor) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := actorFrom(r.Context())
			assert.True(t, ok)
			*captured = actor
		})
	}

	t.Run("Valid token resolves actor", func(t *testing.T) {
		tokens := new(mockTokenManager)
		users := new(mockUserRepo)
		mw := NewAuthMiddleware(tokens, users)

		tokens.On("ValidateToken", "good-token").Return(&security.UserClaims{UserID: 42, Type: security.TokenTypeAccess}, nil)
		users.On("GetByID", mock.Anything, int32(42)).Return(adminUser, nil)

		var actor domain.Actor
		req := httptest.NewRequest(http.MethodGet, "/api/rentals", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		mw.Require(next(&actor)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.RoleStoreAdmin, actor.Role)
		assert.Equal(t, storeID, actor.StoreID)
	})

	t.Run("Missing token rejected", func(t *testing.T) {
		mw := NewAuthMiddleware(new(mockTokenManager), new(mockUserRepo))

		rec := httptest.NewRecorder()
		mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rentals", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Refresh token rejected on access routes", func(t *testing.T) {
		tokens := new(mockTokenManager)
		mw := NewAuthMiddleware(tokens, new(mockUserRepo))

		tokens.On("ValidateToken", "refresh-token").Return(&security.UserClaims{UserID: 42, Type: security.TokenTypeRefresh}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals", nil)
		req.Header.Set("Authorization", "Bearer refresh-token")
		rec := httptest.NewRecorder()
		mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown user rejected", func(t *testing.T) {
		tokens := new(mockTokenManager)
		users := new(mockUserRepo)
		mw := NewAuthMiddleware(tokens, users)

		tokens.On("ValidateToken", "orphan-token").Return(&security.UserClaims{UserID: 9, Type: security.TokenTypeAccess}, nil)
		users.On("GetByID", mock.Anything, int32(9)).Return(nil, repository.ErrNoRows)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals", nil)
		req.Header.Set("Authorization", "Bearer orphan-token")
		rec := httptest.NewRecorder()
		mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
