package http

import (
	"net/http"
	"strings"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/security"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with a uuid and logs it on
// completion.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), requestID)))

		logger.WithRequest(requestID).Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// AuthMiddleware validates the bearer token, loads the user record and
// resolves the actor once so handlers never re-derive roles.
type AuthMiddleware struct {
	tokens   security.TokenManager
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens security.TokenManager, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, userRepo: userRepo}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			fail(w, domain.Unauthorized("Authorization token is not provided"))
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			fail(w, domain.Unauthorized("Invalid or expired token"))
			return
		}
		if claims.Type != security.TokenTypeAccess {
			fail(w, domain.Unauthorized("Access token required"))
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			fail(w, domain.Unauthorized("Invalid or expired token"))
			return
		}

		ctx := withActor(r.Context(), domain.ActorFor(user))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return header
}
