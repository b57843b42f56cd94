package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRespondEnvelope(t *testing.T) {
	t.Run("Success carries code and data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ok(rec, "Success", map[string]int{"n": 1})

		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		env := decodeEnvelope(t, rec)
		assert.Equal(t, 200, env.Code)
		assert.Equal(t, "Success", env.Msg)
		assert.NotNil(t, env.Data)
	})

	t.Run("Data omitted when nil", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ok(rec, "Store deleted successfully", nil)

		assert.NotContains(t, rec.Body.String(), `"data"`)
	})
}

func TestFailMapsDomainCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"Invalid", domain.Invalid("Invalid date format. Use YYYY-MM-DD"), 400, "Invalid date format. Use YYYY-MM-DD"},
		{"Unauthorized", domain.Unauthorized("Invalid email or password"), 401, "Invalid email or password"},
		{"Forbidden", domain.PermissionDenied("Permission denied. Admin access required."), 403, "Permission denied. Admin access required."},
		{"NotFound", domain.NotFound("Rental not found"), 404, "Rental not found"},
		{"Conflict", domain.Conflict("Vehicle is already rented"), 409, "Vehicle is already rented"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			fail(rec, tc.err)

			assert.Equal(t, tc.code, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tc.code, env.Code)
			assert.Equal(t, tc.msg, env.Msg)
		})
	}

	t.Run("Unknown errors are masked as 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		fail(rec, errors.New("pq: connection refused"))

		assert.Equal(t, 500, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Internal server error", env.Msg)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})
}
