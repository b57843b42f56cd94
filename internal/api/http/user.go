package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// pathID parses the numeric path variable registered as {id}.
func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.Invalid("Invalid id: %s", raw)
	}
	return int32(id), nil
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	users, err := h.users.ListUsers(r.Context(), actor)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	user, err := h.users.GetUser(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", user)
}

type permissionsRequest struct {
	IsAdmin        *bool            `json:"is_admin"`
	ManagedStoreID *json.RawMessage `json:"managed_store_id"`
}

func (h *UserHandler) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}

	var req permissionsRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}

	// managed_store_id distinguishes absent (no change) from an explicit
	// null (clear the store, widening the admin to global scope).
	in := service.PermissionsUpdate{IsAdmin: req.IsAdmin}
	if req.ManagedStoreID != nil {
		in.ManagedStoreSet = true
		if string(*req.ManagedStoreID) != "null" {
			var storeID int32
			if err := json.Unmarshal(*req.ManagedStoreID, &storeID); err != nil {
				fail(w, domain.Invalid("Invalid managed_store_id"))
				return
			}
			in.ManagedStoreID = &storeID
		}
	}

	user, err := h.users.UpdatePermissions(r.Context(), actor, id, in)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "User permissions updated successfully", user)
}
