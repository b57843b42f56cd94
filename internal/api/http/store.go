package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type StoreHandler struct {
	stores service.StoreService
}

func NewStoreHandler(stores service.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.stores.ListStores(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", stores)
}

func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	store, err := h.stores.GetStore(r.Context(), id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", store)
}

type storeRequest struct {
	Name        *string `json:"store_name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
}

func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	var req storeRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.Name == nil || req.Address == nil || req.PhoneNumber == nil {
		fail(w, domain.Invalid("Missing required fields: store_name, address, phone_number"))
		return
	}

	store, err := h.stores.CreateStore(r.Context(), actor, service.StoreInput{
		Name:        *req.Name,
		Address:     *req.Address,
		PhoneNumber: *req.PhoneNumber,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Store created successfully", store)
}

func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	var req storeRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}

	store, err := h.stores.UpdateStore(r.Context(), actor, id, service.StoreUpdate{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Store updated successfully", store)
}

func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	if err := h.stores.DeleteStore(r.Context(), actor, id); err != nil {
		fail(w, err)
		return
	}
	ok(w, "Store deleted successfully", nil)
}

func (h *StoreHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	managers, err := h.stores.ListManagers(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", managers)
}
