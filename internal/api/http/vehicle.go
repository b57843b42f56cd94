package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type VehicleHandler struct {
	vehicles service.VehicleService
}

func NewVehicleHandler(vehicles service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.vehicles.ListTypes(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", types)
}

func (h *VehicleHandler) GetType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	vt, err := h.vehicles.GetType(r.Context(), id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", vt)
}

type vehicleTypeRequest struct {
	Brand          *string  `json:"brand"`
	Model          *string  `json:"model"`
	DailyRentPrice *float64 `json:"daily_rent_price"`
}

func (h *VehicleHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	var req vehicleTypeRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.Brand == nil || req.Model == nil || req.DailyRentPrice == nil {
		fail(w, domain.Invalid("Missing required fields: brand, model, daily_rent_price"))
		return
	}

	vt, err := h.vehicles.CreateType(r.Context(), actor, service.VehicleTypeInput{
		Brand:          *req.Brand,
		Model:          *req.Model,
		DailyRentPrice: *req.DailyRentPrice,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle type created successfully", vt)
}

func (h *VehicleHandler) UpdateType(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	var req vehicleTypeRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}

	vt, err := h.vehicles.UpdateType(r.Context(), actor, id, service.VehicleTypeUpdate{
		Brand:          req.Brand,
		Model:          req.Model,
		DailyRentPrice: req.DailyRentPrice,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle type updated successfully", vt)
}

func (h *VehicleHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	if err := h.vehicles.DeleteType(r.Context(), actor, id); err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle type deleted successfully", nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	vehicles, err := h.vehicles.ListVehicles(r.Context(), actor)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", vehicles)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	v, err := h.vehicles.GetVehicle(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", v)
}

type vehicleRequest struct {
	TypeID          *int32  `json:"type_id"`
	StoreID         *int32  `json:"store_id"`
	ManufactureDate *string `json:"manufacture_date"`
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	var req vehicleRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.TypeID == nil || req.StoreID == nil || req.ManufactureDate == nil {
		fail(w, domain.Invalid("Missing required fields: type_id, manufacture_date, store_id"))
		return
	}

	v, err := h.vehicles.CreateVehicle(r.Context(), actor, service.VehicleInput{
		TypeID:          *req.TypeID,
		StoreID:         *req.StoreID,
		ManufactureDate: *req.ManufactureDate,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle created successfully", v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	var req vehicleRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}

	v, err := h.vehicles.UpdateVehicle(r.Context(), actor, id, service.VehicleUpdate{
		TypeID:          req.TypeID,
		StoreID:         req.StoreID,
		ManufactureDate: req.ManufactureDate,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle updated successfully", v)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	if err := h.vehicles.DeleteVehicle(r.Context(), actor, id); err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle deleted successfully", nil)
}
