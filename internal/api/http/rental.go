package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	rentals, err := h.rentals.ListRentals(r.Context(), actor)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	rental, err := h.rentals.GetRental(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", rental)
}

type rentalRequest struct {
	RentalStoreID      *int32  `json:"rental_store_id"`
	ReturnStoreID      *int32  `json:"return_store_id"`
	VehicleTypeID      *int32  `json:"vehicle_type_id"`
	ExpectedReturnDate *string `json:"expected_return_date"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	var req rentalRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.RentalStoreID == nil || req.ReturnStoreID == nil || req.VehicleTypeID == nil || req.ExpectedReturnDate == nil {
		fail(w, domain.Invalid("Missing required fields: rental_store_id, return_store_id, vehicle_type_id, expected_return_date"))
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), actor, service.RentalInput{
		RentalStoreID:      *req.RentalStoreID,
		ReturnStoreID:      *req.ReturnStoreID,
		VehicleTypeID:      *req.VehicleTypeID,
		ExpectedReturnDate: *req.ExpectedReturnDate,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Rental request created successfully", rental)
}

type approveRentalRequest struct {
	VehicleID *int32 `json:"vehicle_id"`
}

func (h *RentalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	var req approveRentalRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.VehicleID == nil {
		fail(w, domain.Invalid("Vehicle ID is required"))
		return
	}

	rental, err := h.rentals.ApproveRental(r.Context(), actor, id, *req.VehicleID)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Rental approved successfully", rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	rental, err := h.rentals.ReturnRental(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Rental returned successfully", rental)
}

type extendRequest struct {
	NewExpectedReturnDate *string `json:"new_expected_return_date"`
}

func (h *RentalHandler) RequestExtension(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	var req extendRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.NewExpectedReturnDate == nil {
		fail(w, domain.Invalid("New expected return date is required"))
		return
	}

	rental, err := h.rentals.RequestExtension(r.Context(), actor, id, *req.NewExpectedReturnDate)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Extension requested successfully", rental)
}

func (h *RentalHandler) ApproveExtension(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	rental, err := h.rentals.ApproveExtension(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Extension approved successfully", rental)
}

type rejectExtensionRequest struct {
	OriginalReturnDate *string `json:"original_return_date"`
}

func (h *RentalHandler) RejectExtension(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	var req rejectExtensionRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.OriginalReturnDate == nil {
		fail(w, domain.Invalid("Original return date is required"))
		return
	}

	rental, err := h.rentals.RejectExtension(r.Context(), actor, id, *req.OriginalReturnDate)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Extension rejected successfully", rental)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	rental, err := h.rentals.CancelRental(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Rental cancelled successfully", rental)
}
