package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type TransferHandler struct {
	transfers service.TransferService
}

func NewTransferHandler(transfers service.TransferService) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	transfers, err := h.transfers.ListTransfers(r.Context(), actor)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", transfers)
}

func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	t, err := h.transfers.GetTransfer(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", t)
}

type transferRequest struct {
	VehicleID     *int32 `json:"vehicle_id"`
	SourceStoreID *int32 `json:"source_store_id"`
	DestStoreID   *int32 `json:"destination_store_id"`
	Notes         string `json:"notes"`
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	var req transferRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.VehicleID == nil || req.SourceStoreID == nil || req.DestStoreID == nil {
		fail(w, domain.Invalid("Missing required fields: vehicle_id, source_store_id, destination_store_id"))
		return
	}

	t, err := h.transfers.CreateTransfer(r.Context(), actor, service.TransferInput{
		VehicleID:     *req.VehicleID,
		SourceStoreID: *req.SourceStoreID,
		DestStoreID:   *req.DestStoreID,
		Notes:         req.Notes,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle transfer initiated successfully", t)
}

func (h *TransferHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	t, err := h.transfers.ApproveTransfer(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle transfer approved successfully", t)
}

func (h *TransferHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	t, err := h.transfers.CompleteTransfer(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle transfer completed successfully", t)
}

func (h *TransferHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, err)
		return
	}
	t, err := h.transfers.CancelTransfer(r.Context(), actor, id)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Vehicle transfer cancelled successfully", t)
}
