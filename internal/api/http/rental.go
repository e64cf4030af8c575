package http

import (
	"net/http"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type createRentalRequest struct {
	EquipmentID string `json:"equipment_id"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type createRentalResponse struct {
	Rental   *domain.RentalContract `json:"rental"`
	Contract *domain.Contract       `json:"contract"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)

	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.EquipmentID == "" {
		respondError(w, r, domain.BadRequestf("equipment_id is required"))
		return
	}

	rental, contract, err := h.svc.CreateRequest(r.Context(), p.ID, req.EquipmentID, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, createRentalResponse{Rental: rental, Contract: contract})
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)

	rentals, err := h.svc.FindByClient(r.Context(), p.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.RentalFilter{
		Status: domain.RentalStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, r, domain.BadRequestf("invalid start date '%s'", raw))
			return
		}
		filter.StartDate = &t
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, r, domain.BadRequestf("invalid end date '%s'", raw))
			return
		}
		filter.EndDate = &t
	}

	rentals, err := h.svc.FindAll(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

type updateRentalStatusRequest struct {
	Status domain.RentalStatus `json:"status"`
}

func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)

	var req updateRentalStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	rental, err := h.svc.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ActiveDeliveries(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.GetActiveDeliveries(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.svc.GetRentalMetrics(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}
