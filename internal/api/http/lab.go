package http

import (
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

type LabHandler struct {
	svc service.LabService
}

func NewLabHandler(svc service.LabService) *LabHandler {
	return &LabHandler{svc: svc}
}

type reportBrokenRequest struct {
	RentalID string `json:"rental_id"`
	Notes    string `json:"notes"`
}

func (h *LabHandler) ReportBroken(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)

	var req reportBrokenRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.RentalID == "" {
		respondError(w, r, domain.BadRequestf("rental_id is required"))
		return
	}

	lab, err := h.svc.ReportBrokenEquipment(r.Context(), p.ID, req.RentalID, req.Notes)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, lab)
}

func (h *LabHandler) MarkRepaired(w http.ResponseWriter, r *http.Request) {
	lab, err := h.svc.MarkAsRepaired(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, lab)
}

func (h *LabHandler) Create(w http.ResponseWriter, r *http.Request) {
	var lab domain.Lab
	if err := decodeBody(r, &lab); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), &lab)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *LabHandler) List(w http.ResponseWriter, r *http.Request) {
	labs, err := h.svc.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, labs)
}

func (h *LabHandler) Get(w http.ResponseWriter, r *http.Request) {
	lab, err := h.svc.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, lab)
}

func (h *LabHandler) Update(w http.ResponseWriter, r *http.Request) {
	var lab domain.Lab
	if err := decodeBody(r, &lab); err != nil {
		respondError(w, r, err)
		return
	}
	lab.ID = mux.Vars(r)["id"]

	updated, err := h.svc.Update(r.Context(), &lab)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *LabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
