package http

import (
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

type DeliveryHandler struct {
	svc service.DeliveryService
}

func NewDeliveryHandler(svc service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var delivery domain.Delivery
	if err := decodeBody(r, &delivery); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), &delivery)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.svc.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, deliveries)
}

func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	delivery, err := h.svc.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, delivery)
}

func (h *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateDeliveryInput
	if err := decodeBody(r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
