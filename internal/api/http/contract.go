package http

import (
	"net/http"

	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

type ContractHandler struct {
	svc service.ContractService
}

func NewContractHandler(svc service.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.svc.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)

	contracts, err := h.svc.FindByUser(r.Context(), p.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)

	detail, err := h.svc.FindOne(r.Context(), mux.Vars(r)["contractId"], p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}
