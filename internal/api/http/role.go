package http

import (
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

type RoleHandler struct {
	svc service.RoleService
}

func NewRoleHandler(svc service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var role domain.Role
	if err := decodeBody(r, &role); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), &role)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, roles)
}

func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	role, err := h.svc.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, role)
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var role domain.Role
	if err := decodeBody(r, &role); err != nil {
		respondError(w, r, err)
		return
	}
	role.ID = mux.Vars(r)["id"]

	updated, err := h.svc.Update(r.Context(), &role)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
