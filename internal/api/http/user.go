package http

import (
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserRequest struct {
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	DNI      string   `json:"dni"`
	Phone    string   `json:"phone"`
	Roles    []string `json:"roles"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user := &domain.User{
		FullName: req.FullName,
		Email:    req.Email,
		DNI:      req.DNI,
		Phone:    req.Phone,
		Roles:    req.Roles,
	}
	created, err := h.svc.Create(r.Context(), user, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateUserInput
	if err := decodeBody(r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type updateRolesRequest struct {
	Roles []string `json:"roles"`
}

func (h *UserHandler) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	var req updateRolesRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.svc.UpdateRoles(r.Context(), mux.Vars(r)["id"], req.Roles)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.ToggleStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
