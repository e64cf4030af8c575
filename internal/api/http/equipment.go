package http

import (
	"net/http"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(svc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

// specEnvelope carries the type-discriminated spec sheet; exactly one of
// the variants must be set.
type specEnvelope struct {
	ComputerSpec *domain.ComputerSpec `json:"computerSpec,omitempty"`
	PrinterSpec  *domain.PrinterSpec  `json:"printerSpec,omitempty"`
	PhoneSpec    *domain.PhoneSpec    `json:"phoneSpec,omitempty"`
}

func (e specEnvelope) spec() (domain.Spec, error) {
	var specs []domain.Spec
	if e.ComputerSpec != nil {
		specs = append(specs, e.ComputerSpec)
	}
	if e.PrinterSpec != nil {
		specs = append(specs, e.PrinterSpec)
	}
	if e.PhoneSpec != nil {
		specs = append(specs, e.PhoneSpec)
	}
	switch len(specs) {
	case 0:
		return nil, nil
	case 1:
		return specs[0], nil
	default:
		return nil, domain.BadRequestf("exactly one equipment spec must be provided")
	}
}

type createEquipmentRequest struct {
	Name           string               `json:"name"`
	Type           domain.EquipmentType `json:"type"`
	Brand          string               `json:"brand"`
	Model          string               `json:"model"`
	Description    string               `json:"description"`
	Price          decimal.Decimal      `json:"price"`
	Stock          int32                `json:"stock"`
	WarrantyPeriod string               `json:"warrantyPeriod"`
	ReleaseDate    *string              `json:"releaseDate,omitempty"`
	Image          string               `json:"image"`
	specEnvelope
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	spec, err := req.spec()
	if err != nil {
		respondError(w, r, err)
		return
	}

	eq := &domain.Equipment{
		Name:           req.Name,
		Type:           req.Type,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
		WarrantyPeriod: req.WarrantyPeriod,
		Image:          req.Image,
		Spec:           spec,
	}
	if req.ReleaseDate != nil {
		release, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			respondError(w, r, domain.BadRequestf("invalid release date '%s'", *req.ReleaseDate))
			return
		}
		eq.ReleaseDate = &release
	}

	created, err := h.svc.Create(r.Context(), eq)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

type updateEquipmentRequest struct {
	Name           *string          `json:"name,omitempty"`
	Brand          *string          `json:"brand,omitempty"`
	Model          *string          `json:"model,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Stock          *int32           `json:"stock,omitempty"`
	WarrantyPeriod *string          `json:"warrantyPeriod,omitempty"`
	Image          *string          `json:"image,omitempty"`
	specEnvelope
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateEquipmentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	spec, err := req.spec()
	if err != nil {
		respondError(w, r, err)
		return
	}

	in := service.UpdateEquipmentInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
		WarrantyPeriod: req.WarrantyPeriod,
		Image:          req.Image,
		Spec:           spec,
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type updateStockRequest struct {
	Stock int32 `json:"stock"`
}

func (h *EquipmentHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req updateStockRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := h.svc.UpdateStock(r.Context(), mux.Vars(r)["id"], req.Stock)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
