package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"gearshare-backend/internal/api/http/middleware"
	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

type EquipmentHandler struct {
	equipmentService service.EquipmentService
}

func NewEquipmentHandler(equipmentService service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

type equipmentRequest struct {
	Name           string   `json:"name" validate:"required"`
	Price          string   `json:"price" validate:"required"`
	Description    string   `json:"description"`
	Categories     []string `json:"categories"`
	PaymentPlanIDs []string `json:"payment_plan_ids" validate:"required,min=1"`
	Images         []string `json:"images" validate:"required,min=1"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Renting Rented"`
}

func (r equipmentRequest) toInput() service.EquipmentInput {
	return service.EquipmentInput{
		Name:           r.Name,
		Price:          r.Price,
		Description:    r.Description,
		Categories:     r.Categories,
		PaymentPlanIDs: r.PaymentPlanIDs,
		Images:         r.Images,
	}
}

func (h *EquipmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	eq, err := h.equipmentService.AddEquipment(r.Context(), claims.UserID, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	equipmentID := mux.Vars(r)["id"]

	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	eq, err := h.equipmentService.UpdateEquipment(r.Context(), claims.UserID, equipmentID, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	equipmentID := mux.Vars(r)["id"]

	if err := h.equipmentService.DeleteEquipment(r.Context(), claims.UserID, equipmentID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	equipmentID := mux.Vars(r)["id"]

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	eq, err := h.equipmentService.SetAvailability(r.Context(), claims.UserID, equipmentID, domain.EquipmentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	eq, err := h.equipmentService.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	items, err := h.equipmentService.ListMyEquipment(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Search filters the catalog. Query parameters: q for free text,
// category (repeatable or comma-separated) for category selection.
func (h *EquipmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var categories []string
	for _, raw := range r.URL.Query()["category"] {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	items, err := h.equipmentService.SearchEquipment(r.Context(), query, categories)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
