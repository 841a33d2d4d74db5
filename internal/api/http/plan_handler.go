package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gearshare-backend/internal/service"
)

type PlanHandler struct {
	planService service.PaymentPlanService
}

func NewPlanHandler(planService service.PaymentPlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

type planRequest struct {
	Title        string `json:"title" validate:"required"`
	DurationDays int    `json:"duration_days" validate:"required,gt=0"`
}

func (h *PlanHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	plan, err := h.planService.AddPlan(r.Context(), req.Title, req.DurationDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	plan, err := h.planService.UpdatePlan(r.Context(), mux.Vars(r)["id"], req.Title, req.DurationDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.planService.DeletePlan(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.ListPlans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}
