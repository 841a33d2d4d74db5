package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository"
	"gearshare-backend/internal/security"
	"gearshare-backend/internal/service"
	"gearshare-backend/internal/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// statusForError maps service errors onto HTTP status codes. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNoImages),
		errors.Is(err, service.ErrNoPlans),
		errors.Is(err, service.ErrUnknownPlan),
		errors.Is(err, service.ErrInvalidStatusFlag),
		errors.Is(err, service.ErrPlanFieldsEmpty),
		errors.Is(err, service.ErrEmptyReply),
		errors.Is(err, service.ErrPlanNotAccepted),
		errors.Is(err, service.ErrOwnEquipment),
		errors.Is(err, utils.ErrPriceRequired),
		errors.Is(err, utils.ErrPriceInvalid),
		errors.Is(err, utils.ErrPriceNotPositive),
		errors.Is(err, utils.ErrPricePrecision):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrNotRentalParty),
		errors.Is(err, service.ErrNotYourMessage),
		errors.Is(err, service.ErrCannotDeleteAdmin):
		return http.StatusForbidden

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrEquipmentNotFound),
		errors.Is(err, service.ErrRentalNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrAlreadyRequested),
		errors.Is(err, service.ErrPlanTitleTaken),
		errors.Is(err, service.ErrEquipmentOnLoan),
		errors.Is(err, service.ErrNotRequested),
		errors.Is(err, service.ErrNotReceived),
		errors.Is(err, service.ErrReturnPending),
		errors.Is(err, service.ErrReturnNotPending),
		errors.Is(err, service.ErrNotRepliable):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
