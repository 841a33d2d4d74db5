package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gearshare-backend/internal/service"
)

// ShopkeeperHandler serves the storefront reads renters use to browse a
// shop: the keeper's profile and their inventory.
type ShopkeeperHandler struct {
	userService      service.UserService
	equipmentService service.EquipmentService
}

func NewShopkeeperHandler(userService service.UserService, equipmentService service.EquipmentService) *ShopkeeperHandler {
	return &ShopkeeperHandler{userService: userService, equipmentService: equipmentService}
}

func (h *ShopkeeperHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetShopkeeper(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *ShopkeeperHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.userService.GetShopkeeper(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	items, err := h.equipmentService.ListMyEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
