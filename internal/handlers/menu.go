package handlers

import (
	"net/http"

	"food-agent/internal/domain"
	"food-agent/internal/logger"
	"food-agent/internal/repository"
)

type MenuHandler struct {
	menu repository.MenuRepositoryInterface
	lg   *logger.Logger
}

func NewMenuHandler(menu repository.MenuRepositoryInterface, lg *logger.Logger) *MenuHandler {
	return &MenuHandler{menu: menu, lg: lg}
}

// List is a passthrough read of the whole menu for the web widget.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.ListAll(r.Context())
	if err != nil {
		h.lg.Error("menu_list_failed", err, nil)
		writeProblem(w, http.StatusInternalServerError, "db_error", "could not load menu")
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, domain.MenuResponse{FoodItems: items})
}
