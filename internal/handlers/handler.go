package handlers

import (
	"encoding/json"
	"net/http"

	"food-agent/internal/logger"
	"food-agent/internal/repository"
	"food-agent/internal/service"
)

type Handler struct {
	Webhook *WebhookHandler
	Menu    *MenuHandler
}

func New(svc *service.Service, menu repository.MenuRepositoryInterface, lg *logger.Logger) *Handler {
	return &Handler{
		Webhook: NewWebhookHandler(svc, lg),
		Menu:    NewMenuHandler(menu, lg),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}
