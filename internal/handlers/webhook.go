package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"food-agent/internal/dialog"
	"food-agent/internal/domain"
	"food-agent/internal/logger"
	"food-agent/internal/service"
)

type WebhookHandler struct {
	svc *service.Service
	lg  *logger.Logger
}

func NewWebhookHandler(svc *service.Service, lg *logger.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, lg: lg}
}

// Handle is the fulfillment endpoint. Every path ends in a 200 with a
// fulfillment text: the upstream agent treats non-200 as a hard failure and
// the user should always get words back, not a fault.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	lg := h.lg.WithRequest(uuid.NewString())

	var req domain.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		lg.Debug("webhook_bad_payload", map[string]any{"err": err.Error()})
		respond(w, service.FallbackMessage)
		return
	}

	intent := domain.ParseIntent(req.QueryResult.Intent.DisplayName)
	conversationID := dialog.SessionID(req.QueryResult.OutputContexts)
	lg.Info("webhook_received", map[string]any{
		"intent":       intent.String(),
		"conversation": conversationID,
	})

	params := req.QueryResult.Parameters
	var text string
	switch intent {
	case domain.IntentAddItems:
		text = h.addItems(r.Context(), lg, conversationID, params)
	case domain.IntentRemoveItems:
		text = h.removeItems(r.Context(), lg, conversationID, params)
	case domain.IntentShowCart:
		text = h.showCart(r.Context(), lg, conversationID)
	case domain.IntentCompleteOrder:
		text = h.completeOrder(r.Context(), lg, conversationID)
	case domain.IntentTrackOrder:
		text = h.trackOrder(r.Context(), lg, params)
	default:
		text = service.FallbackMessage
	}

	respond(w, text)
}

func (h *WebhookHandler) addItems(ctx context.Context, lg *logger.Logger, conversationID string, p domain.Parameters) string {
	if conversationID == "" {
		return service.FallbackMessage
	}
	cart, err := h.svc.Cart.AddItems(ctx, conversationID, p.FoodItems, p.Quantities)
	if err != nil {
		return h.errorText(lg, "add_items_failed", err)
	}
	return service.AddedMessage(cart)
}

func (h *WebhookHandler) removeItems(ctx context.Context, lg *logger.Logger, conversationID string, p domain.Parameters) string {
	if conversationID == "" {
		return service.NoActiveOrderMessage
	}
	removed, missing, err := h.svc.Cart.RemoveItems(ctx, conversationID, p.FoodItems)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return service.NoActiveOrderMessage
		}
		return h.errorText(lg, "remove_items_failed", err)
	}
	return service.RemovedMessage(removed, missing)
}

func (h *WebhookHandler) showCart(ctx context.Context, lg *logger.Logger, conversationID string) string {
	if conversationID == "" {
		return service.EmptyCartMessage
	}
	cart, ok, err := h.svc.Cart.Show(ctx, conversationID)
	if err != nil {
		return h.errorText(lg, "show_cart_failed", err)
	}
	if !ok {
		return service.EmptyCartMessage
	}
	return service.ShowCartMessage(cart)
}

func (h *WebhookHandler) completeOrder(ctx context.Context, lg *logger.Logger, conversationID string) string {
	if conversationID == "" {
		return service.CartNotFoundMessage
	}
	order, err := h.svc.Orders.Complete(ctx, conversationID)
	if err != nil {
		var unknown *domain.UnknownItemError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return service.CartNotFoundMessage
		case errors.As(err, &unknown):
			return service.UnknownItemMessage(unknown.Name)
		default:
			return h.errorText(lg, "complete_order_failed", err)
		}
	}
	lg.Info("order_placed", map[string]any{"order_number": order.OrderNumber, "total": order.Total})
	return service.OrderPlacedMessage(order)
}

func (h *WebhookHandler) trackOrder(ctx context.Context, lg *logger.Logger, p domain.Parameters) string {
	status, found, err := h.svc.Tracker.Track(ctx, p.OrderID)
	if err != nil {
		return h.errorText(lg, "track_order_failed", err)
	}
	if !found {
		return service.InvalidOrderIDMessage
	}
	return service.TrackStatusMessage(status)
}

// errorText maps recoverable validation errors to their corrective message
// and everything else to the generic unavailable text.
func (h *WebhookHandler) errorText(lg *logger.Logger, action string, err error) string {
	var unknown *domain.UnknownItemError
	switch {
	case errors.Is(err, domain.ErrQuantityMismatch):
		return service.QuantityMismatchMessage
	case errors.As(err, &unknown):
		return service.UnknownItemMessage(unknown.Name)
	default:
		lg.Error(action, err, nil)
		return service.UnavailableMessage
	}
}

func respond(w http.ResponseWriter, text string) {
	writeJSON(w, http.StatusOK, domain.WebhookResponse{FulfillmentText: text})
}
