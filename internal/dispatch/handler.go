package dispatch

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Handler wires HTTP endpoints for dispatch orders.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers dispatch routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/orders", h.createOrder)
	r.Get("/today", h.today)
}

type createOrderRequest struct {
	OrderID      string             `json:"orderId" validate:"required"`
	CustomerName string             `json:"customerName" validate:"required"`
	Lines        []orderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type orderLineRequest struct {
	ProductID int64   `json:"productId" validate:"required,gt=0"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	order := Order{OrderID: req.OrderID, CustomerName: req.CustomerName}
	for _, line := range req.Lines {
		order.Lines = append(order.Lines, Line(line))
	}

	if err := h.service.CreateOrder(r.Context(), order); err != nil {
		h.logger.Error("create order failed", "error", err, "order_id", req.OrderID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *Handler) today(w http.ResponseWriter, r *http.Request) {
	lines, err := h.service.Today(r.Context())
	if err != nil {
		h.logger.Error("today dispatch failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, lines)
}
