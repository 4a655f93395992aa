package stock

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the raw stock ledger.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers stock routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
}

type addStockRequest struct {
	MaterialID int64 `json:"materialId" validate:"required,gt=0"`
	Quantity   int64 `json:"quantity" validate:"required"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	balances, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list stock failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, balances)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addStockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.Add(r.Context(), req.MaterialID, req.Quantity); err != nil {
		h.logger.Error("stock intake failed", "error", err, "material_id", req.MaterialID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
