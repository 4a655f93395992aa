package production

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the production recorder.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers production routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/components", h.recordComponent)
	r.Post("/products", h.recordProduct)
	r.Get("/today/components", h.todayComponents)
	r.Get("/today/products", h.todayProducts)
}

type recordComponentRequest struct {
	MaterialID int64 `json:"materialId" validate:"required,gt=0"`
	Quantity   int64 `json:"quantity" validate:"required"`
}

type recordProductRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required"`
}

func (h *Handler) recordComponent(w http.ResponseWriter, r *http.Request) {
	var req recordComponentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.RecordComponent(r.Context(), req.MaterialID, req.Quantity); err != nil {
		h.logger.Error("record component production failed", "error", err, "material_id", req.MaterialID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) recordProduct(w http.ResponseWriter, r *http.Request) {
	var req recordProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.RecordProduct(r.Context(), req.ProductID, req.Quantity); err != nil {
		h.logger.Error("record product production failed", "error", err, "product_id", req.ProductID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) todayComponents(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.TodayComponents(r.Context())
	if err != nil {
		h.logger.Error("today component totals failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, totals)
}

func (h *Handler) todayProducts(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.TodayProducts(r.Context())
	if err != nil {
		h.logger.Error("today product totals failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, totals)
}
