package bom

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Handler wires HTTP endpoints for bill-of-materials editing.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers BOM routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products/{productID}", h.list)
	r.Post("/", h.add)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

type addRequirementRequest struct {
	ProductID  int64   `json:"productId" validate:"required,gt=0"`
	MaterialID int64   `json:"materialId" validate:"required,gt=0"`
	QtyPerUnit float64 `json:"qtyPerUnit" validate:"required,gt=0"`
}

type updateRequirementRequest struct {
	MaterialID int64   `json:"materialId" validate:"required,gt=0"`
	QtyPerUnit float64 `json:"qtyPerUnit" validate:"required,gt=0"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	reqs, err := h.service.ListRequirements(r.Context(), productID)
	if err != nil {
		h.logger.Error("list requirements failed", "error", err, "product_id", productID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reqs)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addRequirementRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	created, err := h.service.AddRequirement(r.Context(), req.ProductID, req.MaterialID, req.QtyPerUnit)
	if err != nil {
		h.logger.Error("add requirement failed", "error", err, "product_id", req.ProductID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid requirement id")
		return
	}
	var req updateRequirementRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdateRequirement(r.Context(), id, req.MaterialID, req.QtyPerUnit); err != nil {
		h.logger.Error("update requirement failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid requirement id")
		return
	}
	if err := h.service.RemoveRequirement(r.Context(), id); err != nil {
		h.logger.Error("remove requirement failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
