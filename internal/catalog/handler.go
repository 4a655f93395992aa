package catalog

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Handler wires HTTP endpoints for catalog administration.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers catalog routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/materials", h.listMaterials)
	r.Post("/materials", h.createMaterial)
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Put("/products/{id}", h.renameProduct)
	r.Post("/products/{id}/recompute", h.recomputeProduct)
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) listMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.service.ListMaterials(r.Context())
	if err != nil {
		h.logger.Error("list materials failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, materials)
}

func (h *Handler) createMaterial(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	material, err := h.service.AddMaterial(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("create material failed", "error", err, "name", req.Name)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, material)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("list products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	product, err := h.service.AddProduct(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("create product failed", "error", err, "name", req.Name)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) renameProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	var req nameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.RenameProduct(r.Context(), id, req.Name); err != nil {
		h.logger.Error("rename product failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) recomputeProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	onHand, err := h.service.RecomputeOnHand(r.Context(), id)
	if err != nil {
		h.logger.Error("recompute on-hand failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int64{"onHand": onHand})
}
