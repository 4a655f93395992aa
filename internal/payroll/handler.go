package payroll

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the employee ledger.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers payroll routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/{id}/work", h.addWork)
	r.Post("/{id}/payments", h.addPayment)
	r.Get("/{id}/history", h.history)
}

type createEmployeeRequest struct {
	Name      string  `json:"name" validate:"required"`
	Role      string  `json:"role"`
	Contact   string  `json:"contact"`
	DailyRate float64 `json:"dailyRate"`
}

// Amounts carry no validate tag: zero and negative entries are legal ledger
// corrections, the service only rejects non-finite values.
type workRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type paymentRequest struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.ListEmployees(r.Context())
	if err != nil {
		h.logger.Error("list employees failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, employees)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	created, err := h.service.CreateEmployee(r.Context(), req.Name, req.Role, req.Contact, req.DailyRate)
	if err != nil {
		h.logger.Error("create employee failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) addWork(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	var req workRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.service.AddWork(r.Context(), id, req.Description, req.Amount); err != nil {
		h.logger.Error("add work failed", "error", err, "employee_id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *Handler) addPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	var req paymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.service.AddPayment(r.Context(), id, req.Amount, req.Note); err != nil {
		h.logger.Error("add payment failed", "error", err, "employee_id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	hist, err := h.service.History(r.Context(), id)
	if err != nil {
		h.logger.Error("employee history failed", "error", err, "employee_id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, hist)
}

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid employee id")
		return 0, false
	}
	return id, true
}
