package category

import (
	"encoding/json"
	"net/http"

	"github.com/chasselife/xpnse/internal/transport"
	"github.com/chasselife/xpnse/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetAll() ([]*Category, error)
	GetByID(id string) (*Category, error)
	GetByExpenseID(expenseID string) ([]*Category, error)
	Create(dto CreateCategoryDTO) (*Category, error)
	Update(id string, dto UpdateCategoryDTO) (*Category, error)
	Delete(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	// scoped listing when ?expenseId= is present
	if expenseID := r.URL.Query().Get("expenseId"); expenseID != "" {
		categories, err := h.Service.GetByExpenseID(expenseID)
		if err != nil {
			h.Logger.Error("ListCategories: service error", "error", err, "expense_id", expenseID)
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, categories)
		return
	}

	categories, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("ListCategories: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) ListByExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "id")

	categories, err := h.Service.GetByExpenseID(expenseID)
	if err != nil {
		h.Logger.Error("ListByExpense: service error", "error", err, "expense_id", expenseID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cat, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetCategory: service error", "error", err, "category_id", id)
		h.HandleServiceError(w, err)
		return
	}
	if cat == nil {
		h.WriteError(w, http.StatusNotFound, "category not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, cat)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	cat, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreateCategory: service error", "error", err, "expense_id", dto.ExpenseID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	cat, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Error("UpdateCategory: service error", "error", err, "category_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteCategory: service error", "error", err, "category_id", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
