package item

import (
	"encoding/json"
	"net/http"

	"github.com/chasselife/xpnse/internal/transport"
	"github.com/chasselife/xpnse/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetAll() ([]*Item, error)
	GetByID(id string) (*Item, error)
	GetByCategoryID(categoryID string) ([]*Item, error)
	Create(dto CreateItemDTO) (*Item, error)
	Update(id string, dto UpdateItemDTO) (*Item, error)
	Delete(id string) error
	TotalCostByCategoryID(categoryID string) (float64, error)
	DateRangeByCategoryID(categoryID string) (*DateRange, error)
	TotalCostByExpenseID(expenseID string) (float64, error)
	DateRangeByExpenseID(expenseID string) (*DateRange, error)
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

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	// scoped listing when ?categoryId= is present
	if categoryID := r.URL.Query().Get("categoryId"); categoryID != "" {
		items, err := h.Service.GetByCategoryID(categoryID)
		if err != nil {
			h.Logger.Error("ListItems: service error", "error", err, "category_id", categoryID)
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, items)
		return
	}

	items, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("ListItems: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	items, err := h.Service.GetByCategoryID(categoryID)
	if err != nil {
		h.Logger.Error("ListByCategory: service error", "error", err, "category_id", categoryID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	it, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetItem: service error", "error", err, "item_id", id)
		h.HandleServiceError(w, err)
		return
	}
	if it == nil {
		h.WriteError(w, http.StatusNotFound, "item not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, it)
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var dto CreateItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateItem: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	it, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreateItem: service error", "error", err, "category_id", dto.ExpenseCategoryID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, it)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateItem: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	it, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Error("UpdateItem: service error", "error", err, "item_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, it)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteItem: service error", "error", err, "item_id", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CategoryTotal(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	total, err := h.Service.TotalCostByCategoryID(categoryID)
	if err != nil {
		h.Logger.Error("CategoryTotal: service error", "error", err, "category_id", categoryID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]float64{"totalCost": total})
}

func (h *Handler) CategoryDateRange(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	dr, err := h.Service.DateRangeByCategoryID(categoryID)
	if err != nil {
		h.Logger.Error("CategoryDateRange: service error", "error", err, "category_id", categoryID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]*DateRange{"dateRange": dr})
}

func (h *Handler) ExpenseTotal(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "id")

	total, err := h.Service.TotalCostByExpenseID(expenseID)
	if err != nil {
		h.Logger.Error("ExpenseTotal: service error", "error", err, "expense_id", expenseID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]float64{"totalCost": total})
}

func (h *Handler) ExpenseDateRange(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "id")

	dr, err := h.Service.DateRangeByExpenseID(expenseID)
	if err != nil {
		h.Logger.Error("ExpenseDateRange: service error", "error", err, "expense_id", expenseID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]*DateRange{"dateRange": dr})
}
