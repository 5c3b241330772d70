package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/editor"
	"github.com/fekuna/omnipos-backoffice-service/internal/expense"
	"github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     expense.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc expense.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/expense-categories", h.listCategories)
	mux.HandleFunc("POST /api/expense-categories", h.createCategory)
	mux.HandleFunc("GET /api/expense-categories/{id}", h.getCategory)
	mux.HandleFunc("PUT /api/expense-categories/{id}", h.updateCategory)
	mux.HandleFunc("DELETE /api/expense-categories/{id}", h.deleteCategory)

	mux.HandleFunc("GET /api/expenses", h.listExpenses)
	mux.HandleFunc("POST /api/expenses", h.createExpense)
	mux.HandleFunc("GET /api/expenses/{id}", h.getExpense)
	mux.HandleFunc("PUT /api/expenses/{id}", h.updateExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", h.deleteExpense)
}

func (h *Handler) preparedInput(w http.ResponseWriter, r *http.Request, kind editor.Kind, dst interface{}) bool {
	var rec editor.Record
	if err := httpserver.DecodeBody(r, &rec); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	payload, err := editor.Prepare(kind, rec, editor.Options{Logger: h.logger})
	if err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if err := payload.Decode(dst); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func listFilters(r *http.Request) dto.ListFilters {
	page, pageSize := httpserver.Pagination(r)
	return dto.ListFilters{
		Search:   r.URL.Query().Get("search"),
		Page:     page,
		PageSize: pageSize,
	}
}

// --- expense categories ---

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListCategories(r.Context(), &f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CategoryInput
	if !h.preparedInput(w, r, editor.KindExpenseCategory, &input) {
		return
	}
	created, err := h.uc.CreateCategory(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "expense category not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CategoryInput
	if !h.preparedInput(w, r, editor.KindExpenseCategory, &input) {
		return
	}
	updated, err := h.uc.UpdateCategory(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- expenses ---

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := &dto.ExpenseFilters{
		ListFilters:   listFilters(r),
		CategoryID:    q.Get("category_id"),
		Status:        q.Get("status"),
		PaymentMethod: q.Get("payment_method"),
		From:          q.Get("from"),
		To:            q.Get("to"),
	}
	items, total, err := h.uc.ListExpenses(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var input dto.ExpenseInput
	if !h.preparedInput(w, r, editor.KindExpense, &input) {
		return
	}
	created, err := h.uc.CreateExpense(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetExpense(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "expense not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	var input dto.ExpenseInput
	if !h.preparedInput(w, r, editor.KindExpense, &input) {
		return
	}
	updated, err := h.uc.UpdateExpense(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}
