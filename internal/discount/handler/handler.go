package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/discount"
	"github.com/fekuna/omnipos-backoffice-service/internal/discount/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/editor"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     discount.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc discount.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/plans", h.listPlans)
	mux.HandleFunc("POST /api/plans", h.createPlan)
	mux.HandleFunc("GET /api/plans/{id}", h.getPlan)
	mux.HandleFunc("PUT /api/plans/{id}", h.updatePlan)
	mux.HandleFunc("DELETE /api/plans/{id}", h.deletePlan)

	mux.HandleFunc("GET /api/discounts", h.listDiscounts)
	mux.HandleFunc("POST /api/discounts", h.createDiscount)
	mux.HandleFunc("GET /api/discounts/{id}", h.getDiscount)
	mux.HandleFunc("PUT /api/discounts/{id}", h.updateDiscount)
	mux.HandleFunc("DELETE /api/discounts/{id}", h.deleteDiscount)
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
		IsActive: httpserver.QueryBoolPtr(r, "is_active"),
		Page:     page,
		PageSize: pageSize,
	}
}

// --- plans ---

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListPlans(r.Context(), &f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	var input dto.PlanInput
	if !h.preparedInput(w, r, editor.KindPlan, &input) {
		return
	}
	created, err := h.uc.CreatePlan(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetPlan(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "discount plan not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updatePlan(w http.ResponseWriter, r *http.Request) {
	var input dto.PlanInput
	if !h.preparedInput(w, r, editor.KindPlan, &input) {
		return
	}
	updated, err := h.uc.UpdatePlan(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeletePlan(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- discounts ---

func (h *Handler) listDiscounts(w http.ResponseWriter, r *http.Request) {
	f := &dto.DiscountFilters{
		ListFilters: listFilters(r),
		PlanID:      r.URL.Query().Get("plan_id"),
		StoreID:     r.URL.Query().Get("store_id"),
	}
	items, total, err := h.uc.ListDiscounts(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createDiscount(w http.ResponseWriter, r *http.Request) {
	var input dto.DiscountInput
	if !h.preparedInput(w, r, editor.KindDiscount, &input) {
		return
	}
	created, err := h.uc.CreateDiscount(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getDiscount(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetDiscount(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "discount not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateDiscount(w http.ResponseWriter, r *http.Request) {
	var input dto.DiscountInput
	if !h.preparedInput(w, r, editor.KindDiscount, &input) {
		return
	}
	updated, err := h.uc.UpdateDiscount(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteDiscount(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteDiscount(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}
