package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/order"
	"github.com/fekuna/omnipos-backoffice-service/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type Handler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc order.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/orders", h.listOrders)
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.HandleFunc("GET /api/orders/{id}", h.getOrder)
	mux.HandleFunc("PUT /api/orders/{id}", h.updateOrder)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := httpserver.Pagination(r)
	f := &dto.OrderFilters{
		RegisterID: q.Get("register_id"),
		SessionID:  q.Get("session_id"),
		StoreID:    q.Get("store_id"),
		CustomerID: q.Get("customer_id"),
		Status:     q.Get("status"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Page:       page,
		PageSize:   pageSize,
	}
	items, total, err := h.uc.ListOrders(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input dto.OrderInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.uc.CreateOrder(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "order not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var input dto.OrderUpdateInput
	if err := httpserver.DecodeBody(r, &input); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.uc.UpdateOrder(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}
