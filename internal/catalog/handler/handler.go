package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/catalog"
	"github.com/fekuna/omnipos-backoffice-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/editor"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

// Handler exposes the catalog entities over REST. Create and update bodies
// are raw form records; they pass through the record editor's validation and
// normalization before reaching the use case.
type Handler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewHandler(uc catalog.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/categories", h.listCategories)
	mux.HandleFunc("POST /api/categories", h.createCategory)
	mux.HandleFunc("GET /api/categories/{id}", h.getCategory)
	mux.HandleFunc("PUT /api/categories/{id}", h.updateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", h.deleteCategory)
	mux.HandleFunc("PUT /api/categories/reorder", h.reorderCategories)

	mux.HandleFunc("GET /api/subcategories", h.listSubcategories)
	mux.HandleFunc("POST /api/subcategories", h.createSubcategory)
	mux.HandleFunc("GET /api/subcategories/{id}", h.getSubcategory)
	mux.HandleFunc("PUT /api/subcategories/{id}", h.updateSubcategory)
	mux.HandleFunc("DELETE /api/subcategories/{id}", h.deleteSubcategory)

	mux.HandleFunc("GET /api/brands", h.listBrands)
	mux.HandleFunc("POST /api/brands", h.createBrand)
	mux.HandleFunc("GET /api/brands/{id}", h.getBrand)
	mux.HandleFunc("PUT /api/brands/{id}", h.updateBrand)
	mux.HandleFunc("DELETE /api/brands/{id}", h.deleteBrand)

	mux.HandleFunc("GET /api/units", h.listUnits)
	mux.HandleFunc("POST /api/units", h.createUnit)
	mux.HandleFunc("GET /api/units/{id}", h.getUnit)
	mux.HandleFunc("PUT /api/units/{id}", h.updateUnit)
	mux.HandleFunc("DELETE /api/units/{id}", h.deleteUnit)

	mux.HandleFunc("GET /api/variant-attributes", h.listVariantAttributes)
	mux.HandleFunc("POST /api/variant-attributes", h.createVariantAttribute)
	mux.HandleFunc("GET /api/variant-attributes/{id}", h.getVariantAttribute)
	mux.HandleFunc("PUT /api/variant-attributes/{id}", h.updateVariantAttribute)
	mux.HandleFunc("DELETE /api/variant-attributes/{id}", h.deleteVariantAttribute)
}

// preparedInput decodes the request body as a form record, runs it through
// the editor for kind, and fills dst with the normalized payload. A false
// return means the response has already been written.
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

func listFilters(r *http.Request) *dto.ListFilters {
	page, pageSize := httpserver.Pagination(r)
	return &dto.ListFilters{
		Search:   r.URL.Query().Get("search"),
		IsActive: httpserver.QueryBoolPtr(r, "is_active"),
		Page:     page,
		PageSize: pageSize,
	}
}

// --- categories ---

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListCategories(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CategoryInput
	if !h.preparedInput(w, r, editor.KindCategory, &input) {
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
		httpserver.RespondError(w, http.StatusNotFound, "category not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CategoryInput
	if !h.preparedInput(w, r, editor.KindCategory, &input) {
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

func (h *Handler) reorderCategories(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderedIDs []string `json:"ordered_ids"`
	}
	if err := httpserver.DecodeBody(r, &body); err != nil {
		httpserver.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.uc.ReorderCategories(r.Context(), body.OrderedIDs); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- subcategories ---

func (h *Handler) listSubcategories(w http.ResponseWriter, r *http.Request) {
	f := &dto.SubcategoryFilters{
		ListFilters: *listFilters(r),
		CategoryID:  r.URL.Query().Get("category_id"),
	}
	items, total, err := h.uc.ListSubcategories(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createSubcategory(w http.ResponseWriter, r *http.Request) {
	var input dto.SubcategoryInput
	if !h.preparedInput(w, r, editor.KindSubcategory, &input) {
		return
	}
	created, err := h.uc.CreateSubcategory(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getSubcategory(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetSubcategory(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "subcategory not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateSubcategory(w http.ResponseWriter, r *http.Request) {
	var input dto.SubcategoryInput
	if !h.preparedInput(w, r, editor.KindSubcategory, &input) {
		return
	}
	updated, err := h.uc.UpdateSubcategory(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteSubcategory(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteSubcategory(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- brands ---

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListBrands(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	var input dto.BrandInput
	if !h.preparedInput(w, r, editor.KindBrand, &input) {
		return
	}
	created, err := h.uc.CreateBrand(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetBrand(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "brand not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateBrand(w http.ResponseWriter, r *http.Request) {
	var input dto.BrandInput
	if !h.preparedInput(w, r, editor.KindBrand, &input) {
		return
	}
	updated, err := h.uc.UpdateBrand(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteBrand(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- units ---

func (h *Handler) listUnits(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListUnits(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createUnit(w http.ResponseWriter, r *http.Request) {
	var input dto.UnitInput
	if !h.preparedInput(w, r, editor.KindUnit, &input) {
		return
	}
	created, err := h.uc.CreateUnit(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getUnit(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetUnit(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "unit not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateUnit(w http.ResponseWriter, r *http.Request) {
	var input dto.UnitInput
	if !h.preparedInput(w, r, editor.KindUnit, &input) {
		return
	}
	updated, err := h.uc.UpdateUnit(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteUnit(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteUnit(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}

// --- variant attributes ---

func (h *Handler) listVariantAttributes(w http.ResponseWriter, r *http.Request) {
	f := listFilters(r)
	items, total, err := h.uc.ListVariantAttributes(r.Context(), f)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, httpserver.ListData{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize})
}

func (h *Handler) createVariantAttribute(w http.ResponseWriter, r *http.Request) {
	var input dto.VariantAttributeInput
	if !h.preparedInput(w, r, editor.KindVariantAttribute, &input) {
		return
	}
	created, err := h.uc.CreateVariantAttribute(r.Context(), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusCreated, created)
}

func (h *Handler) getVariantAttribute(w http.ResponseWriter, r *http.Request) {
	item, err := h.uc.GetVariantAttribute(r.Context(), r.PathValue("id"))
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	if item == nil {
		httpserver.RespondError(w, http.StatusNotFound, "variant attribute not found")
		return
	}
	httpserver.RespondOK(w, http.StatusOK, item)
}

func (h *Handler) updateVariantAttribute(w http.ResponseWriter, r *http.Request) {
	var input dto.VariantAttributeInput
	if !h.preparedInput(w, r, editor.KindVariantAttribute, &input) {
		return
	}
	updated, err := h.uc.UpdateVariantAttribute(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, updated)
}

func (h *Handler) deleteVariantAttribute(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteVariantAttribute(r.Context(), r.PathValue("id")); err != nil {
		httpserver.RespondError(w, httpserver.ErrorStatus(err), err.Error())
		return
	}
	httpserver.RespondOK(w, http.StatusOK, nil)
}
