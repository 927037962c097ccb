package adaptor

import (
	"encoding/json"
	"net/http"

	"catalog-api/internal/dto/request"
	"catalog-api/internal/usecase"
	"catalog-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := request.Pagination{
		Limit:  utils.ParseLimit(query.Get("limit"), request.DefaultLimit),
		Offset: utils.ParseOffset(query.Get("offset")),
	}

	response, err := h.service.FindAll(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", response)
}

// GetCategory handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	response, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "Category retrieved", response)
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created", response)
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	var req request.CategoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated", response)
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted", nil)
}
