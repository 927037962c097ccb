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

type BrandHandler struct {
	service usecase.BrandService
	log     *zap.Logger
}

func NewBrandHandler(service usecase.BrandService, log *zap.Logger) *BrandHandler {
	return &BrandHandler{
		service: service,
		log:     log.With(zap.String("handler", "brand")),
	}
}

// GetBrands handles GET /api/brands
func (h *BrandHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := request.Pagination{
		Limit:  utils.ParseLimit(query.Get("limit"), request.DefaultLimit),
		Offset: utils.ParseOffset(query.Get("offset")),
	}

	response, err := h.service.FindAll(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list brands")
		return
	}

	utils.ResponseSuccess(w, "Brands retrieved", response)
}

// GetBrand handles GET /api/brands/{id}
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID", nil)
		return
	}

	response, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get brand")
		return
	}

	utils.ResponseSuccess(w, "Brand retrieved", response)
}

// CreateBrand handles POST /api/brands
func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req request.BrandCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create brand")
		return
	}

	utils.ResponseCreated(w, "Brand created", response)
}

// UpdateBrand handles PUT /api/brands/{id}
func (h *BrandHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID", nil)
		return
	}

	var req request.BrandUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update brand")
		return
	}

	utils.ResponseSuccess(w, "Brand updated", response)
}

// DeleteBrand handles DELETE /api/brands/{id}
func (h *BrandHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID", nil)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete brand")
		return
	}

	utils.ResponseSuccess(w, "Brand deleted", nil)
}
