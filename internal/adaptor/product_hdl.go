package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"catalog-api/internal/dto/request"
	"catalog-api/internal/usecase"
	"catalog-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxImageSize caps uploaded product photos at 5 MB.
const maxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := parseProductFilter(query)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	page := request.Pagination{
		Limit:  utils.ParseLimit(query.Get("limit"), request.DefaultLimit),
		Offset: utils.ParseOffset(query.Get("offset")),
	}

	response, err := h.service.FindAll(r.Context(), filter, page)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", response)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	response, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved", response)
}

// GetProductsByCategory handles GET /api/products/category/{categoryId}
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(chi.URLParam(r, "categoryId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	query := r.URL.Query()
	page := request.Pagination{
		Limit:  utils.ParseLimit(query.Get("limit"), request.DefaultLimit),
		Offset: utils.ParseOffset(query.Get("offset")),
	}

	response, err := h.service.FindByCategory(r.Context(), categoryID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "list products by category")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", response)
}

// GetProductsByBrand handles GET /api/products/brand/{brandId}
func (h *ProductHandler) GetProductsByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := parseID(chi.URLParam(r, "brandId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID", nil)
		return
	}

	query := r.URL.Query()
	page := request.Pagination{
		Limit:  utils.ParseLimit(query.Get("limit"), request.DefaultLimit),
		Offset: utils.ParseOffset(query.Get("offset")),
	}

	response, err := h.service.FindByBrand(r.Context(), brandID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "list products by brand")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", response)
}

// CreateProduct handles POST /api/products. The body is either plain
// JSON or multipart/form-data with an optional photo part.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var (
		req   request.ProductCreateRequest
		image *request.ImageUpload
	)

	if isMultipart(r) {
		form, img, err := h.parseMultipart(w, r)
		if err != nil {
			return // response already written
		}
		image = img

		req.Name = form.Get("name")
		price, err := strconv.ParseFloat(form.Get("price"), 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid price", nil)
			return
		}
		req.Price = price

		if req.CategoryID, err = parseOptionalID(form.Get("categoryId")); err != nil {
			utils.ResponseBadRequest(w, "Invalid category ID", nil)
			return
		}
		if req.BrandID, err = parseOptionalID(form.Get("brandId")); err != nil {
			utils.ResponseBadRequest(w, "Invalid brand ID", nil)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	response, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created", response)
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	var (
		req   request.ProductUpdateRequest
		image *request.ImageUpload
	)

	if isMultipart(r) {
		form, img, err := h.parseMultipart(w, r)
		if err != nil {
			return
		}
		image = img

		if name := form.Get("name"); name != "" {
			req.Name = &name
		}
		if raw := form.Get("price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				utils.ResponseBadRequest(w, "Invalid price", nil)
				return
			}
			req.Price = &price
		}
		if req.CategoryID, err = parseOptionalID(form.Get("categoryId")); err != nil {
			utils.ResponseBadRequest(w, "Invalid category ID", nil)
			return
		}
		if req.BrandID, err = parseOptionalID(form.Get("brandId")); err != nil {
			utils.ResponseBadRequest(w, "Invalid brand ID", nil)
			return
		}
		if raw := form.Get("isActive"); raw != "" {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				utils.ResponseBadRequest(w, "Invalid isActive value", nil)
				return
			}
			req.IsActive = &active
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	response, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated", response)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted", nil)
}

// parseMultipart reads a bounded multipart form and the optional photo
// part. On failure the HTTP response has already been written.
func (h *ProductHandler) parseMultipart(w http.ResponseWriter, r *http.Request) (url.Values, *request.ImageUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.ResponsePayloadTooLarge(w, "Image exceeds the 5MB limit")
		} else {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		}
		return nil, nil, err
	}

	file, header, err := r.FormFile("photo")
	if err == http.ErrMissingFile {
		return url.Values(r.MultipartForm.Value), nil, nil
	}
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid photo upload", nil)
		return nil, nil, err
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		err := errors.New("unsupported image type")
		utils.ResponseBadRequest(w, "Only PNG and JPEG images are allowed", nil)
		return nil, nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		utils.ResponseInternalError(w, "Failed to read image")
		return nil, nil, err
	}
	if len(data) > maxImageSize {
		err := errors.New("image too large")
		utils.ResponsePayloadTooLarge(w, "Image exceeds the 5MB limit")
		return nil, nil, err
	}

	return url.Values(r.MultipartForm.Value), &request.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func parseProductFilter(query url.Values) (*request.ProductFilterRequest, error) {
	filter := &request.ProductFilterRequest{}
	get := query.Get

	if name := get("name"); name != "" {
		filter.Name = &name
	}

	var err error
	if filter.CategoryID, err = parseOptionalID(get("categoryId")); err != nil {
		return nil, errors.New("invalid categoryId filter")
	}
	if filter.BrandID, err = parseOptionalID(get("brandId")); err != nil {
		return nil, errors.New("invalid brandId filter")
	}

	if raw := get("minPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			return nil, errors.New("invalid minPrice filter")
		}
		filter.MinPrice = &price
	}
	if raw := get("maxPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			return nil, errors.New("invalid maxPrice filter")
		}
		filter.MaxPrice = &price
	}
	if raw := get("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("invalid isActive filter")
		}
		filter.IsActive = &active
	}

	return filter, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid ID")
	}
	return id, nil
}

func parseOptionalID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
