package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"catalog-api/internal/dto/request"
	"catalog-api/internal/dto/response"
	"catalog-api/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type fakeProductService struct {
	findAllFn func(ctx context.Context, filter *request.ProductFilterRequest, page request.Pagination) (*response.ListResponse[response.ProductResponse], error)
	findOneFn func(ctx context.Context, id int64) (*response.ProductResponse, error)
	removeFn  func(ctx context.Context, id int64) error
}

func (f *fakeProductService) Create(ctx context.Context, req *request.ProductCreateRequest, image *request.ImageUpload) (*response.ProductResponse, error) {
	return nil, nil
}

func (f *fakeProductService) FindAll(ctx context.Context, filter *request.ProductFilterRequest, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter, page)
	}
	return &response.ListResponse[response.ProductResponse]{}, nil
}

func (f *fakeProductService) FindOne(ctx context.Context, id int64) (*response.ProductResponse, error) {
	if f.findOneFn != nil {
		return f.findOneFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeProductService) Update(ctx context.Context, id int64, req *request.ProductUpdateRequest, image *request.ImageUpload) (*response.ProductResponse, error) {
	return nil, nil
}

func (f *fakeProductService) Remove(ctx context.Context, id int64) error {
	if f.removeFn != nil {
		return f.removeFn(ctx, id)
	}
	return nil
}

func (f *fakeProductService) FindByCategory(ctx context.Context, categoryID int64, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
	return &response.ListResponse[response.ProductResponse]{}, nil
}

func (f *fakeProductService) FindByBrand(ctx context.Context, brandID int64, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
	return &response.ListResponse[response.ProductResponse]{}, nil
}

func TestParseProductFilter(t *testing.T) {
	query := url.Values{}
	query.Set("name", "earbuds")
	query.Set("categoryId", "2")
	query.Set("minPrice", "10.5")
	query.Set("maxPrice", "99.9")
	query.Set("isActive", "true")

	filter, err := parseProductFilter(query)
	require.NoError(t, err)

	assert.Equal(t, "earbuds", *filter.Name)
	assert.Equal(t, int64(2), *filter.CategoryID)
	assert.Nil(t, filter.BrandID)
	assert.Equal(t, 10.5, *filter.MinPrice)
	assert.Equal(t, 99.9, *filter.MaxPrice)
	assert.True(t, *filter.IsActive)
}

func TestParseProductFilterEmpty(t *testing.T) {
	filter, err := parseProductFilter(url.Values{})
	require.NoError(t, err)

	assert.Nil(t, filter.Name)
	assert.Nil(t, filter.CategoryID)
	assert.Nil(t, filter.BrandID)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.IsActive)
}

func TestParseProductFilterInvalid(t *testing.T) {
	for query, value := range map[string]string{
		"categoryId": "abc",
		"brandId":    "-1",
		"minPrice":   "-5",
		"maxPrice":   "cheap",
		"isActive":   "maybe",
	} {
		values := url.Values{}
		values.Set(query, value)

		_, err := parseProductFilter(values)
		assert.Error(t, err, "param %s=%s", query, value)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := parseID(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestGetProductsPassesQueryParams(t *testing.T) {
	var gotFilter *request.ProductFilterRequest
	var gotPage request.Pagination
	svc := &fakeProductService{
		findAllFn: func(ctx context.Context, filter *request.ProductFilterRequest, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
			gotFilter, gotPage = filter, page
			return &response.ListResponse[response.ProductResponse]{Total: 3}, nil
		},
	}
	handler := NewProductHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/products?name=lamp&limit=5&offset=20", nil)
	rec := httptest.NewRecorder()
	handler.GetProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lamp", *gotFilter.Name)
	assert.Equal(t, 5, gotPage.Limit)
	assert.Equal(t, 20, gotPage.Offset)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, int64(3), body.Data.Total)
}

func TestGetProductsBadFilter(t *testing.T) {
	handler := NewProductHandler(&fakeProductService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/products?minPrice=cheap", nil)
	rec := httptest.NewRecorder()
	handler.GetProducts(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductNotFound(t *testing.T) {
	svc := &fakeProductService{
		findOneFn: func(ctx context.Context, id int64) (*response.ProductResponse, error) {
			return nil, usecase.ErrNotFound
		},
	}
	handler := NewProductHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()
	handler.GetProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductConflictMapping(t *testing.T) {
	svc := &fakeProductService{
		removeFn: func(ctx context.Context, id int64) error {
			return usecase.ErrDuplicateProduct
		},
	}
	handler := NewProductHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	req = withURLParam(req, "id", "1")
	rec := httptest.NewRecorder()
	handler.DeleteProduct(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
