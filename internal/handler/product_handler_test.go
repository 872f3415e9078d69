package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutik/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List() []model.Product {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Product)
}

func (m *MockCatalogService) Get(id string) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Project(category model.Category, filter string) []model.Slot {
	args := m.Called(category, filter)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Slot)
}

func (m *MockCatalogService) Create(ctx context.Context, token string, draft model.ProductDraft) (*model.Product, error) {
	args := m.Called(ctx, token, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, token, id string, draft model.ProductDraft) (*model.Product, error) {
	args := m.Called(ctx, token, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, token, id string, confirmed bool) error {
	args := m.Called(ctx, token, id, confirmed)
	return args.Error(0)
}

func TestProductHandler_Slots(t *testing.T) {
	logger := zerolog.Nop()

	testSlots := []model.Slot{
		{Product: model.Product{ID: "1", Name: "Wòb Swa", Category: model.CategoryRad}},
		{Product: model.Product{ID: "placeholder-Rad-1", Name: model.PlaceholderName, Category: model.CategoryRad}, IsPlaceholder: true},
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectService  bool
		category       model.Category
		filter         string
	}{
		{
			name:           "Success",
			query:          "?category=Rad",
			expectedStatus: http.StatusOK,
			expectService:  true,
			category:       model.CategoryRad,
			filter:         "",
		},
		{
			name:           "Success with name filter",
			query:          "?category=Rad&q=chemiz",
			expectedStatus: http.StatusOK,
			expectService:  true,
			category:       model.CategoryRad,
			filter:         "chemiz",
		},
		{
			name:           "Missing category",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Unknown category",
			query:          "?category=Machin",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Browse filter is not a department",
			query:          "?category=Tout",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Project", tt.category, tt.filter).Return(testSlots)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/slots"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.Slots(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{ID: "1", Name: "Wòb Swa", Category: model.CategoryRad, Price: 4500}

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			productID:      "1",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			productID:      "999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, logger)

			mockService.On("Get", tt.productID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.productID, nil)
			req.SetPathValue("id", tt.productID)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	draft := model.ProductDraft{
		Name:        "Kolye Pèl",
		Category:    model.CategoryBijou,
		Price:       3000,
		Description: "Kolye fèt alamen",
	}

	created := &model.Product{ID: "42", Name: "Kolye Pèl", Category: model.CategoryBijou, Price: 3000, Description: "Kolye fèt alamen"}

	t.Run("Admin create returns the product", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("Create", mock.Anything, "admin-token", draft).Return(created, nil)

		body, err := json.Marshal(draft)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
		req.Header.Set(sessionHeader, "admin-token")
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, *created, got)

		mockService.AssertExpectations(t)
	})

	t.Run("Non-admin create is a quiet 204", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("Create", mock.Anything, "user-token", draft).Return(nil, nil)

		body, err := json.Marshal(draft)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
		req.Header.Set(sessionHeader, "user-token")
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("Invalid draft maps to its error code", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, logger)

		bad := model.ProductDraft{Name: "X", Description: "d", Category: "Machin"}
		mockService.On("Create", mock.Anything, "admin-token", bad).Return(nil, model.ErrInvalidCategory)

		body, err := json.Marshal(bad)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
		req.Header.Set(sessionHeader, "admin-token")
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeInvalidCategory, resp.Error)
	})

	t.Run("Malformed body is rejected before the service", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name      string
		query     string
		confirmed bool
	}{
		{name: "Confirmed delete", query: "?confirm=true", confirmed: true},
		{name: "Unconfirmed delete", query: "", confirmed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, logger)

			mockService.On("Delete", mock.Anything, "admin-token", "1", tt.confirmed).Return(nil)

			req := httptest.NewRequest(http.MethodDelete, "/api/products/1"+tt.query, nil)
			req.Header.Set(sessionHeader, "admin-token")
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Categories(t *testing.T) {
	handler := NewProductHandler(new(MockCatalogService), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()

	handler.Categories(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var categories []model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, model.Categories(), categories)
}
