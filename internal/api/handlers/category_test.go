package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smarino-dev/tienda-api/internal/api/handlers"
	appErrors "github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	"github.com/smarino-dev/tienda-api/internal/services/mocks"
	"github.com/smarino-dev/tienda-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryHandlerCreateCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCategoryService := mocks.NewMockCategoryService(t)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		body := bytes.NewBufferString(`{"name":"Shoes"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/categories", body, 1, nil)
		w := httptest.NewRecorder()

		mockCategoryService.On("CreateCategory", mock.Anything, mock.MatchedBy(func(r *models.CategoryRequest) bool {
			return r.Name == "Shoes"
		})).Return(&models.Category{ID: 5, Name: "Shoes"}, nil).Once()

		categoryHandler.CreateCategory()(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failure - Duplicate Name Answers 409", func(t *testing.T) {
		mockCategoryService := mocks.NewMockCategoryService(t)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		body := bytes.NewBufferString(`{"name":"Shoes"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/categories", body, 1, nil)
		w := httptest.NewRecorder()

		mockCategoryService.On("CreateCategory", mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Category already exists")).Once()

		categoryHandler.CreateCategory()(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failure - Short Name Fails Validation", func(t *testing.T) {
		mockCategoryService := mocks.NewMockCategoryService(t)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		body := bytes.NewBufferString(`{"name":"ab"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/categories", body, 1, nil)
		w := httptest.NewRecorder()

		categoryHandler.CreateCategory()(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockCategoryService.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	})
}

func TestCategoryHandlerListCategoryProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCategoryService := mocks.NewMockCategoryService(t)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/categories/5/products", nil,
			map[string]string{"id": "5"})
		w := httptest.NewRecorder()

		mockCategoryService.On("ListProductsByCategory", mock.Anything, int64(5)).
			Return([]*models.Product{{ID: 1, CategoryID: 5}}, nil).Once()

		categoryHandler.ListCategoryProducts()(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []*models.Product
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		assert.Len(t, products, 1)
	})
}

func TestCategoryHandlerDeleteCategory(t *testing.T) {
	t.Run("Failure - Unknown Category Answers 404", func(t *testing.T) {
		mockCategoryService := mocks.NewMockCategoryService(t)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/categories/99", nil, 1,
			map[string]string{"id": "99"})
		w := httptest.NewRecorder()

		mockCategoryService.On("DeleteCategory", mock.Anything, int64(99)).
			Return(nil, appErrors.NotFoundError("Category not found")).Once()

		categoryHandler.DeleteCategory()(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
