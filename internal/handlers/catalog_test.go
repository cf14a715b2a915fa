package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate_DefaultsActive(t *testing.T) {
	f := newFixture(t)
	editor := f.addUser("u-1", types.RoleUser, true)

	f.products.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, product types.Product) (types.Product, error) {
			assert.True(t, product.Active)
			assert.Equal(t, "king-prawns", product.Slug)
			product.ID = 11
			return product, nil
		})

	rec := f.do(jsonRequest(t, http.MethodPost, "/api/products", map[string]any{
		"name":        "King Prawns",
		"description": "Head-on, shell-on.",
		"category":    "shrimp",
	}), editor)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product types.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, 11, product.ID)
}

func TestProductCreate_MissingCategory(t *testing.T) {
	f := newFixture(t)
	editor := f.addUser("u-1", types.RoleUser, true)

	rec := f.do(jsonRequest(t, http.MethodPost, "/api/products", map[string]any{
		"name":        "King Prawns",
		"description": "Head-on, shell-on.",
	}), editor)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is required", decodeError(t, rec).Errors["category"])
}

func TestProductList_PublicSeesActiveOnly(t *testing.T) {
	f := newFixture(t)
	f.products.EXPECT().List(gomock.Any(), true, "crab").Return([]types.Product{{ID: 1, Active: true}}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/products?category=crab", nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTestimonialCreate_RatingOutOfRange(t *testing.T) {
	f := newFixture(t)
	editor := f.addUser("u-1", types.RoleUser, true)

	rec := f.do(jsonRequest(t, http.MethodPost, "/api/testimonials", map[string]any{
		"name":    "Importer",
		"content": "Reliable cold chain.",
		"rating":  6,
	}), editor)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must be at most 5", decodeError(t, rec).Errors["rating"])
}

func TestTestimonialDelete_NotFound(t *testing.T) {
	f := newFixture(t)
	editor := f.addUser("u-1", types.RoleUser, true)
	f.reviews.EXPECT().Delete(gomock.Any(), 42).Return(services.ErrNotFound)

	rec := f.do(httptest.NewRequest(http.MethodDelete, "/api/testimonials/42", nil), editor)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentSaveBlock_RecordsEditor(t *testing.T) {
	f := newFixture(t)
	editor := f.addUser("u-7", types.RoleUser, true)

	f.content.EXPECT().UpsertBlock(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, block types.ContentBlock) (types.ContentBlock, error) {
			assert.Equal(t, "text", block.Type)
			require.NotNil(t, block.UpdatedBy)
			assert.Equal(t, "u-7", *block.UpdatedBy)
			return block, nil
		})

	rec := f.do(jsonRequest(t, http.MethodPut, "/api/content", map[string]any{
		"section": "about",
		"key":     "headline",
		"value":   "Three decades of seafood exports",
	}), editor)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSettings_PublicReadAdminWrite(t *testing.T) {
	f := newFixture(t)
	member := f.addUser("u-1", types.RoleUser, true)
	admin := f.addUser("a-1", types.RoleAdmin, true)

	f.content.EXPECT().ListSettings(gomock.Any()).Return([]types.Setting{{Key: "site_name", Value: "Shoreline Vision"}}, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/settings", nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, "Shoreline Vision", settings["site_name"])

	body := map[string]string{"value": "Shoreline"}
	assert.Equal(t, http.StatusUnauthorized, f.do(jsonRequest(t, http.MethodPut, "/api/settings/site_name", body), nil).Code)
	assert.Equal(t, http.StatusForbidden, f.do(jsonRequest(t, http.MethodPut, "/api/settings/site_name", body), member).Code)

	f.content.EXPECT().PutSetting(gomock.Any(), "site_name", "Shoreline").
		Return(types.Setting{Key: "site_name", Value: "Shoreline"}, nil)
	assert.Equal(t, http.StatusOK, f.do(jsonRequest(t, http.MethodPut, "/api/settings/site_name", body), admin).Code)
}
