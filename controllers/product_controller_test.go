package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spiderhome-backend/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newProductRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	pc := NewProductController(services.NewProductService(gdb))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", pc.PublicList)
	r.GET("/api/products/:slug", pc.PublicGetBySlug)
	r.DELETE("/api/admin/products/:id", pc.Delete)
	return r, mock
}

func TestDeleteNonexistentProductIs404(t *testing.T) {
	r, mock := newProductRouter(t)

	mock.ExpectExec("DELETE FROM `products`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "product not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicListFiltersAndPaginates(t *testing.T) {
	r, mock := newProductRouter(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE is_active = \\? AND category = \\? AND is_new = \\?").
		WithArgs(true, "Interfaces", true).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE is_active = \\? AND category = \\? AND is_new = \\? ORDER BY id DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "category", "is_new", "is_active", "specifications"}).
			AddRow(3, "Smart Plug", "smart-plug", "Interfaces", true, true, `[{"label":"Voltage","value":"12V"}]`))

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Interfaces&is_new=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Slug           string `json:"slug"`
			Specifications []struct {
				Label string `json:"label"`
				Value string `json:"value"`
			} `json:"specifications"`
			Benefits []string `json:"benefits"`
		} `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "smart-plug", body.Data[0].Slug)
	require.Len(t, body.Data[0].Specifications, 1)
	assert.Equal(t, "Voltage", body.Data[0].Specifications[0].Label)
	// Unset array columns read back as [], not null.
	assert.NotNil(t, body.Data[0].Benefits)
	// Public default page size.
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 12, body.Pagination.Limit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicGetBySlugInactiveIs404(t *testing.T) {
	r, mock := newProductRouter(t)

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE slug = \\? AND is_active = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug"}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/hidden-product", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
