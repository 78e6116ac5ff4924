package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

func newSlideRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
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

	sc := NewSlideController(services.NewSlideService(gdb))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/slides", sc.List)
	r.PUT("/api/admin/slides/:id", sc.Update)
	return r, mock
}

func TestSlideListPaginates(t *testing.T) {
	r, mock := newSlideRouter(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `slides`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
	mock.ExpectQuery("SELECT \\* FROM `slides` ORDER BY order_index ASC, id ASC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "order_index", "is_active"}).
			AddRow(1, "Hero", 0, true))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/slides?page=1&limit=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID uint `json:"id"`
		} `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 1, body.Pagination.Limit)
	assert.Equal(t, int64(2), body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlideUpdateRequiresTitle(t *testing.T) {
	r, mock := newSlideRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/slides/1",
		strings.NewReader(`{"title":"  ","subtitle":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Rejected before any query runs.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}
