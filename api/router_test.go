package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/astar-grid/api/i"
	searchapi "github.com/lixenwraith/astar-grid/api/search"
)

func TestRouterMountsControllers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []i.Controller{searchapi.NewSearchController(nil, 1)},
	})
	engine := router.Engine()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
