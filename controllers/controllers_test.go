package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParamID(t *testing.T) {
	cases := []struct {
		path string
		code int
		body string
	}{
		{"/x/42", http.StatusOK, "42"},
		{"/x/abc", http.StatusBadRequest, "id inválido"},
		{"/x/0", http.StatusBadRequest, "id inválido"},
		{"/x/-3", http.StatusBadRequest, "id inválido"},
	}

	r := gin.New()
	r.GET("/x/:id", func(c *gin.Context) {
		if id, ok := ParamID(c, "id"); ok {
			c.String(http.StatusOK, "%d", id)
		}
	})

	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.code, w.Code, tc.path)
		assert.Equal(t, tc.body, w.Body.String(), tc.path)
	}
}

func TestResourceWithoutDBIs500(t *testing.T) {
	r := gin.New()
	r.GET("/category/findAll", Categories.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/category/findAll", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "db não configurado no contexto", w.Body.String())
}
