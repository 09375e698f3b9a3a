package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"

	"rxquote/internal/adapter/http/middleware"
	"rxquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	patient  = entities.Identity{UserID: "pat-1", Role: entities.RolePatient}
	pharmacy = entities.Identity{UserID: "ph-1", Role: entities.RolePharmacy}
)

func newRouter(id *entities.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if id != nil {
		caller := *id
		r.Use(func(c *gin.Context) {
			middleware.SetIdentity(c, caller)
			c.Next()
		})
	}
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
