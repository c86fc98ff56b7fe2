package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"keystone-site/internal/config"
	"keystone-site/internal/middleware"
	"keystone-site/internal/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var testBrand = config.BrandConfig{
	Name:       "Keystone Builders",
	Tagline:    "Quality construction, built to last",
	BaseURL:    "https://www.keystonebuilders.com",
	City:       "Denver",
	Region:     "CO",
	LogoURL:    "/images/logo.png",
	OGImageURL: "/images/og-default.jpg",
}

func init() {
	gin.SetMode(gin.TestMode)
}

func passThrough(c *gin.Context) { c.Next() }

type testEnv struct {
	router    *gin.Engine
	generator *mocks.MockPlanGenerator
	quotes    *mocks.MockQuoteService
}

// newTestEnv собирает роутер с моками. internalAuth == nil пропускает все запросы.
func newTestEnv(t *testing.T, internalAuth gin.HandlerFunc) *testEnv {
	t.Helper()
	env := &testEnv{
		router:    gin.New(),
		generator: new(mocks.MockPlanGenerator),
		quotes:    new(mocks.MockQuoteService),
	}
	if internalAuth == nil {
		internalAuth = passThrough
	}
	env.router.Use(middleware.GinZapLogger(zap.NewNop()))
	NewSiteHandler(env.generator, env.quotes, testBrand, zap.NewNop()).
		RegisterRoutes(env.router, passThrough, internalAuth)
	return env
}

func (e *testEnv) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
