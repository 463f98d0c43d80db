package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders())
	e.GET("/api/v1/insights", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"total": "12.50"})
	})
	e.POST("/api/v1/expenses", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad amount")
	})

	want := map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
		"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
		"Referrer-Policy":           "strict-origin-when-cross-origin",
		"Cache-Control":             "no-store, no-cache, must-revalidate, private",
		"Pragma":                    "no-cache",
	}

	requests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/v1/insights", http.StatusOK},
		{http.MethodPost, "/api/v1/expenses", http.StatusBadRequest},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(r.method, r.path, nil))

			require.Equal(t, r.status, rec.Code)
			for name, value := range want {
				assert.Equal(t, value, rec.Header().Get(name), name)
			}
		})
	}
}

func TestSecurityHeaders_HandlerCanOverride(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	err := SecurityHeaders()(func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "max-age=5")
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "max-age=5", c.Response().Header().Get("Cache-Control"))
}
