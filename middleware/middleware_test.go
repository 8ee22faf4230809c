package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/joshu-sajeev/contactrelay/common"
	"github.com/joshu-sajeev/contactrelay/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func allowList(origins ...string) func(string) bool {
	return func(origin string) bool {
		for _, o := range origins {
			if o == origin {
				return true
			}
		}
		return false
	}
}

func newCORSRouter(allow func(string) bool) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(nil), CORS(CORSOptions{
		AllowOrigin: allow,
		Methods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		Headers:     []string{"Content-Type", "Authorization", "Accept"},
	}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		origin         string
		allow          func(string) bool
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "no origin header always passes",
			method:         http.MethodGet,
			allow:          allowList(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "listed origin passes",
			method:         http.MethodGet,
			origin:         "https://heyprachar.com",
			allow:          allowList("https://heyprachar.com"),
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://heyprachar.com",
		},
		{
			name:           "unlisted origin is rejected",
			method:         http.MethodGet,
			origin:         "https://evil.example",
			allow:          allowList("https://heyprachar.com"),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "preflight from listed origin",
			method:         http.MethodOptions,
			origin:         "https://heyprachar.com",
			allow:          allowList("https://heyprachar.com"),
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "https://heyprachar.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
				req.Header.Set("Access-Control-Request-Method", "POST")
			}
			w := httptest.NewRecorder()

			newCORSRouter(tt.allow).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.expectedOrigin != "" {
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.expectedStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"CORS Error","message":"Origin not allowed"}`, w.Body.String())
			}
			if tt.method == http.MethodOptions {
				assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "Content-Type,Authorization,Accept", w.Header().Get("Access-Control-Allow-Headers"))
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "api error keeps its status",
			err:            common.ValidationError(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation Error","message":"Please fill in all required fields correctly"}`,
		},
		{
			name:           "cors sentinel becomes forbidden",
			err:            common.ErrCORSNotAllowed,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"CORS Error","message":"Origin not allowed"}`,
		},
		{
			name:           "unknown error is generic",
			err:            errors.New("db password is hunter2"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal Server Error","message":"Something went wrong on the server"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler(nil))
			r.GET("/fail", func(c *gin.Context) {
				c.Error(tt.err)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(nil), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error","message":"Something went wrong on the server"}`, w.Body.String())
}

type payload struct {
	Name string `json:"name" form:"name"`
}

func newBodyLimitRouter(limit int64) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(nil), BodyLimit(limit))
	r.POST("/echo", func(c *gin.Context) {
		var p payload
		if !Bind(c, &p) {
			return
		}
		c.JSON(http.StatusOK, p)
	})
	return r
}

func TestBodyLimit(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		newBodyLimitRouter(1024).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name":"ok"}`, w.Body.String())
	})

	t.Run("declared length over limit", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("x", 64) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		newBodyLimitRouter(16).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, internalErrorBody, w.Body.String())
	})

	t.Run("streamed body over limit", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("x", 64) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.ContentLength = -1
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		newBodyLimitRouter(16).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, internalErrorBody, w.Body.String())
	})
}

const internalErrorBody = `{"error":"Internal Server Error","message":"Something went wrong on the server"}`

func TestBind(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "malformed JSON",
			body:           `{nope`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   internalErrorBody,
		},
		{
			name:           "empty body",
			body:           "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation Error","message":"Please fill in all required fields correctly"}`,
		},
		{
			name:           "wrong value type",
			body:           `{"name":["a"]}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation Error","message":"Please fill in all required fields correctly"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			newBodyLimitRouter(1024).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("X-Powered-By"))

	policy := w.Header().Get("Content-Security-Policy")
	for _, directive := range []string{
		"default-src 'self'",
		"base-uri 'self'",
		"frame-ancestors 'self'",
		"object-src 'none'",
		"script-src 'self'",
		"script-src-attr 'none'",
		"upgrade-insecure-requests",
	} {
		assert.Contains(t, policy, directive)
	}
	assert.NotContains(t, policy, ";;")
}

func TestRequestLogger_EchoesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(nil), Metrics(metrics.NewHTTPMetrics(prometheus.NewRegistry())))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}
