package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FABAINT/open-lovable/internal/service/api/constants"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Configuration Tests
// =============================================================================

func TestNewHTTPServer_Configuration(t *testing.T) {
	tests := []struct {
		name        string
		config      HTTPServerConfig
		expectDebug bool
	}{
		{name: "Debug 모드 활성화", config: HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}}, expectDebug: true},
		{name: "Debug 모드 비활성화", config: HTTPServerConfig{AllowOrigins: []string{"http://example.com"}}, expectDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(tt.config)

			require.NotNil(t, e)
			assert.Equal(t, tt.expectDebug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.True(t, e.HidePort)
			require.NotNil(t, e.Logger)

			assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
			assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
			assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
			assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
		})
	}
}

// =============================================================================
// Middleware Tests
// =============================================================================

func TestNewHTTPServer_CORSMiddleware(t *testing.T) {
	tests := []struct {
		name               string
		allowOrigins       []string
		requestOrigin      string
		requestMethod      string
		expectStatus       int
		expectAllowOrigin  string
		expectAllowMethods string
	}{
		{
			name:               "Wildcard Origin - Preflight 요청",
			allowOrigins:       []string{"*"},
			requestOrigin:      "http://example.com",
			requestMethod:      http.MethodOptions,
			expectStatus:       http.StatusNoContent,
			expectAllowOrigin:  "*",
			expectAllowMethods: "GET,HEAD,OPTIONS",
		},
		{
			name:              "Specific Origin - GET 요청",
			allowOrigins:      []string{"http://example.com"},
			requestOrigin:     "http://example.com",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "http://example.com",
		},
		{
			name:              "허용되지 않은 Origin - 헤더 생략",
			allowOrigins:      []string{"http://trusted.com"},
			requestOrigin:     "http://evil.com",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(HTTPServerConfig{AllowOrigins: tt.allowOrigins}, newTestHandler())

			req := httptest.NewRequest(tt.requestMethod, "/health", nil)
			req.Header.Set(echo.HeaderOrigin, tt.requestOrigin)
			if tt.requestMethod == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			if tt.expectAllowMethods != "" {
				assert.Equal(t, tt.expectAllowMethods, rec.Header().Get(echo.HeaderAccessControlAllowMethods))
			}
		})
	}
}

func TestNewHTTPServer_PanicRecoveryMiddleware(t *testing.T) {
	buf := new(bytes.Buffer)
	defer setupTestLogger(buf)()

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/panic", func(c echo.Context) error {
		panic("intentional panic")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "intentional panic")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestNewHTTPServer_HTTPLoggerMiddleware(t *testing.T) {
	buf := new(bytes.Buffer)
	defer setupTestLogger(buf)()

	e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}}, newTestHandler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version?token=super-secret-value", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var requestLog string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if gjson.Get(line, "msg").String() == constants.LogMsgHTTPRequest {
			requestLog = line
		}
	}
	require.NotEmpty(t, requestLog, "HTTP 요청 로그가 기록되어야 합니다")

	assert.Equal(t, "GET", gjson.Get(requestLog, "method").String())
	assert.Equal(t, int64(200), gjson.Get(requestLog, "status").Int())
	assert.Equal(t, "/version", gjson.Get(requestLog, "path").String())
	assert.NotContains(t, requestLog, "super-secret-value", "민감한 쿼리 값은 마스킹되어야 합니다")
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), gjson.Get(requestLog, "request_id").String())
}

func TestNewHTTPServer_StandardMiddleware(t *testing.T) {
	e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}}, newTestHandler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	t.Run("Request ID는 UUID 형식", func(t *testing.T) {
		_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
		assert.NoError(t, err)
	})

	t.Run("클라이언트가 보낸 Request ID 유지", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set(echo.HeaderXRequestID, "client-request-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-request-id", rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("보안 헤더", func(t *testing.T) {
		assert.Equal(t, "1; mode=block", rec.Header().Get(echo.HeaderXXSSProtection))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
		assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
		assert.Empty(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "TLS 미사용 시 HSTS 헤더가 없어야 합니다")
	})

	t.Run("Server 헤더 제거", func(t *testing.T) {
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	})
}

func TestNewHTTPServer_HSTS(t *testing.T) {
	e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}, EnableHSTS: true}, newTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(echo.HeaderXForwardedProto, "https")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "max-age=31536000; includeSubdomains", rec.Header().Get(echo.HeaderStrictTransportSecurity))
}

func TestNewHTTPServer_RateLimit(t *testing.T) {
	e := newTestServer(HTTPServerConfig{
		AllowOrigins:       []string{"*"},
		RateLimitPerSecond: 1,
		RateLimitBurst:     2,
	}, newTestHandler())

	serve := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("실패: 일반 경로는 버스트 초과 시 429", func(t *testing.T) {
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := serve("/version")
			codes = append(codes, rec.Code)

			if rec.Code == http.StatusTooManyRequests {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
				assert.JSONEq(t, `{"result_code":429,"message":"요청이 너무 많습니다. 잠시 후 다시 시도해주세요"}`, rec.Body.String())
			}
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("성공: 같은 IP가 제한에 걸린 상태에서도 헬스체크는 200", func(t *testing.T) {
		for _, path := range healthPaths {
			for i := 0; i < 10; i++ {
				rec := serve(path)
				require.Equal(t, http.StatusOK, rec.Code, "%s 요청 %d", path, i+1)
				assert.Empty(t, rec.Header().Get("Retry-After"))
			}
		}

		assert.Equal(t, http.StatusTooManyRequests, serve("/version").Code)
	})
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}}, newTestHandler())

	body := strings.Repeat("x", 128*1024)
	req := httptest.NewRequest(http.MethodGet, "/health", strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "요청 본문이 너무 큽니다", gjson.Get(rec.Body.String(), "message").String())
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: 20 * time.Millisecond})
	e.GET("/slow", func(c echo.Context) error {
		select {
		case <-c.Request().Context().Done():
		case <-time.After(time.Second):
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constants.ErrMsgServiceUnavailable)
}

func TestNewHTTPServer_RequestTimeout_SkipsHealthPaths(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: 20 * time.Millisecond})
	slow := func(c echo.Context) error {
		time.Sleep(60 * time.Millisecond)
		return c.NoContent(http.StatusOK)
	}
	for _, path := range healthPaths {
		e.GET(path, slow)
	}

	for _, path := range healthPaths {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestIsHealthPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/api/health", true},
		{"/healthz", false},
		{"/version", false},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
			assert.Equal(t, tt.want, isHealthPath(c))
		})
	}
}
