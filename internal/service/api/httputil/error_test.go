package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/FABAINT/open-lovable/internal/service/api/model/response"
	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Error Handler Tests
// =============================================================================

// LogEntry 로그 검증을 위한 구조체
type LogEntry struct {
	Level      string `json:"level"`
	Message    string `json:"msg"`
	Component  string `json:"component"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	StatusCode int    `json:"status_code"`
	RemoteIP   string `json:"remote_ip"`
	RequestID  string `json:"request_id"`
}

// TestErrorHandler 전역 로거를 변경하므로 t.Parallel()을 사용하지 않습니다.
func TestErrorHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	setupTestLogger(buf)
	defer restoreLogger()

	tests := []struct {
		name            string
		method          string
		err             error
		setupContext    func(c echo.Context, req *http.Request, rec *httptest.ResponseRecorder)
		expectedStatus  int
		expectedJSON    string
		expectedLog     *LogEntry
		expectedLogPart string
		expectNoLog     bool
	}{
		{
			name:           "404 Not Found_기본 메시지는 한국어로 통일",
			method:         http.MethodGet,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			expectedLog: &LogEntry{
				Level:      "warning",
				Message:    "HTTP 4xx: 클라이언트 요청 오류",
				Component:  "api.error_handler",
				StatusCode: http.StatusNotFound,
			},
		},
		{
			name:            "404 Not Found_커스텀 메시지 유지",
			method:          http.MethodGet,
			err:             echo.NewHTTPError(http.StatusNotFound, "Custom Check"),
			expectedStatus:  http.StatusNotFound,
			expectedJSON:    `{"result_code":404,"message":"Custom Check"}`,
			expectedLogPart: "클라이언트 요청 오류",
		},
		{
			name:           "405 Method Not Allowed_기본 메시지",
			method:         http.MethodPost,
			err:            echo.ErrMethodNotAllowed,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedJSON:   `{"result_code":405,"message":"허용되지 않는 HTTP 메서드입니다"}`,
			expectedLog:    &LogEntry{Level: "warning", StatusCode: http.StatusMethodNotAllowed},
		},
		{
			name:           "413 Request Entity Too Large_기본 메시지",
			method:         http.MethodPost,
			err:            echo.ErrStatusRequestEntityTooLarge,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedJSON:   `{"result_code":413,"message":"요청 본문이 너무 큽니다"}`,
		},
		{
			name:           "429 Too Many Requests_ErrorResponse 타입 메시지",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusTooManyRequests, response.ErrorResponse{Message: "잠시 후 다시 시도해주세요"}),
			expectedStatus: http.StatusTooManyRequests,
			expectedJSON:   `{"result_code":429,"message":"잠시 후 다시 시도해주세요"}`,
			expectedLog:    &LogEntry{Level: "warning", StatusCode: http.StatusTooManyRequests},
		},
		{
			name:           "500 Internal Server Error_일반 에러",
			method:         http.MethodGet,
			err:            errors.New("probe exploded"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON:   `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLog: &LogEntry{
				Level:      "error",
				Message:    "HTTP 5xx: 서버 내부 오류",
				StatusCode: http.StatusInternalServerError,
			},
		},
		{
			name:   "로깅 필드 검증_IP 및 RequestID",
			method: http.MethodGet,
			err:    echo.NewHTTPError(http.StatusBadRequest, "Bad Request"),
			setupContext: func(c echo.Context, req *http.Request, rec *httptest.ResponseRecorder) {
				req.RemoteAddr = "192.168.1.100:12345"
				rec.Header().Set(echo.HeaderXRequestID, "test-req-id-123")
			},
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"Bad Request"}`,
			expectedLog: &LogEntry{
				Path:      "/",
				Method:    http.MethodGet,
				RemoteIP:  "192.168.1.100",
				RequestID: "test-req-id-123",
			},
		},
		{
			name:           "HEAD 요청_Body 없음",
			method:         http.MethodHead,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedJSON:   "",
		},
		{
			name:   "이미 응답 커밋됨_작업 중단",
			method: http.MethodGet,
			err:    errors.New("error after write"),
			setupContext: func(c echo.Context, req *http.Request, rec *httptest.ResponseRecorder) {
				c.Response().Committed = true
			},
			expectedStatus: http.StatusOK,
			expectedJSON:   "",
		},
		{
			name:           "EdgeCase_HTTPError 메시지 타입 불일치(int)",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusBadRequest, 12345),
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLog:    &LogEntry{Level: "warning"},
		},
		{
			name:           "EdgeCase_래핑된 HTTPError",
			method:         http.MethodGet,
			err:            errors.Join(errors.New("context"), echo.ErrTooManyRequests),
			expectedStatus: http.StatusTooManyRequests,
			expectedJSON:   `{"result_code":429,"message":"요청이 너무 많습니다. 잠시 후 다시 시도해주세요"}`,
		},
		{
			name:           "EdgeCase_Status 3xx (로그 제외)",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusFound, "Redirecting"),
			expectedStatus: http.StatusFound,
			expectNoLog:    true,
			expectedJSON:   `{"result_code":302,"message":"Redirecting"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if tt.setupContext != nil {
				tt.setupContext(c, req, rec)
			}

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code, "HTTP 상태 코드가 일치해야 합니다")

			if tt.expectedJSON != "" {
				assert.JSONEq(t, tt.expectedJSON, rec.Body.String(), "응답 JSON이 예상과 일치해야 합니다")
			} else {
				assert.Empty(t, rec.Body.String(), "응답 본문이 비어있어야 합니다")
			}

			if tt.expectNoLog {
				assert.Empty(t, buf.String(), "로그가 생성되지 않아야 합니다")
				return
			}

			if tt.expectedLog != nil {
				var logEntry LogEntry
				require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry), "로그 파싱에 실패했습니다: %s", buf.String())

				if tt.expectedLog.Level != "" {
					assert.Equal(t, tt.expectedLog.Level, logEntry.Level)
				}
				if tt.expectedLog.Message != "" {
					assert.Equal(t, tt.expectedLog.Message, logEntry.Message)
				}
				if tt.expectedLog.Component != "" {
					assert.Equal(t, tt.expectedLog.Component, logEntry.Component)
				}
				if tt.expectedLog.StatusCode != 0 {
					assert.Equal(t, tt.expectedLog.StatusCode, logEntry.StatusCode)
				}
				if tt.expectedLog.Path != "" {
					assert.Equal(t, tt.expectedLog.Path, logEntry.Path)
				}
				if tt.expectedLog.Method != "" {
					assert.Equal(t, tt.expectedLog.Method, logEntry.Method)
				}
				if tt.expectedLog.RemoteIP != "" {
					assert.Equal(t, tt.expectedLog.RemoteIP, logEntry.RemoteIP)
				}
				if tt.expectedLog.RequestID != "" {
					assert.Equal(t, tt.expectedLog.RequestID, logEntry.RequestID)
				}
			}

			if tt.expectedLogPart != "" {
				assert.Contains(t, buf.String(), tt.expectedLogPart)
			}
		})
	}
}

// setupTestLogger 테스트를 위해 로거 출력을 버퍼로 변경합니다.
func setupTestLogger(buf *bytes.Buffer) {
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
}

// restoreLogger 로거 출력을 표준 에러로 복구합니다.
func restoreLogger() {
	applog.SetOutput(os.Stderr)
	applog.SetFormatter(&applog.TextFormatter{})
}
