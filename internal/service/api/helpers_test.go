package api

import (
	"bytes"
	"errors"
	"time"

	"github.com/FABAINT/open-lovable/internal/health"
	"github.com/FABAINT/open-lovable/internal/pkg/version"
	systemhandler "github.com/FABAINT/open-lovable/internal/service/api/handler/system"
	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Test Helpers
// =============================================================================

// stubProbe 결정적인 값을 반환하는 SystemProbe 구현
type stubProbe struct {
	failWith error
}

func (p stubProbe) Now() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.UTC)
}

func (p stubProbe) Uptime() time.Duration {
	return 42 * time.Second
}

func (p stubProbe) MemoryUsage() (health.MemoryUsage, error) {
	if p.failWith != nil {
		return nil, p.failWith
	}
	return health.MemoryUsage{"heapUsed": 2048}, nil
}

func (p stubProbe) Getenv(string) string {
	return "test"
}

func newTestReporter() *health.Reporter {
	return health.NewReporter(stubProbe{}, "")
}

func newFailingTestReporter() *health.Reporter {
	return health.NewReporter(stubProbe{failWith: errors.New("boom")}, "")
}

func newTestBuildInfo() version.Info {
	return version.Info{
		Version:   "test-version",
		Commit:    "abcdef1",
		BuildDate: "2026-01-01",
		GoVersion: "go1.24.0",
		OS:        "linux",
		Arch:      "amd64",
	}
}

func newTestHandler() *systemhandler.Handler {
	return systemhandler.New(newTestReporter(), newTestBuildInfo())
}

// newTestServer 전체 미들웨어 체인과 라우트가 구성된 Echo 인스턴스를 생성합니다.
func newTestServer(cfg HTTPServerConfig, h *systemhandler.Handler) *echo.Echo {
	e := NewHTTPServer(cfg)
	RegisterRoutes(e, h)
	return e
}

// setupTestLogger 테스트를 위해 로거 출력을 버퍼로 변경합니다.
// 전역 로거를 변경하므로 이 함수를 사용하는 테스트는 t.Parallel()을 사용하지 않습니다.
func setupTestLogger(buf *bytes.Buffer) func() {
	logger := applog.StandardLogger()
	originalOut, originalFormatter, originalLevel := logger.Out, logger.Formatter, logger.Level

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	return func() {
		applog.SetOutput(originalOut)
		applog.SetFormatter(originalFormatter)
		applog.SetLevel(originalLevel)
	}
}

// logMessages 버퍼에 기록된 JSON 로그 라인들의 msg 필드를 디코딩하여 반환합니다.
// JSONFormatter가 '<', '>' 등을 \u003c 형태로 이스케이프하므로 원문 문자열 비교 대신 사용합니다.
func logMessages(buf *bytes.Buffer) []string {
	var msgs []string
	gjson.ForEachLine(buf.String(), func(line gjson.Result) bool {
		msgs = append(msgs, line.Get("msg").String())
		return true
	})
	return msgs
}
