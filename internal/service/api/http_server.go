package api

import (
	"net/http"
	"time"

	"github.com/FABAINT/open-lovable/internal/service/api/constants"
	"github.com/FABAINT/open-lovable/internal/service/api/httputil"
	appmiddleware "github.com/FABAINT/open-lovable/internal/service/api/middleware"
	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// hstsMaxAge TLS 사용 시 Strict-Transport-Security 헤더의 max-age (1년)
	hstsMaxAge = 31536000
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS HTTPS로 서비스할 때 Strict-Transport-Security 헤더를 추가합니다.
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP당 요청 제한 (0이면 기본값 20/40)
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다 (순서가 중요합니다):
//
//  1. PanicRecovery - 다른 미들웨어의 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID - 로깅 전에 요청 ID(UUID)를 부여
//  3. Server 헤더 제거 - 기술 스택 노출 방지
//  4. HTTPLogger - RateLimit/Timeout 이전에 위치하여 429/503 응답도 기록
//  5. RateLimiting - IP별 초당 요청 수 제한 (헬스체크 경로 제외)
//  6. BodyLimit - 요청 본문 크기 제한 (초과 시 413)
//  7. Timeout - 요청 처리 시간 제한 (초과 시 503, 헬스체크 경로 제외)
//  8. CORS - 허용된 Origin의 GET/HEAD 요청과 Preflight 처리
//  9. Secure - 보안 헤더 (TLS 사용 시 HSTS 포함)
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rps := cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅 (헬스체크 경로의 성공 응답은 Debug 레벨)
	e.Use(appmiddleware.HTTPLogger(healthPaths...))
	// 5. Rate Limiting (헬스체크 경로 제외)
	e.Use(appmiddleware.RateLimiting(rps, burst, healthPaths...))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Skipper:      isHealthPath,
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	// 9. 보안 헤더
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}

// isHealthPath 헬스체크 응답은 200 또는 500만 허용되므로 429/503을 만드는 미들웨어에서 제외합니다.
func isHealthPath(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, p := range healthPaths {
		if path == p {
			return true
		}
	}
	return false
}
