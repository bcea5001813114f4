package constants

// 로그의 component 필드 값입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentErrorHandler = "api.error_handler"

	// 미들웨어
	ComponentMiddlewareHTTPLogger    = "api.middleware.http_logger"
	ComponentMiddlewareRateLimit     = "api.middleware.rate_limit"
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"
)
