package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/FABAINT/open-lovable/internal/service/api/constants"
	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/FABAINT/open-lovable/pkg/strutil"
	"github.com/labstack/echo/v4"
)

const (
	// defaultBytesIn Content-Length 헤더가 없는 요청의 bytes_in 필드 값
	defaultBytesIn = "0"
)

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간 (마이크로초 및 사람이 읽기 쉬운 형식)
//
// quietPaths에 포함된 경로(예: 로드밸런서가 주기적으로 호출하는 /health)는
// 성공 응답일 때 Debug 레벨로 기록되어 운영 로그를 채우지 않습니다.
// 4xx/5xx 응답은 경로와 관계없이 Info 레벨로 기록됩니다.
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.HTTPLogger("/health"))
func HTTPLogger(quietPaths ...string) echo.MiddlewareFunc {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return httpLoggerHandler(c, next, quiet)
		}
	}
}

// httpLoggerHandler HTTP 요청/응답을 로깅하는 핵심 핸들러입니다.
//
// 핸들러가 반환한 에러는 c.Error()로 즉시 처리하여 로그에 최종 상태 코드가 기록되도록 합니다.
func httpLoggerHandler(c echo.Context, next echo.HandlerFunc, quiet map[string]struct{}) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	// panic이 발생해도 로그가 기록되도록 defer 사용
	defer func() {
		stop := time.Now()
		latency := stop.Sub(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		entry := applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
			"time_rfc3339": stop.Format(time.RFC3339),

			"method":   req.Method,
			"path":     path,
			"uri":      maskSensitiveQueryParams(req.RequestURI),
			"host":     req.Host,
			"protocol": req.Proto,

			"remote_ip":  c.RealIP(),
			"user_agent": req.UserAgent(),
			"referer":    req.Referer(),

			"status":    res.Status,
			"bytes_in":  bytesIn,
			"bytes_out": strconv.FormatInt(res.Size, 10),

			"latency":       strconv.FormatInt(latency.Microseconds(), 10),
			"latency_human": latency.String(),

			"request_id": res.Header().Get(echo.HeaderXRequestID),
		})

		if _, ok := quiet[path]; ok && res.Status < 400 {
			entry.Debug(constants.LogMsgHTTPRequest)
			return
		}
		entry.Info(constants.LogMsgHTTPRequest)
	}()

	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 strutil.Mask로 가립니다.
// URI 파싱에 실패하면 원본을 반환합니다.
//
// 예시:
//
//	입력: "/health?token=secret-token-123&verbose=1"
//	출력: "/health?token=secr%2A%2A%2A-123&verbose=1"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}

	if masked {
		u.RawQuery = q.Encode()
		return u.String()
	}

	return uri
}
