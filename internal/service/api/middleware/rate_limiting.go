package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/FABAINT/open-lovable/internal/service/api/constants"
	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 동시에 추적하는 최대 IP 수
	maxIPRateLimiters = 10000

	// limiterIdleTTL 이 시간 동안 요청이 없었던 IP의 Limiter는 정리 대상이 됩니다.
	limiterIdleTTL = 10 * time.Minute
)

// visitor IP별 Limiter와 마지막 요청 시각
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter IP 주소별로 Token Bucket Limiter를 관리합니다.
//
// 추적 중인 IP 수가 maxIPRateLimiters에 도달하면 limiterIdleTTL 동안 요청이 없었던
// IP부터 정리하고, 그래도 공간이 없으면 가장 오래전에 요청한 IP를 제거합니다.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int

	// now 테스트에서 시간을 고정하기 위해 교체할 수 있습니다.
	now func() time.Time
}

func newIPRateLimiter(requestsPerSecond int, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// getLimiter 특정 IP 주소의 Limiter를 반환합니다. 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()

	if v, exists := i.visitors[ip]; exists {
		v.lastSeen = now
		return v.limiter
	}

	if len(i.visitors) >= maxIPRateLimiters {
		i.evict(now)
	}

	v := &visitor{
		limiter:  rate.NewLimiter(i.rate, i.burst),
		lastSeen: now,
	}
	i.visitors[ip] = v

	return v.limiter
}

// evict 호출자가 mu를 보유하고 있어야 합니다.
func (i *ipRateLimiter) evict(now time.Time) {
	var oldestIP string
	var oldestSeen time.Time

	for ip, v := range i.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(i.visitors, ip)
			continue
		}
		if oldestIP == "" || v.lastSeen.Before(oldestSeen) {
			oldestIP, oldestSeen = ip, v.lastSeen
		}
	}

	if len(i.visitors) >= maxIPRateLimiters && oldestIP != "" {
		delete(i.visitors, oldestIP)
	}
}

func (i *ipRateLimiter) size() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return len(i.visitors)
}

// RateLimiting IP 기반 Rate Limiting 미들웨어를 반환합니다.
//
// Token Bucket 알고리즘(golang.org/x/time/rate)을 사용하며, 제한을 초과한 요청에는
// Retry-After 헤더와 함께 429 Too Many Requests 에러를 반환합니다.
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.RateLimiting(20, 40)) // 초당 20 요청, 버스트 40
//
// exemptPaths에 포함된 경로(예: 로드밸런서가 호출하는 /health)는 제한하지 않습니다.
// requestsPerSecond 또는 burst가 0 이하이면 panic이 발생합니다.
func RateLimiting(requestsPerSecond int, burst int, exemptPaths ...string) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := exempt[c.Request().URL.Path]; ok {
				return next(c)
			}

			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(constants.RetryAfter, "1")

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
