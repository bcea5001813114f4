package constants

import "time"

// HTTP 서버 기본값 상수입니다.
const (
	// DefaultRequestTimeout 설정값이 0일 때 적용되는 요청 처리 제한 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout 설정값이 0일 때 적용되는 Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 버스트 허용량
	DefaultRateLimitBurst = 40

	// DefaultMaxBodySize 요청 본문의 최대 크기
	// 헬스 체크 API는 본문을 받지 않으므로 작게 유지합니다.
	DefaultMaxBodySize = "64K"
)

// net/http 서버 타임아웃 상수입니다.
const (
	// DefaultReadTimeout 요청 본문 읽기 제한
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더 읽기 제한 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한
	// RequestTimeout보다 짧으면 Timeout 미들웨어의 503 응답이 전송되지 못하므로 여유를 둡니다.
	DefaultWriteTimeout = 75 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결 유휴 제한
	DefaultIdleTimeout = 120 * time.Second
)
