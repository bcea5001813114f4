package constants

// HTTP 헤더 키 상수입니다.
const (
	// RetryAfter 429 응답 시 재시도 권장 시간(초)을 알려주는 헤더
	RetryAfter = "Retry-After"
)

// SensitiveQueryParams 로그 기록 시 값을 마스킹해야 하는 쿼리 파라미터 키 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"access_token",
	"token",
	"password",
	"secret",
}
