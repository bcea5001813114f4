package health

import "time"

// SystemProbe 프로세스 외부 상태(시계, 가동 시간, 메모리, 환경 변수)에 대한 접근을 추상화합니다.
//
// 운영 환경에서는 RuntimeProbe를 사용하고, 테스트에서는 결정적인 값을 반환하는 구현으로 대체합니다.
type SystemProbe interface {
	// Now 현재 시각
	Now() time.Time

	// Uptime 프로세스가 시작된 이후 경과 시간
	Uptime() time.Duration

	// MemoryUsage 메모리 사용량. 수집에 실패하면 error를 반환한다.
	MemoryUsage() (MemoryUsage, error)

	// Getenv 환경 변수 값. 없으면 빈 문자열
	Getenv(key string) string
}
