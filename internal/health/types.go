package health

import (
	"net/http"
	"time"
)

const (
	// StatusHealthy 상태 수집에 성공했을 때의 status 값
	StatusHealthy = "healthy"

	// StatusUnhealthy 상태 수집에 실패했을 때의 status 값
	StatusUnhealthy = "unhealthy"

	// DefaultEnvironment 배포 환경 환경 변수가 비어 있을 때 보고하는 값
	DefaultEnvironment = "development"

	// DefaultEnvironmentVariable 배포 환경 이름을 읽어올 기본 환경 변수
	DefaultEnvironmentVariable = "APP_ENV"

	// TimestampLayout ISO-8601 UTC, 밀리초 정밀도 (예: 2026-01-02T03:04:05.678Z)
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// MemoryUsage 메모리 항목 이름 -> 바이트 수
type MemoryUsage map[string]uint64

// Snapshot 특정 시점의 프로세스 상태 (수집 성공)
type Snapshot struct {
	Status        string      `json:"status" example:"healthy"`
	Timestamp     string      `json:"timestamp" example:"2026-01-02T03:04:05.678Z"`
	UptimeSeconds float64     `json:"uptimeSeconds" example:"12.345"`
	Memory        MemoryUsage `json:"memory"`
	Environment   string      `json:"environment" example:"development"`
}

// Failure 상태 수집 실패
type Failure struct {
	Status    string `json:"status" example:"unhealthy"`
	Error     string `json:"error" example:"boom"`
	Timestamp string `json:"timestamp" example:"2026-01-02T03:04:05.678Z"`
}

// Result Snapshot 또는 Failure 중 정확히 하나를 담습니다.
type Result struct {
	snapshot *Snapshot
	failure  *Failure
}

func newSnapshotResult(s Snapshot) Result {
	return Result{snapshot: &s}
}

func newFailureResult(f Failure) Result {
	return Result{failure: &f}
}

// Healthy 수집에 성공했으면 true를 반환합니다.
func (r Result) Healthy() bool {
	return r.snapshot != nil
}

// StatusCode 성공이면 200, 실패면 500을 반환합니다.
func (r Result) StatusCode() int {
	if r.Healthy() {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// Body 응답 본문으로 직렬화할 값(Snapshot 또는 Failure)을 반환합니다.
func (r Result) Body() any {
	if r.snapshot != nil {
		return *r.snapshot
	}
	if r.failure != nil {
		return *r.failure
	}
	return nil
}

// Snapshot 수집 결과가 성공인 경우 Snapshot을 반환합니다.
func (r Result) Snapshot() (Snapshot, bool) {
	if r.snapshot == nil {
		return Snapshot{}, false
	}
	return *r.snapshot, true
}

// Failure 수집 결과가 실패인 경우 Failure를 반환합니다.
func (r Result) Failure() (Failure, bool) {
	if r.failure == nil {
		return Failure{}, false
	}
	return *r.failure, true
}

// FormatTimestamp t를 UTC 기준 TimestampLayout 문자열로 변환합니다.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
