// Package health 프로세스의 현재 상태(가동 시간, 메모리, 배포 환경)를 수집하여 헬스 체크 결과로 만듭니다.
//
// 수집 결과는 예외 흐름이 아닌 Result 값으로 표현됩니다.
//
//	reporter := health.NewReporter(health.NewRuntimeProbe("/proc/self/stat"), "APP_ENV")
//	result := reporter.GetHealth()
//	return c.JSON(result.StatusCode(), result.Body())
package health

import (
	"fmt"
	"maps"
	"time"

	applog "github.com/FABAINT/open-lovable/pkg/log"
)

const component = "health.reporter"

// Reporter SystemProbe로부터 상태를 수집합니다. 내부에 변경 가능한 상태가 없으므로 동시 호출에 안전합니다.
type Reporter struct {
	probe               SystemProbe
	environmentVariable string
}

// NewReporter probe가 nil이면 panic이 발생합니다.
// environmentVariable이 비어 있으면 DefaultEnvironmentVariable을 사용합니다.
func NewReporter(probe SystemProbe, environmentVariable string) *Reporter {
	if probe == nil {
		panic("health: SystemProbe는 필수입니다")
	}
	if environmentVariable == "" {
		environmentVariable = DefaultEnvironmentVariable
	}

	return &Reporter{
		probe:               probe,
		environmentVariable: environmentVariable,
	}
}

// GetHealth 현재 상태를 수집합니다.
//
// 수집 중 발생한 에러와 probe의 panic은 모두 Failure 결과로 변환됩니다.
func (r *Reporter) GetHealth() (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			applog.WithComponentAndFields(component, applog.Fields{
				"panic": rec,
			}).Error("헬스 상태 수집 중 panic이 발생하였습니다")

			result = r.failure(err)
		}
	}()

	snapshot, err := r.collect()
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("헬스 상태 수집에 실패하였습니다")

		return r.failure(err)
	}

	return newSnapshotResult(snapshot)
}

func (r *Reporter) collect() (Snapshot, error) {
	now := r.probe.Now()

	uptime := r.probe.Uptime()
	if uptime < 0 {
		uptime = 0
	}

	memory, err := r.probe.MemoryUsage()
	if err != nil {
		return Snapshot{}, err
	}
	if memory == nil {
		memory = MemoryUsage{}
	} else {
		memory = maps.Clone(memory)
	}

	environment := r.probe.Getenv(r.environmentVariable)
	if environment == "" {
		environment = DefaultEnvironment
	}

	return Snapshot{
		Status:        StatusHealthy,
		Timestamp:     FormatTimestamp(now),
		UptimeSeconds: uptime.Seconds(),
		Memory:        memory,
		Environment:   environment,
	}, nil
}

func (r *Reporter) failure(err error) Result {
	return newFailureResult(Failure{
		Status:    StatusUnhealthy,
		Error:     err.Error(),
		Timestamp: FormatTimestamp(r.now()),
	})
}

// now probe.Now()가 panic을 일으키면 시스템 시계를 사용합니다.
func (r *Reporter) now() (t time.Time) {
	defer func() {
		if recover() != nil {
			t = time.Now()
		}
	}()
	return r.probe.Now()
}
