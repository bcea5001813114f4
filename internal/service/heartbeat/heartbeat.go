// Package heartbeat 설정된 Cron 주기마다 헬스 상태를 수집하여 로그로 남기는 서비스를 제공합니다.
package heartbeat

import (
	"context"
	"sync"
	"time"

	"github.com/FABAINT/open-lovable/internal/config"
	"github.com/FABAINT/open-lovable/internal/health"
	"github.com/FABAINT/open-lovable/pkg/cronx"
	"github.com/FABAINT/open-lovable/pkg/duration"
	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Heartbeat 서비스의 로깅용 컴포넌트 이름
const component = "heartbeat.service"

// HealthReporter 하트비트가 호출하는 헬스 상태 수집기입니다.
type HealthReporter interface {
	GetHealth() health.Result
}

// Heartbeat 주기적으로 헬스 상태를 로그에 기록하는 서비스입니다.
type Heartbeat struct {
	config config.HeartbeatConfig

	reporter HealthReporter

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Heartbeat 서비스 인스턴스를 생성합니다.
func NewService(cfg config.HeartbeatConfig, reporter HealthReporter) *Heartbeat {
	if reporter == nil {
		panic("HealthReporter는 필수입니다")
	}

	return &Heartbeat{
		config: cfg,

		reporter: reporter,
	}
}

// Start 하트비트 스케줄을 등록하고 Cron 엔진을 시작합니다.
//
// 비활성화 상태이거나 이미 실행 중이면 serviceStopWG.Done()을 즉시 호출하고 nil을 반환합니다.
// Cron 표현식이 올바르지 않으면 serviceStopWG.Done()을 호출하고 에러를 반환합니다.
func (h *Heartbeat) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	h.runningMu.Lock()
	defer h.runningMu.Unlock()

	if !h.config.Enabled {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("Heartbeat 서비스가 비활성화되어 있습니다")
		return nil
	}

	if h.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Heartbeat 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := c.AddFunc(h.config.TimeSpec, h.beat); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(h.config.TimeSpec, err)
	}

	h.cron = c
	h.cron.Start()
	h.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": h.config.TimeSpec,
	}).Info("Heartbeat 서비스 시작됨")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		h.stop()
	}()

	return nil
}

// stop Cron 엔진을 중지하고 실행 중인 하트비트가 끝날 때까지 기다립니다.
func (h *Heartbeat) stop() {
	h.runningMu.Lock()
	defer h.runningMu.Unlock()

	if !h.running {
		return
	}

	if h.cron != nil {
		<-h.cron.Stop().Done()
	}

	h.cron = nil
	h.running = false

	applog.WithComponent(component).Info("Heartbeat 서비스 중지됨")
}

// beat 헬스 상태를 한 번 수집하여 결과를 로그로 남깁니다.
func (h *Heartbeat) beat() {
	result := h.reporter.GetHealth()

	if snapshot, ok := result.Snapshot(); ok {
		uptime := time.Duration(snapshot.UptimeSeconds * float64(time.Second))

		applog.WithComponentAndFields(component, applog.Fields{
			"status":         snapshot.Status,
			"uptime":         duration.FormatLong(uptime),
			"uptime_seconds": snapshot.UptimeSeconds,
			"memory":         snapshot.Memory,
			"environment":    snapshot.Environment,
		}).Info("Heartbeat: healthy")
		return
	}

	if failure, ok := result.Failure(); ok {
		applog.WithComponentAndFields(component, applog.Fields{
			"status":    failure.Status,
			"error":     failure.Error,
			"timestamp": failure.Timestamp,
		}).Error("Heartbeat: unhealthy")
	}
}
