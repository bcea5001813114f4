package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/FABAINT/open-lovable/internal/config"
	"github.com/FABAINT/open-lovable/internal/health"
	"github.com/FABAINT/open-lovable/internal/pkg/version"
	"github.com/FABAINT/open-lovable/internal/service"
	"github.com/FABAINT/open-lovable/internal/service/api"
	"github.com/FABAINT/open-lovable/internal/service/heartbeat"
	applog "github.com/FABAINT/open-lovable/pkg/log"
)

// @title Open Lovable Health API
// @version 1.0.0
// @description Open Lovable 웹 애플리케이션의 상태 확인용 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 프로세스 가동 시간, 메모리 사용량, 배포 환경 조회
// @description - 빌드 버전 정보 조회
// @description
// @description 모든 엔드포인트는 인증 없이 호출할 수 있으며, 로드밸런서와 모니터링 시스템에서 사용됩니다.

// @contact.name FABAINT
// @contact.url https://github.com/FABAINT

// @license.name MIT

// @BasePath /

const (
	banner = `
   ___                     _                    _     _
  / _ \ _ __   ___ _ __   | |    _____   ____ _| |__ | | ___
 | | | | '_ \ / _ \ '_ \  | |   / _ \ \ / / _' | '_ \| |/ _ \
 | |_| | |_) |  __/ | | | | |__| (_) \ V / (_| | |_) | |  __/
  \___/| .__/ \___|_| |_| |_____\___/ \_/ \__,_|_.__/|_|\___|
       |_|                                                   %s
                                                      developed by FABAINT
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(폰트:standard)
	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"mode":    runMode(appConfig.Debug),
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	if err := startServices(serviceStopCtx, serviceStopWG, newServices(appConfig, buildInfo)); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel() // 이미 시작된 서비스들도 종료
		serviceStopWG.Wait()

		appLogCloser.Close()
		os.Exit(1)
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신하였습니다")
	cancel()
	serviceStopWG.Wait()
}

// newServices 설정에 따라 애플리케이션 서비스들을 생성합니다.
// API 서비스와 하트비트는 같은 Reporter를 공유합니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info) []service.Service {
	reporter := health.NewReporter(
		health.NewRuntimeProbe(appConfig.Health.ProcStatPath),
		appConfig.Health.EnvironmentVariable,
	)

	return []service.Service{
		api.NewService(appConfig, reporter, buildInfo),
		heartbeat.NewService(appConfig.Health.Heartbeat, reporter),
	}
}

// startServices 서비스를 순서대로 시작하며, 하나라도 실패하면 즉시 에러를 반환합니다.
func startServices(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, services []service.Service) error {
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			return err
		}
	}
	return nil
}

// runMode 로그에 남길 실행 모드입니다. 배포 환경(APP_ENV)과는 별개입니다.
func runMode(debug bool) string {
	if debug {
		return "debug"
	}
	return "release"
}
