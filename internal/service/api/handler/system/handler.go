// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"

	"github.com/FABAINT/open-lovable/internal/health"
	"github.com/FABAINT/open-lovable/internal/pkg/version"
	"github.com/FABAINT/open-lovable/internal/service/api/constants"
	systemmodel "github.com/FABAINT/open-lovable/internal/service/api/model/system"
	applog "github.com/FABAINT/open-lovable/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthReporter 헬스 상태를 수집하는 컴포넌트의 인터페이스입니다.
type HealthReporter interface {
	GetHealth() health.Result
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	reporter HealthReporter

	buildInfo version.Info
}

// New Handler 인스턴스를 생성합니다.
func New(reporter HealthReporter, buildInfo version.Info) *Handler {
	if reporter == nil {
		panic(constants.PanicMsgHealthReporterRequired)
	}

	return &Handler{
		reporter: reporter,

		buildInfo: buildInfo,
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 프로세스 가동 시간, 메모리 사용량, 배포 환경을 반환합니다.
// @Description 인증 없이 호출 가능하며, 로드밸런서와 모니터링 시스템에서 사용됩니다.
// @Description 상태 수집에 실패하면 500 상태 코드와 함께 실패 원인을 반환합니다.
// @Description HEAD 요청은 본문 없이 같은 상태 코드만 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} health.Snapshot "정상"
// @Failure 500 {object} health.Failure "상태 수집 실패"
// @Router /health [get]
// @Router /health [head]
// @Router /api/health [get]
// @Router /api/health [head]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	result := h.reporter.GetHealth()

	if failure, ok := result.Failure(); ok {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"endpoint": c.Path(),
			"error":    failure.Error,
		}).Warn(constants.LogMsgHealthCheckUnhealthy)
	}

	// 헬스 상태는 항상 최신 값이어야 하므로 캐시를 금지한다.
	c.Response().Header().Set("Cache-Control", "no-store")

	if c.Request().Method == http.MethodHead {
		return c.NoContent(result.StatusCode())
	}

	return c.JSON(result.StatusCode(), result.Body())
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 애플리케이션 버전, Git 커밋 해시, 빌드 날짜, Go 버전, 실행 플랫폼을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, systemmodel.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		Dirty:     h.buildInfo.Dirty,
		GoVersion: h.buildInfo.GoVersion,
		Platform:  h.buildInfo.OS + "/" + h.buildInfo.Arch,
	})
}
