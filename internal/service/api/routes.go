package api

import (
	"net/http"

	"github.com/FABAINT/open-lovable/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// healthPaths 헬스체크 핸들러가 연결되는 경로 목록
// /api/health는 기존 웹 애플리케이션이 사용하던 경로입니다.
var healthPaths = []string{"/health", "/api/health"}

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: 헬스체크(/health, /api/health) 및 버전 정보(/version)
//   - API 문서: Swagger UI (/swagger/*)
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	registerSystemRoutes(e, h)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	for _, path := range healthPaths {
		e.Match([]string{http.MethodGet, http.MethodHead}, path, h.HealthCheckHandler)
	}
	e.GET("/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
