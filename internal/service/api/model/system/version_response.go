package system

// VersionResponse 서버 버전 정보 응답
type VersionResponse struct {
	// 애플리케이션 버전 (ldflags 또는 모듈 버전)
	Version string `json:"version" example:"v1.2.0"`
	// Git 커밋 해시
	Commit string `json:"commit" example:"f25b8bf0c1d2"`
	// 빌드 시간(UTC, RFC3339)
	BuildDate string `json:"build_date" example:"2026-01-01T14:00:00Z"`
	// 빌드 당시 작업 트리 변경 여부
	Dirty bool `json:"dirty" example:"false"`
	// 컴파일러 버전
	GoVersion string `json:"go_version" example:"go1.24.0"`
	// 실행 플랫폼 (OS/Arch)
	Platform string `json:"platform" example:"linux/amd64"`
}
