package config

import (
	"fmt"
	"slices"
	"time"

	apperrors "github.com/FABAINT/open-lovable/internal/pkg/errors"
	"github.com/FABAINT/open-lovable/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	HTTPServer HTTPServerConfig `json:"http_server"`
	CORS       CORSConfig       `json:"cors"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Health     HealthConfig     `json:"health"`
}

// validate 로드 직후 각 설정 항목의 정합성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.HTTPServer.validate(v); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, &c.RateLimit, "요청 제한(rate_limit)"); err != nil {
		return err
	}
	return checkStruct(v, &c.Health, "헬스 체크(health)")
}

// VerifyRecommendations 강제하지는 않지만 운영 환경에서 권장되지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다 (listen_port=%d). 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}
	if !c.Debug && slices.Contains(c.CORS.AllowOrigins, DefaultCORSAllowOriginWildcard) {
		warnings = append(warnings, "운영 모드에서 모든 출처(*)의 CORS 요청을 허용하고 있습니다. 허용 도메인을 명시하는 것을 권장합니다")
	}
	if c.Health.ProcStatPath == "" {
		warnings = append(warnings, "proc_stat_path가 비어 있어 헬스 체크 응답에 rss 항목이 포함되지 않습니다")
	}

	return warnings
}

// HTTPServerConfig HTTP 서버 설정
type HTTPServerConfig struct {
	ListenPort      int           `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer       bool          `json:"tls_server"`
	TLSCertFile     string        `json:"tls_cert_file"`
	TLSKeyFile      string        `json:"tls_key_file"`
	RequestTimeout  time.Duration `json:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
}

func (c *HTTPServerConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "HTTP 서버(http_server)"); err != nil {
		return err
	}

	if c.TLSServer {
		if err := validation.ValidateFile(c.TLSCertFile); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "TLS 인증서 파일(tls_cert_file) 설정이 올바르지 않습니다")
		}
		if err := validation.ValidateFile(c.TLSKeyFile); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "TLS 키 파일(tls_key_file) 설정이 올바르지 않습니다")
		}
	}

	return nil
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	if slices.Contains(c.AllowOrigins, DefaultCORSAllowOriginWildcard) && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}

	return checkStruct(v, c, "CORS(cors)")
}

// RateLimitConfig IP 단위 요청 제한 설정
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}

// HealthConfig 헬스 체크 설정
type HealthConfig struct {
	// EnvironmentVariable 배포 환경 이름을 읽어올 환경 변수 이름
	EnvironmentVariable string `json:"environment_variable" validate:"required"`

	// ProcStatPath RSS 계산에 사용할 procfs stat 파일 경로. 비어 있으면 rss를 보고하지 않는다.
	ProcStatPath string `json:"proc_stat_path"`

	Heartbeat HeartbeatConfig `json:"heartbeat"`
}

// HeartbeatConfig 주기적 헬스 로그 설정
type HeartbeatConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"cron_spec"`
}
