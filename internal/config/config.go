package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/FABAINT/open-lovable/internal/pkg/errors"
	"github.com/FABAINT/open-lovable/pkg/maputil"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "open-lovable"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: OPEN_LOVABLE_HTTP_SERVER__LISTEN_PORT=8080 -> http_server.listen_port
	EnvPrefix = "OPEN_LOVABLE_"

	// ------------------------------------------------------------------------------------------------
	// 기본값
	// ------------------------------------------------------------------------------------------------

	DefaultListenPort              = 3000
	DefaultRequestTimeout          = 60 * time.Second
	DefaultShutdownTimeout         = 5 * time.Second
	DefaultRateLimitPerSecond      = 20
	DefaultRateLimitBurst          = 40
	DefaultEnvironmentVariable     = "APP_ENV"
	DefaultProcStatPath            = "/proc/self/stat"
	DefaultHeartbeatTimeSpec       = "@every 1m"
	DefaultCORSAllowOriginWildcard = "*"
)

// newDefaultConfig 설정 파일과 환경 변수가 모두 없을 때 사용되는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		HTTPServer: HTTPServerConfig{
			ListenPort:      DefaultListenPort,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{DefaultCORSAllowOriginWildcard},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: DefaultRateLimitPerSecond,
			Burst:             DefaultRateLimitBurst,
		},
		Health: HealthConfig{
			EnvironmentVariable: DefaultEnvironmentVariable,
			ProcStatPath:        DefaultProcStatPath,
			Heartbeat: HeartbeatConfig{
				Enabled:  false,
				TimeSpec: DefaultHeartbeatTimeSpec,
			},
		},
	}
}

// Load 기본 설정 파일(DefaultFilename)을 읽어 설정을 로드합니다.
// 기본 설정 파일이 없으면 기본값과 환경 변수만으로 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

// load 기본값 < JSON 파일 < 환경 변수 순서로 설정을 병합한 뒤 구조체로 변환하고 검증합니다.
func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
			// 기본 설정 파일이 없으면 기본값 + 환경 변수로 계속 진행한다.
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 (최우선)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 변환
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &appConfig,
			TagName:          "json",
			ErrorUnused:      true, // 알 수 없는 키는 오타로 간주한다.
			WeaklyTypedInput: true,
			DecodeHook:       maputil.DecodeHook(),
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(validate); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 이중 언더스코어(__)가 계층 구분자입니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
