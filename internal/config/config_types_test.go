package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	certFile := filepath.Join(dir, "server.crt")
	keyFile := filepath.Join(dir, "server.key")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0o600))
	require.NoError(t, os.WriteFile(keyFile, []byte("key"), 0o600))

	tests := []struct {
		name      string
		modify    func(c *AppConfig)
		errSubstr string
	}{
		{name: "성공: 기본 설정", modify: func(c *AppConfig) {}},
		{
			name: "성공: TLS 파일 존재",
			modify: func(c *AppConfig) {
				c.HTTPServer.TLSServer = true
				c.HTTPServer.TLSCertFile = certFile
				c.HTTPServer.TLSKeyFile = keyFile
			},
		},
		{
			name:   "성공: 비활성 heartbeat의 빈 스케줄",
			modify: func(c *AppConfig) { c.Health.Heartbeat.TimeSpec = "" },
		},
		{
			name:      "실패: 포트 범위",
			modify:    func(c *AppConfig) { c.HTTPServer.ListenPort = 0 },
			errSubstr: "listen_port",
		},
		{
			name:      "실패: 요청 타임아웃 0",
			modify:    func(c *AppConfig) { c.HTTPServer.RequestTimeout = 0 },
			errSubstr: "request_timeout",
		},
		{
			name: "실패: TLS 인증서 누락",
			modify: func(c *AppConfig) {
				c.HTTPServer.TLSServer = true
				c.HTTPServer.TLSKeyFile = keyFile
			},
			errSubstr: "tls_cert_file",
		},
		{
			name: "실패: TLS 키 파일 없음",
			modify: func(c *AppConfig) {
				c.HTTPServer.TLSServer = true
				c.HTTPServer.TLSCertFile = certFile
				c.HTTPServer.TLSKeyFile = filepath.Join(dir, "missing.key")
			},
			errSubstr: "tls_key_file",
		},
		{
			name:      "실패: CORS 목록 비어 있음",
			modify:    func(c *AppConfig) { c.CORS.AllowOrigins = nil },
			errSubstr: "비어있습니다",
		},
		{
			name:      "실패: 와일드카드와 도메인 혼용",
			modify:    func(c *AppConfig) { c.CORS.AllowOrigins = []string{"*", "https://example.com"} },
			errSubstr: "와일드카드",
		},
		{
			name:      "실패: 잘못된 Origin",
			modify:    func(c *AppConfig) { c.CORS.AllowOrigins = []string{"https://example.com/path"} },
			errSubstr: "CORS Origin 형식",
		},
		{
			name:      "실패: 요청 제한 0",
			modify:    func(c *AppConfig) { c.RateLimit.Burst = 0 },
			errSubstr: "burst",
		},
		{
			name:      "실패: 환경 변수 이름 누락",
			modify:    func(c *AppConfig) { c.Health.EnvironmentVariable = "" },
			errSubstr: "environment_variable",
		},
		{
			name: "실패: 활성 heartbeat의 잘못된 스케줄",
			modify: func(c *AppConfig) {
				c.Health.Heartbeat.Enabled = true
				c.Health.Heartbeat.TimeSpec = "* * * * *"
			},
			errSubstr: "time_spec",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newDefaultConfig()
			tt.modify(&cfg)

			err := cfg.validate(validate)
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("기본 설정: 운영 모드 와일드카드 경고", func(t *testing.T) {
		cfg := newDefaultConfig()
		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "CORS")
	})

	t.Run("디버그 모드: 와일드카드 허용", func(t *testing.T) {
		cfg := newDefaultConfig()
		cfg.Debug = true
		assert.Empty(t, cfg.VerifyRecommendations())
	})

	t.Run("예약 포트 + rss 비활성", func(t *testing.T) {
		cfg := newDefaultConfig()
		cfg.Debug = true
		cfg.HTTPServer.ListenPort = 80
		cfg.Health.ProcStatPath = ""
		assert.Len(t, cfg.VerifyRecommendations(), 2)
	})
}
