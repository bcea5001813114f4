// Package version 빌드 시점에 주입된 메타데이터와 런타임 환경 정보를 제공합니다.
//
// 링커 플래그 예시:
//
//	go build -ldflags "-X github.com/FABAINT/open-lovable/internal/pkg/version.appVersion=v1.0.0 \
//	                   -X github.com/FABAINT/open-lovable/internal/pkg/version.gitCommitHash=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const (
	unknown = "unknown"
	none    = "none"

	// shortCommitLength String()에서 사용하는 커밋 해시 길이
	shortCommitLength = 7
)

var current atomic.Pointer[Info]

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

// 링커 플래그(-ldflags -X)로 주입되는 값입니다. 직접 참조하지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
)

func init() {
	info := Info{
		Version:   strings.TrimSpace(appVersion),
		Commit:    strings.TrimSpace(gitCommitHash),
		BuildDate: strings.TrimSpace(buildDate),
		Dirty:     strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}

	set(enrich(info))
}

// Info 애플리케이션 빌드 정보
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Dirty     bool   `json:"dirty"`
}

// Get 현재 빌드 정보를 반환합니다.
func Get() Info {
	if info := current.Load(); info != nil {
		return *info
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown}
}

func set(info Info) {
	current.Store(&info)
}

// enrich 비어 있는 필드를 런타임 정보와 debug.ReadBuildInfo()의 VCS 메타데이터로 채웁니다.
// ldflags로 주입된 값이 우선합니다.
func enrich(info Info) Info {
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	if info.OS == "" {
		info.OS = runtime.GOOS
	}
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if isUnset(info.Commit) {
					info.Commit = setting.Value
				}
			case "vcs.time":
				if isUnset(info.BuildDate) {
					info.BuildDate = setting.Value
				}
			case "vcs.modified":
				if setting.Value == "true" {
					info.Dirty = true
				}
			}
		}

		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}
	if isUnset(info.Commit) {
		info.Commit = unknown
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}

	return info
}

func isUnset(v string) bool {
	return v == "" || v == unknown || v == none
}

// Version 애플리케이션 버전 문자열을 반환합니다.
func Version() string {
	return Get().Version
}

// Commit Git 커밋 해시를 반환합니다.
func Commit() string {
	return Get().Commit
}

// ToMap 구조화 로깅용 필드 맵을 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":    i.Version,
		"commit":     i.Commit,
		"build_date": i.BuildDate,
		"go_version": i.GoVersion,
		"os":         i.OS,
		"arch":       i.Arch,
		"dirty":      i.Dirty,
	}
}

// String 예: "v1.0.0+dirty (commit: f25b8bf, date: 2026-01-01T00:00:00Z, go: go1.24.0, linux/amd64)"
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.Dirty {
		v += "+dirty"
	}

	var details []string
	if !isUnset(i.Commit) {
		commit := i.Commit
		if len(commit) > shortCommitLength {
			commit = commit[:shortCommitLength]
		}
		details = append(details, "commit: "+commit)
	}
	if !isUnset(i.BuildDate) {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go: "+i.GoVersion)
	}
	if i.OS != "" && i.Arch != "" {
		details = append(details, fmt.Sprintf("%s/%s", i.OS, i.Arch))
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
