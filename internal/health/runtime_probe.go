package health

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"runtime"
	"time"

	apperrors "github.com/FABAINT/open-lovable/internal/pkg/errors"
	"github.com/c9s/goprocinfo/linux"
	"github.com/iancoleman/strcase"
)

// processStartTime 가동 시간 계산의 기준 시각 (패키지 초기화 시점)
var processStartTime = time.Now()

// memStatsFields 응답에 포함할 runtime.MemStats 필드. 키는 lowerCamelCase로 변환된다. (예: HeapAlloc -> heapAlloc)
var memStatsFields = []string{
	"HeapAlloc",
	"HeapSys",
	"HeapIdle",
	"HeapInuse",
	"StackInuse",
	"Sys",
	"TotalAlloc",
}

const (
	memoryKeyHeapTotal = "heapTotal"
	memoryKeyHeapUsed  = "heapUsed"
	memoryKeyRSS       = "rss"
)

// RuntimeProbe Go 런타임과 procfs에서 값을 읽는 SystemProbe 구현체입니다.
type RuntimeProbe struct {
	procStatPath string
	startTime    time.Time
	pageSize     int

	readMemStats    func(*runtime.MemStats)
	readProcessStat func(path string) (*linux.ProcessStat, error)
	getenv          func(string) string
}

// NewRuntimeProbe procStatPath가 비어 있으면 rss 항목을 수집하지 않습니다.
func NewRuntimeProbe(procStatPath string) *RuntimeProbe {
	return &RuntimeProbe{
		procStatPath: procStatPath,
		startTime:    processStartTime,
		pageSize:     os.Getpagesize(),

		readMemStats:    runtime.ReadMemStats,
		readProcessStat: linux.ReadProcessStat,
		getenv:          os.Getenv,
	}
}

func (p *RuntimeProbe) Now() time.Time {
	return time.Now()
}

func (p *RuntimeProbe) Uptime() time.Duration {
	return time.Since(p.startTime)
}

func (p *RuntimeProbe) Getenv(key string) string {
	return p.getenv(key)
}

// MemoryUsage 런타임 메모리 통계와 RSS를 수집합니다.
//
// procfs 파일이 존재하지 않는 환경(Linux 이외)에서는 rss를 생략하고, 그 외의 procfs 오류는 실패로 처리합니다.
func (p *RuntimeProbe) MemoryUsage() (MemoryUsage, error) {
	var ms runtime.MemStats
	p.readMemStats(&ms)

	usage := make(MemoryUsage, len(memStatsFields)+3)

	v := reflect.ValueOf(ms)
	for _, name := range memStatsFields {
		usage[strcase.ToLowerCamel(name)] = v.FieldByName(name).Uint()
	}
	usage[memoryKeyHeapTotal] = ms.HeapSys
	usage[memoryKeyHeapUsed] = ms.HeapAlloc

	if p.procStatPath == "" {
		return usage, nil
	}

	stat, err := p.readProcessStat(p.procStatPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return usage, nil
		}
		return nil, apperrors.Wrapf(err, apperrors.System, "프로세스 상태 파일(%s)을 읽을 수 없습니다", p.procStatPath)
	}
	if stat.Rss < 0 {
		return nil, apperrors.Newf(apperrors.ParsingFailed, "프로세스 상태 파일(%s)의 rss 값이 올바르지 않습니다: %d", p.procStatPath, stat.Rss)
	}
	usage[memoryKeyRSS] = uint64(stat.Rss) * uint64(p.pageSize)

	return usage, nil
}
