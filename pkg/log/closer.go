package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Setup()이 생성한 로그 파일들의 해제를 한 번에 처리합니다.
// 파일을 닫기 전에 Hook을 먼저 닫아, 닫힌 파일로의 쓰기를 차단합니다.
type closer struct {
	closers []io.Closer

	hook *hook

	closed atomic.Bool
}

// Close 모든 리소스를 해제합니다. 두 번째 이후의 호출은 아무 일도 하지 않습니다.
func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}

		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}

		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// silentFormatter 아무것도 출력하지 않는 포맷터입니다.
// 실제 포맷팅은 hook에서 한 번만 수행하므로, logrus 기본 출력 경로의 포맷팅 비용을 없앱니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}
