// Package maputil 설정 맵을 구조체로 디코딩할 때 사용하는 mapstructure 훅을 제공합니다.
package maputil

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/FABAINT/open-lovable/pkg/duration"
	"github.com/FABAINT/open-lovable/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
)

var durationType = reflect.TypeOf(time.Duration(0))

// DecodeHook 설정 디코딩에 사용하는 훅 체인을 반환합니다.
//
//   - "1.5h", "30 seconds", "250" -> time.Duration
//   - "a, b" -> []string{"a", "b"}
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		StringToDurationHookFunc(),
		StringToSliceHookFunc(","),
	)
}

// StringToDurationHookFunc 문자열을 time.Duration으로 변환합니다.
//
// 단위가 없는 숫자는 밀리초로 해석합니다. time.Duration 이외의 int64 타입은 변환하지 않습니다.
func StringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != durationType {
			return data, nil
		}

		s := strings.TrimSpace(reflect.ValueOf(data).String())

		// Go 표준 표기("1h30m")를 먼저 시도한다.
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}

		d, err := duration.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("기간 값 %q을(를) 해석할 수 없습니다: %w", s, err)
		}
		return d, nil
	}
}

// StringToSliceHookFunc sep으로 구분된 문자열을 []string으로 변환합니다. []byte 대상은 건드리지 않습니다.
func StringToSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		parts := strutil.SplitAndTrim(reflect.ValueOf(data).String(), sep)
		if parts == nil {
			return []string{}, nil
		}
		return parts, nil
	}
}
