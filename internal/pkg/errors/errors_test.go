package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(InvalidInput, "잘못된 포트")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, InvalidInput, appErr.Type())
	assert.Equal(t, "잘못된 포트", appErr.Message())
	assert.Equal(t, "[InvalidInput] 잘못된 포트", err.Error())

	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File, "0번째 프레임은 호출 위치여야 합니다")
	assert.Contains(t, appErr.Stack()[0].Function, "TestNew")
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(NotFound, "파일(%s)을 찾을 수 없습니다", "a.json")
	assert.Equal(t, "[NotFound] 파일(a.json)을 찾을 수 없습니다", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil 반환", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, System, "msg"))
		assert.Nil(t, Wrapf(nil, System, "msg %d", 1))
	})

	t.Run("원인 에러 메시지 포함", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := Wrap(cause, System, "메모리 정보 수집 실패")

		assert.Equal(t, "[System] 메모리 정보 수집 실패: boom", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.Same(t, cause, RootCause(err))
	})

	t.Run("Wrapf 포맷", func(t *testing.T) {
		err := Wrapf(fs.ErrNotExist, System, "%s 읽기 실패", "/proc/self/stat")
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "/proc/self/stat 읽기 실패")
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "not found"), Internal, "query failed")

	assert.True(t, Is(err, Internal))
	assert.True(t, Is(err, NotFound))
	assert.False(t, Is(err, System))
	assert.False(t, Is(nil, Unknown))
	assert.False(t, Is(stderrors.New("plain"), Unknown))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "nil", err: nil, want: Unknown},
		{name: "표준 에러", err: stderrors.New("x"), want: Unknown},
		{name: "단일 AppError", err: New(System, "x"), want: System},
		{name: "AppError 체인", err: Wrap(New(NotFound, "x"), Internal, "y"), want: NotFound},
		{name: "외부 에러 래핑", err: Wrap(context.DeadlineExceeded, Unavailable, "y"), want: Unavailable},
		{name: "fmt 래핑", err: fmt.Errorf("outer: %w", New(ParsingFailed, "x")), want: ParsingFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UnderlyingType(tt.err))
		})
	}
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	root := stderrors.New("disk failure")
	err := Wrap(Wrap(root, System, "low"), Internal, "high")

	t.Run("%v / %s", func(t *testing.T) {
		assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
		assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
		assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
	})

	t.Run("%+v", func(t *testing.T) {
		out := fmt.Sprintf("%+v", err)

		assert.Contains(t, out, "[Internal] high")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "[System] low")
		assert.Contains(t, out, "disk failure")
		assert.Equal(t, 1, strings.Count(out, "Stack trace:"), "스택은 외부 에러와의 경계에서 한 번만 출력되어야 합니다")
	})
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "System", System.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
}
