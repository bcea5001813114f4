// Package duration 사람이 읽기 쉬운 기간 문자열("2 days", "1.5h", "250ms")과 time.Duration 간의 변환을 제공합니다.
//
// 숫자만 입력하면 밀리초로 해석합니다.
//
//	d, _ := duration.Parse("2 days")    // 48h0m0s
//	d, _ = duration.Parse("1.5h")       // 1h30m0s
//	d, _ = duration.Parse("100")        // 100ms
//
//	duration.Format(90 * time.Second)   // "2m"
//	duration.FormatLong(time.Hour)      // "1 hour"
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// maxInputLength 이보다 긴 입력은 파싱하지 않습니다.
	maxInputLength = 100

	day  = 24 * time.Hour
	week = 7 * day
	year = time.Duration(365.25 * float64(day))
)

var expr = regexp.MustCompile(`(?i)^(-?(?:\d+)?\.?\d+) *(milliseconds?|msecs?|ms|seconds?|secs?|s|minutes?|mins?|m|hours?|hrs?|h|days?|d|weeks?|w|years?|yrs?|y)?$`)

var units = map[string]time.Duration{
	"years": year, "year": year, "yrs": year, "yr": year, "y": year,
	"weeks": week, "week": week, "w": week,
	"days": day, "day": day, "d": day,
	"hours": time.Hour, "hour": time.Hour, "hrs": time.Hour, "hr": time.Hour, "h": time.Hour,
	"minutes": time.Minute, "minute": time.Minute, "mins": time.Minute, "min": time.Minute, "m": time.Minute,
	"seconds": time.Second, "second": time.Second, "secs": time.Second, "sec": time.Second, "s": time.Second,
	"milliseconds": time.Millisecond, "millisecond": time.Millisecond, "msecs": time.Millisecond, "msec": time.Millisecond, "ms": time.Millisecond,
}

// Parse 기간 문자열을 time.Duration으로 변환합니다.
func Parse(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("기간 문자열이 비어 있습니다")
	}
	if len(s) > maxInputLength {
		return 0, fmt.Errorf("기간 문자열이 너무 깁니다 (len=%d, max=%d)", len(s), maxInputLength)
	}

	m := expr.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("기간 문자열 형식이 올바르지 않습니다: %q", s)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("기간 문자열의 숫자 부분을 해석할 수 없습니다: %q: %w", s, err)
	}

	unit := time.Millisecond
	if m[2] != "" {
		unit = units[strings.ToLower(m[2])]
	}

	v := n * float64(unit)
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, fmt.Errorf("기간 값이 표현 가능한 범위를 벗어났습니다: %q", s)
	}

	return time.Duration(v), nil
}

// Format 가장 큰 단위 하나로 축약한 문자열을 반환합니다. (예: "2d", "3h", "250ms")
func Format(d time.Duration) string {
	ms := millis(d)
	abs := math.Abs(ms)

	switch {
	case abs >= millis(day):
		return formatShort(ms, day, "d")
	case abs >= millis(time.Hour):
		return formatShort(ms, time.Hour, "h")
	case abs >= millis(time.Minute):
		return formatShort(ms, time.Minute, "m")
	case abs >= millis(time.Second):
		return formatShort(ms, time.Second, "s")
	}

	return formatNumber(ms) + "ms"
}

// FormatLong 단위 이름을 풀어 쓴 문자열을 반환합니다. (예: "2 days", "1 hour", "250 ms")
func FormatLong(d time.Duration) string {
	ms := millis(d)
	abs := math.Abs(ms)

	switch {
	case abs >= millis(day):
		return formatPlural(ms, abs, day, "day")
	case abs >= millis(time.Hour):
		return formatPlural(ms, abs, time.Hour, "hour")
	case abs >= millis(time.Minute):
		return formatPlural(ms, abs, time.Minute, "minute")
	case abs >= millis(time.Second):
		return formatPlural(ms, abs, time.Second, "second")
	}

	return formatNumber(ms) + " ms"
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func formatShort(ms float64, unit time.Duration, suffix string) string {
	return formatNumber(round(ms/millis(unit))) + suffix
}

func formatPlural(ms, abs float64, unit time.Duration, name string) string {
	u := millis(unit)
	s := formatNumber(round(ms/u)) + " " + name
	if abs >= u*1.5 {
		s += "s"
	}
	return s
}

// round 0.5는 양의 무한대 방향으로 올립니다. (-2.5 -> -2)
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
