// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import "strings"

const maskSuffix = "***"

// Mask 로그에 남기면 안 되는 값을 부분적으로 가립니다.
//
//   - 3자 이하: "***"
//   - 12자 이하: 앞 4자 + "***"
//   - 그 외: 앞 4자 + "***" + 뒤 4자
func Mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return maskSuffix
	case len(s) <= 12:
		return s[:4] + maskSuffix
	}
	return s[:4] + maskSuffix + s[len(s)-4:]
}

// SplitAndTrim sep으로 나눈 뒤 공백을 제거하고 빈 항목은 버립니다. 결과가 없으면 nil을 반환합니다.
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}
