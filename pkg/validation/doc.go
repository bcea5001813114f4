// Package validation 설정 파일과 환경 변수로 들어오는 값(포트, 호스트, CORS Origin, 파일 경로)을 검증합니다.
//
// 모든 함수는 상태를 갖지 않으며, 유효하지 않은 입력에 대해 원인을 담은 error를 반환합니다.
package validation
