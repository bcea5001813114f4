// Package service 애플리케이션을 구성하는 백그라운드 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main에서 일괄적으로 시작/종료되는 서비스입니다.
//
// Start를 호출하기 전에 호출자가 serviceStopWG.Add(1)을 수행해야 하며,
// 서비스는 serviceStopCtx가 취소되어 완전히 종료된 뒤(또는 시작에 실패하거나 이미 실행 중인 경우 즉시)
// serviceStopWG.Done()을 정확히 한 번 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
