// Package testutil 서비스 수명주기 테스트에서 공통으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// pollInterval 서버 준비 상태를 확인하는 주기
const pollInterval = 10 * time.Millisecond

// FreePort 루프백 인터페이스에서 사용 가능한 임의의 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForListener port에서 TCP 연결을 받을 수 있을 때까지 기다립니다.
func WaitForListener(port int, timeout time.Duration) error {
	address := fmt.Sprintf("127.0.0.1:%d", port)

	for deadline := time.Now().Add(timeout); time.Now().Before(deadline); time.Sleep(pollInterval) {
		conn, err := net.DialTimeout("tcp", address, pollInterval)
		if err == nil {
			return conn.Close()
		}
	}

	return fmt.Errorf("%s 포트가 %v 안에 열리지 않았습니다", address, timeout)
}

// WaitForStatus url에 GET 요청을 보내 want 상태 코드를 받을 때까지 기다립니다.
// 마지막으로 받은 상태 코드(연결 실패 시 0)를 반환합니다.
func WaitForStatus(client *http.Client, url string, want int, timeout time.Duration) (int, error) {
	last := 0

	for deadline := time.Now().Add(timeout); time.Now().Before(deadline); time.Sleep(pollInterval) {
		resp, err := client.Get(url)
		if err != nil {
			continue
		}
		resp.Body.Close()

		last = resp.StatusCode
		if last == want {
			return last, nil
		}
	}

	return last, fmt.Errorf("%s 응답이 %v 안에 %d 상태가 되지 않았습니다 (마지막 상태: %d)", url, timeout, want, last)
}
