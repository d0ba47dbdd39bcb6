// Package testing provides helpers for exercising the control API in tests.
package testing

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/duopad/duopad/bridge"
	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/merger"
	"github.com/duopad/duopad/output"
)

// StartAPIServer builds a full merger stack on a recording bridge and serves
// the control API on an ephemeral port. The register callback wires routes
// before the listener opens. done closes the server.
func StartAPIServer(t *testing.T, config api.ServerConfig, register func(r *api.Router, e *merger.Engine, apiSrv *api.Server)) (addr string, e *merger.Engine, rec *bridge.Recorder, done func()) {
	t.Helper()

	rec = bridge.NewRecorder()
	drv := output.New(rec, output.Config{
		DeviceName:  "test-pad",
		Tick:        time.Millisecond,
		JoinTimeout: time.Second,
	}, nil)
	if err := drv.Initialize(); err != nil {
		t.Fatalf("initialize driver: %v", err)
	}
	e = merger.New(drv, merger.Config{Tick: time.Millisecond, JoinTimeout: time.Second}, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	addr = ln.Addr().String()
	_ = ln.Close()

	apiSrv := api.New(e, addr, config, slog.Default())
	if register != nil {
		register(apiSrv.Router(), e, apiSrv)
	}
	if err := apiSrv.Start(); err != nil {
		t.Fatalf("api start failed: %v", err)
	}

	done = func() {
		apiSrv.Close()
		e.Stop()
		time.Sleep(10 * time.Millisecond)
	}
	return addr, e, rec, done
}

// ExecCmd dials the API server, sends cmd and reads the full response.
// The command should not include a trailing newline. Returns the response
// without the trailing newline.
func ExecCmd(t *testing.T, addr string, cmd string) string {
	t.Helper()
	c, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer c.Close()

	// Send command with null terminator (\x00) to match API server framing
	_, _ = fmt.Fprintf(c, "%s\x00", cmd)

	// Read response
	r := bufio.NewReader(c)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		t.Fatalf("read failed: %v", err)
	}

	result := strings.TrimSuffix(line, "\n")
	result = strings.TrimSuffix(result, "\r")
	return result
}
