package prefixlogger

import (
	"testing"

	"github.com/chenzhuo1005/OpENer/lib/log/testlogger"
)

func TestPrefix(t *testing.T) {
	logger := testlogger.New(t)
	prefixed := New("eth0: ", logger)
	prefixed.Printf("address %s\n", "10.0.0.2")
	prefixed.Debugf(1, "gateway %s", "unset")
	lines := logger.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	if lines[0] != "eth0: address 10.0.0.2" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "eth0: gateway unset" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}
