package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminateHostname(t *testing.T) {
	long := strings.Repeat("h", 80)
	var tests = []struct {
		buffer []byte
		want   string
	}{
		{[]byte("plc-01\x00\x00\x00"), "plc-01"},
		{[]byte("plc-02"), "plc-02"},
		{[]byte(long), long[:63]},
		{append(bytes.Repeat([]byte("x"), 64), 0), strings.Repeat("x", 63)},
		{[]byte{0, 'a'}, ""},
	}
	for _, test := range tests {
		if got := terminateHostname(test.buffer); got != test.want {
			t.Errorf("terminateHostname(%q) = %q", test.buffer, got)
		}
	}
}

func TestCheckInterfaceName(t *testing.T) {
	if err := CheckInterfaceName("eth0"); err != nil {
		t.Errorf("CheckInterfaceName(eth0): %s", err)
	}
	if err := CheckInterfaceName(strings.Repeat("e", 15)); err != nil {
		t.Errorf("15 byte name rejected: %s", err)
	}
	for length := 16; length < 40; length++ {
		name := strings.Repeat("e", length)
		if err := CheckInterfaceName(name); err != ErrNameTooLong {
			t.Errorf("%d byte name: error = %v", length, err)
		}
	}
}

func TestGetInterfaceAddressNameTooLong(t *testing.T) {
	name := strings.Repeat("e", 16)
	if _, _, err := GetInterfaceAddress(name); err != ErrNameTooLong {
		t.Errorf("GetInterfaceAddress: error = %v", err)
	}
	if _, err := GetHardwareAddress(name); err != ErrNameTooLong {
		t.Errorf("GetHardwareAddress: error = %v", err)
	}
}
