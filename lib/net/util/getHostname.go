package util

import (
	"bytes"

	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

func getHostname() (string, error) {
	buffer, err := readNodename()
	if err != nil {
		return "", err
	}
	return terminateHostname(buffer), nil
}

// terminateHostname stops at the first NUL and never returns more than
// tcpip.MaxHostnameLength bytes, whether or not the buffer was terminated.
func terminateHostname(buffer []byte) string {
	if index := bytes.IndexByte(buffer, 0); index >= 0 {
		buffer = buffer[:index]
	}
	if len(buffer) > tcpip.MaxHostnameLength {
		buffer = buffer[:tcpip.MaxHostnameLength]
	}
	return string(buffer)
}
