//go:build !linux
// +build !linux

package util

import (
	"errors"
	"net"

	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

var errNoIoctlQueries = errors.New("interface ioctl queries not supported")

func getInterfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	if err := checkInterfaceName(interfaceName); err != nil {
		return 0, 0, err
	}
	return 0, 0, errNoIoctlQueries
}

func getHardwareAddress(interfaceName string) (net.HardwareAddr, error) {
	if err := checkInterfaceName(interfaceName); err != nil {
		return nil, err
	}
	return nil, errNoIoctlQueries
}
