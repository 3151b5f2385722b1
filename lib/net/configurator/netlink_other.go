//go:build !linux
// +build !linux

package configurator

import (
	"errors"
	"net"

	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

var errNetlinkNotSupported = errors.New("netlink not supported on this OS")

func (q *NetlinkQuerier) interfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	return 0, 0, errNetlinkNotSupported
}

func (q *NetlinkQuerier) hardwareAddress(interfaceName string) (
	net.HardwareAddr, error) {
	return nil, errNetlinkNotSupported
}
