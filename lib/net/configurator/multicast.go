package configurator

import (
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

const (
	multicastBase     = tcpip.Address(0xefc00100) // 239.192.1.0
	multicastHostMask = 0x3ff
	multicastShift    = 5
)

func calculateMulticastAddress(ipAddress,
	networkMask tcpip.Address) tcpip.Address {
	hostId := ((ipAddress &^ networkMask) - 1) & multicastHostMask
	return multicastBase + hostId<<multicastShift
}
