package configurator

import (
	"fmt"
	"net"

	"github.com/chenzhuo1005/OpENer/lib/net/util"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
	"github.com/vishvananda/netlink"
)

func (q *NetlinkQuerier) interfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	if err := util.CheckInterfaceName(interfaceName); err != nil {
		return 0, 0, err
	}
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return 0, 0, err
	}
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return 0, 0, err
	}
	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}
		ipAddr, ok := tcpip.AddressFromIP(addr.IPNet.IP)
		if !ok {
			continue
		}
		mask, ok := tcpip.AddressFromIP(net.IP(addr.IPNet.Mask))
		if !ok {
			continue
		}
		return ipAddr, mask, nil
	}
	return 0, 0, fmt.Errorf("%s: no IPv4 address", interfaceName)
}

func (q *NetlinkQuerier) hardwareAddress(interfaceName string) (
	net.HardwareAddr, error) {
	if err := util.CheckInterfaceName(interfaceName); err != nil {
		return nil, err
	}
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, err
	}
	return link.Attrs().HardwareAddr, nil
}
