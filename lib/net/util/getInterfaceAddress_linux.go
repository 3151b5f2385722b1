package util

import (
	"fmt"
	"net"
	"unsafe"

	"github.com/chenzhuo1005/OpENer/lib/wsyscall"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
	"golang.org/x/sys/unix"
)

// Layout of struct ifreq when the union holds ifr_hwaddr.
type hwAddrRequest struct {
	name   [unix.IFNAMSIZ]byte
	family uint16
	data   [14]byte
	_      [8]byte
}

func getInterfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	if err := checkInterfaceName(interfaceName); err != nil {
		return 0, 0, err
	}
	fd, err := wsyscall.OpenInetDatagramSocket()
	if err != nil {
		return 0, 0, err
	}
	defer wsyscall.Close(fd)
	ipAddr, err := queryInet4Address(fd, interfaceName, unix.SIOCGIFADDR)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: error getting address: %s",
			interfaceName, err)
	}
	netmask, err := queryInet4Address(fd, interfaceName, unix.SIOCGIFNETMASK)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: error getting netmask: %s",
			interfaceName, err)
	}
	return ipAddr, netmask, nil
}

func getHardwareAddress(interfaceName string) (net.HardwareAddr, error) {
	if err := checkInterfaceName(interfaceName); err != nil {
		return nil, err
	}
	fd, err := wsyscall.OpenInetDatagramSocket()
	if err != nil {
		return nil, err
	}
	defer wsyscall.Close(fd)
	var req hwAddrRequest
	copy(req.name[:], interfaceName)
	err = wsyscall.Ioctl(fd, unix.SIOCGIFHWADDR, uintptr(unsafe.Pointer(&req)))
	if err != nil {
		return nil, fmt.Errorf("%s: error getting hardware address: %s",
			interfaceName, err)
	}
	hwAddr := make(net.HardwareAddr, 6)
	copy(hwAddr, req.data[:])
	return hwAddr, nil
}

func queryInet4Address(fd int, interfaceName string,
	request uint) (tcpip.Address, error) {
	ifreq, err := unix.NewIfreq(interfaceName)
	if err != nil {
		return 0, err
	}
	if err := unix.IoctlIfreq(fd, request, ifreq); err != nil {
		return 0, err
	}
	ip, err := ifreq.Inet4Addr()
	if err != nil {
		return 0, err
	}
	addr, _ := tcpip.AddressFromIP(net.IP(ip))
	return addr, nil
}
