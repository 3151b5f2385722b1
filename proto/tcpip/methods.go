package tcpip

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"strings"
)

const gatewayStatusUnknown = "UNKNOWN GatewayStatus"

var (
	gatewayStatusToText = map[GatewayStatus]string{
		GatewayStatusUnset:      "unset",
		GatewayStatusFound:      "found",
		GatewayStatusLoopback:   "loopback",
		GatewayStatusUnparsable: "unparsable",
	}
)

// AddressFromIP converts an IPv4 address. It returns false if netIP is not an
// IPv4 address.
func AddressFromIP(netIP net.IP) (Address, bool) {
	ip4 := netIP.To4()
	if ip4 == nil {
		return 0, false
	}
	return Address(binary.BigEndian.Uint32(ip4)), true
}

// ParseAddress parses dotted-decimal IPv4 text.
func ParseAddress(text string) (Address, error) {
	if strings.Contains(text, ":") {
		return 0, errors.New("address is not IPv4: " + text)
	}
	ip := net.ParseIP(text)
	if ip == nil {
		return 0, errors.New("unable to parse IP: " + text)
	}
	if addr, ok := AddressFromIP(ip); !ok {
		return 0, errors.New("address is not IPv4: " + text)
	} else {
		return addr, nil
	}
}

func (addr Address) IP() net.IP {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, uint32(addr))
	return ip
}

func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

func (addr Address) String() string {
	return addr.IP().String()
}

func (addr *Address) UnmarshalText(text []byte) error {
	if val, err := ParseAddress(string(text)); err != nil {
		return err
	} else {
		*addr = val
		return nil
	}
}

func (status GatewayStatus) MarshalText() ([]byte, error) {
	if text := status.String(); text == gatewayStatusUnknown {
		return nil, errors.New(text)
	} else {
		return []byte(text), nil
	}
}

func (status GatewayStatus) String() string {
	if text, ok := gatewayStatusToText[status]; ok {
		return text
	} else {
		return gatewayStatusUnknown
	}
}

// SetFromHardwareAddr copies a 6 byte hardware address.
func (mac *MacAddress) SetFromHardwareAddr(hwAddr net.HardwareAddr) error {
	if len(hwAddr) != len(mac) {
		return fmt.Errorf("hardware address: %s is not %d bytes",
			hwAddr, len(mac))
	}
	copy(mac[:], hwAddr)
	return nil
}

func (mac MacAddress) MarshalText() ([]byte, error) {
	return []byte(mac.String()), nil
}

func (mac MacAddress) String() string {
	return net.HardwareAddr(mac[:]).String()
}

func (mac *MacAddress) UnmarshalText(text []byte) error {
	if hwAddr, err := net.ParseMAC(string(text)); err != nil {
		return err
	} else {
		return mac.SetFromHardwareAddr(hwAddr)
	}
}
