package util

import (
	"errors"
	"io"
	"net"

	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

const (
	EtcResolvConf = "/etc/resolv.conf"
	ProcNetRoute  = "/proc/net/route"

	// MaxInterfaceNameLength is IFNAMSIZ less the terminating NUL.
	MaxInterfaceNameLength = 15
)

const (
	RouteFlagUp = 1 << iota
	RouteFlagGateway
	RouteFlagHost
)

var (
	ErrInterfaceNotFound = errors.New("interface not found in route table")
	ErrNameTooLong       = errors.New("interface name is too long")
)

type DefaultRouteInfo struct {
	Address   net.IP
	Interface string
	Mask      net.IPMask
}

// GatewayInfo describes the gateway column of the first route table line
// naming an interface. Address is zero unless Status is
// tcpip.GatewayStatusFound.
type GatewayInfo struct {
	Address tcpip.Address
	Status  tcpip.GatewayStatus
	Token   string
}

// ResolverConfiguration holds what ParseResolverConfiguration found.
// DomainName is only meaningful if HaveDomainName is true. NameServers has at
// most two entries, in file order. Discarded holds later, valid nameservers
// and Malformed holds nameserver values which were not IPv4 addresses.
type ResolverConfiguration struct {
	DomainName     string
	HaveDomainName bool
	NameServers    []tcpip.Address
	Discarded      []tcpip.Address
	Malformed      []string
}

// CheckInterfaceName returns ErrNameTooLong if name does not fit in the
// kernel's interface name field.
func CheckInterfaceName(name string) error {
	return checkInterfaceName(name)
}

// FindInterfaceGateway scans a route table in /proc/net/route layout for the
// first line containing interfaceName and extracts its gateway column. If no
// line matches, ErrInterfaceNotFound is returned.
func FindInterfaceGateway(reader io.Reader,
	interfaceName string) (*GatewayInfo, error) {
	return findInterfaceGateway(reader, interfaceName)
}

// GetHardwareAddress queries the kernel for the link-layer address of an
// interface.
func GetHardwareAddress(interfaceName string) (net.HardwareAddr, error) {
	return getHardwareAddress(interfaceName)
}

// GetHostname returns the node name of the host, truncated to
// tcpip.MaxHostnameLength bytes.
func GetHostname() (string, error) {
	return getHostname()
}

// GetInterfaceAddress queries the kernel for the IPv4 address and netmask of
// an interface. Either both are returned or an error is.
func GetInterfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	return getInterfaceAddress(interfaceName)
}

// ParseGatewayAddress parses a route table gateway column, which may be dotted
// text or the kernel's 8 hexadecimal digit (native byte order) form.
func ParseGatewayAddress(token string) (tcpip.Address, tcpip.GatewayStatus) {
	return parseGatewayAddress(token)
}

func ParseResolverConfiguration(data []byte) *ResolverConfiguration {
	return parseResolverConfiguration(data)
}

func ReadDefaultRoute(reader io.Reader) (*DefaultRouteInfo, error) {
	return readDefaultRoute(reader)
}

// ReadDefaultRouteFile finds the default route in a route table file in
// /proc/net/route layout.
func ReadDefaultRouteFile(filename string) (*DefaultRouteInfo, error) {
	return readDefaultRouteFile(filename)
}

// ReadResolverConfiguration reads the whole of filename into one buffer sized
// by its length and parses it. A short read is an error.
func ReadResolverConfiguration(filename string) (
	*ResolverConfiguration, error) {
	return readResolverConfiguration(filename)
}
