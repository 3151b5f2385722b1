// Package configurator populates a tcpip.InterfaceConfiguration and
// tcpip.EthernetLink from the running system at startup.
package configurator

import (
	"io"
	"net"
	"time"

	"github.com/chenzhuo1005/OpENer/lib/log"
	"github.com/chenzhuo1005/OpENer/lib/net/util"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

const (
	QueryMethodIoctl   = "ioctl"
	QueryMethodNetlink = "netlink"
)

// InterfaceQuerier answers per-interface questions from the kernel.
type InterfaceQuerier interface {
	InterfaceAddress(interfaceName string) (
		ipAddress, networkMask tcpip.Address, err error)
	HardwareAddress(interfaceName string) (net.HardwareAddr, error)
}

// IoctlQuerier issues SIOCGIF* requests on a transient datagram socket.
type IoctlQuerier struct{}

// NetlinkQuerier reads interface attributes over rtnetlink.
type NetlinkQuerier struct{}

// Sources are the collaborators consulted by Bootstrap. Zero values select
// the system defaults.
type Sources struct {
	Querier        InterfaceQuerier
	RouteFile      string                 // Default: /proc/net/route.
	ResolvConfFile string                 // Default: /etc/resolv.conf.
	Hostname       func() (string, error) // Default: util.GetHostname.
}

// Result summarises one bootstrap pass.
type Result struct {
	Interface         string
	Duration          time.Duration
	Gateway           *util.GatewayInfo
	Resolver          *util.ResolverConfiguration
	RecoverableErrors []error
}

// Bootstrap runs every configuration step for interfaceName in order,
// writing results into config and link. Recoverable errors are logged and
// collected in the Result. The first fatal error (see errors.IsFatal) stops
// the pass and is returned together with the partial Result.
func Bootstrap(interfaceName string, sources Sources,
	config *tcpip.InterfaceConfiguration, link *tcpip.EthernetLink,
	logger log.DebugLogger) (*Result, error) {
	return bootstrap(interfaceName, sources, config, link, logger)
}

// CalculateMulticastAddress returns the base of the CIP multicast block
// allocated to the host part of ipAddress.
func CalculateMulticastAddress(ipAddress,
	networkMask tcpip.Address) tcpip.Address {
	return calculateMulticastAddress(ipAddress, networkMask)
}

// ConfigureDomainName reads a resolver configuration file and stores the
// domain name and up to two name servers. A file which cannot be read is a
// fatal error.
func ConfigureDomainName(resolvConfFile string,
	config *tcpip.InterfaceConfiguration,
	logger log.DebugLogger) (*util.ResolverConfiguration, error) {
	return configureDomainName(resolvConfFile, config, logger)
}

// ConfigureHostName stores the host name returned by getHostname. On failure
// the stored host name is left untouched.
func ConfigureHostName(getHostname func() (string, error),
	config *tcpip.InterfaceConfiguration) error {
	return configureHostName(getHostname, config)
}

// ConfigureMacAddress stores the hardware address of interfaceName.
func ConfigureMacAddress(interfaceName string, querier InterfaceQuerier,
	link *tcpip.EthernetLink) error {
	return configureMacAddress(interfaceName, querier, link)
}

// ConfigureNetworkInterface stores the address, netmask and derived multicast
// address of interfaceName and then its gateway from routeFile. Query errors
// leave config untouched and are recoverable. A route file which cannot be
// opened or which has no line for the interface is a fatal error.
func ConfigureNetworkInterface(interfaceName string, querier InterfaceQuerier,
	routeFile string, config *tcpip.InterfaceConfiguration,
	logger log.DebugLogger) (*util.GatewayInfo, error) {
	return configureNetworkInterface(interfaceName, querier, routeFile, config,
		logger)
}

// NewQuerier returns the querier implementing method.
func NewQuerier(method string) (InterfaceQuerier, error) {
	return newQuerier(method)
}

// PrintResolvConf writes the resolver part of config in resolv.conf syntax.
func PrintResolvConf(writer io.Writer,
	config *tcpip.InterfaceConfiguration) error {
	return printResolvConf(writer, config)
}

func (q *IoctlQuerier) InterfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	return util.GetInterfaceAddress(interfaceName)
}

func (q *IoctlQuerier) HardwareAddress(interfaceName string) (
	net.HardwareAddr, error) {
	return util.GetHardwareAddress(interfaceName)
}

func (q *NetlinkQuerier) InterfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	return q.interfaceAddress(interfaceName)
}

func (q *NetlinkQuerier) HardwareAddress(interfaceName string) (
	net.HardwareAddr, error) {
	return q.hardwareAddress(interfaceName)
}
