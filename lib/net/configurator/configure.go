package configurator

import (
	"errors"
	"fmt"
	"os"

	liberrors "github.com/chenzhuo1005/OpENer/lib/errors"
	"github.com/chenzhuo1005/OpENer/lib/log"
	"github.com/chenzhuo1005/OpENer/lib/net/util"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

func configureNetworkInterface(interfaceName string, querier InterfaceQuerier,
	routeFile string, config *tcpip.InterfaceConfiguration,
	logger log.DebugLogger) (*util.GatewayInfo, error) {
	if err := util.CheckInterfaceName(interfaceName); err != nil {
		return nil, err
	}
	ipAddress, networkMask, err := querier.InterfaceAddress(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("error getting address of: %s: %w",
			interfaceName, err)
	}
	config.IpAddress = ipAddress
	config.NetworkMask = networkMask
	config.MulticastAddress = calculateMulticastAddress(ipAddress, networkMask)
	logger.Debugf(1, "%s: address: %s mask: %s multicast: %s\n",
		interfaceName, ipAddress, networkMask, config.MulticastAddress)
	file, err := os.Open(routeFile)
	if err != nil {
		return nil, liberrors.Fatal(err)
	}
	defer file.Close()
	gateway, err := util.FindInterfaceGateway(file, interfaceName)
	if err != nil {
		if errors.Is(err, util.ErrInterfaceNotFound) {
			return nil, liberrors.Fatalf("%s: %s: %w", routeFile, interfaceName,
				err)
		}
		return nil, liberrors.Fatalf("error reading: %s: %w", routeFile, err)
	}
	config.Gateway = gateway.Address
	switch gateway.Status {
	case tcpip.GatewayStatusLoopback:
		logger.Debugf(0, "%s: gateway is loopback, ignoring\n", interfaceName)
	case tcpip.GatewayStatusUnparsable:
		logger.Printf("%s: unparsable gateway: %q\n", interfaceName,
			gateway.Token)
	default:
		logger.Debugf(1, "%s: gateway: %s (%s)\n", interfaceName,
			gateway.Address, gateway.Status)
	}
	return gateway, nil
}

func configureMacAddress(interfaceName string, querier InterfaceQuerier,
	link *tcpip.EthernetLink) error {
	if err := util.CheckInterfaceName(interfaceName); err != nil {
		return err
	}
	hwAddr, err := querier.HardwareAddress(interfaceName)
	if err != nil {
		return fmt.Errorf("error getting hardware address of: %s: %w",
			interfaceName, err)
	}
	var mac tcpip.MacAddress
	if err := mac.SetFromHardwareAddr(hwAddr); err != nil {
		return err
	}
	link.PhysicalAddress = mac
	return nil
}

func configureDomainName(resolvConfFile string,
	config *tcpip.InterfaceConfiguration,
	logger log.DebugLogger) (*util.ResolverConfiguration, error) {
	resolverConfig, err := util.ReadResolverConfiguration(resolvConfFile)
	if err != nil {
		return nil, liberrors.Fatal(err)
	}
	if resolverConfig.HaveDomainName {
		config.DomainName = resolverConfig.DomainName
	}
	if len(resolverConfig.NameServers) > 0 {
		config.NameServer = resolverConfig.NameServers[0]
	}
	if len(resolverConfig.NameServers) > 1 {
		config.NameServer2 = resolverConfig.NameServers[1]
	}
	for _, nameServer := range resolverConfig.Discarded {
		logger.Debugf(0, "%s: ignoring extra nameserver: %s\n",
			resolvConfFile, nameServer)
	}
	for _, value := range resolverConfig.Malformed {
		logger.Printf("%s: skipping malformed nameserver: %q\n",
			resolvConfFile, value)
	}
	return resolverConfig, nil
}

func configureHostName(getHostname func() (string, error),
	config *tcpip.InterfaceConfiguration) error {
	hostname, err := getHostname()
	if err != nil {
		return fmt.Errorf("error getting hostname: %w", err)
	}
	if len(hostname) > tcpip.MaxHostnameLength {
		hostname = hostname[:tcpip.MaxHostnameLength]
	}
	config.Hostname = hostname
	return nil
}
