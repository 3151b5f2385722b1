package configurator

import (
	"time"

	liberrors "github.com/chenzhuo1005/OpENer/lib/errors"
	"github.com/chenzhuo1005/OpENer/lib/format"
	"github.com/chenzhuo1005/OpENer/lib/log"
	"github.com/chenzhuo1005/OpENer/lib/net/util"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

func (sources Sources) withDefaults() Sources {
	if sources.Querier == nil {
		sources.Querier = &IoctlQuerier{}
	}
	if sources.RouteFile == "" {
		sources.RouteFile = util.ProcNetRoute
	}
	if sources.ResolvConfFile == "" {
		sources.ResolvConfFile = util.EtcResolvConf
	}
	if sources.Hostname == nil {
		sources.Hostname = util.GetHostname
	}
	return sources
}

func (result *Result) recoverable(err error, logger log.DebugLogger) {
	logger.Println(err)
	result.RecoverableErrors = append(result.RecoverableErrors, err)
}

func bootstrap(interfaceName string, sources Sources,
	config *tcpip.InterfaceConfiguration, link *tcpip.EthernetLink,
	logger log.DebugLogger) (*Result, error) {
	startTime := time.Now()
	sources = sources.withDefaults()
	result := &Result{Interface: interfaceName}
	err := bootstrapSteps(interfaceName, sources, config, link, result, logger)
	result.Duration = time.Since(startTime)
	recordBootstrap(result, err)
	if err != nil {
		return result, err
	}
	logger.Debugf(0, "bootstrapped: %s in %s with %d recoverable errors\n",
		interfaceName, format.Duration(result.Duration), len(result.RecoverableErrors))
	return result, nil
}

func bootstrapSteps(interfaceName string, sources Sources,
	config *tcpip.InterfaceConfiguration, link *tcpip.EthernetLink,
	result *Result, logger log.DebugLogger) error {
	gateway, err := configureNetworkInterface(interfaceName, sources.Querier,
		sources.RouteFile, config, logger)
	if err != nil {
		if liberrors.IsFatal(err) {
			return err
		}
		result.recoverable(err, logger)
	} else {
		result.Gateway = gateway
	}
	if err := configureMacAddress(interfaceName, sources.Querier,
		link); err != nil {
		result.recoverable(err, logger)
	}
	resolverConfig, err := configureDomainName(sources.ResolvConfFile, config,
		logger)
	if err != nil {
		return err
	}
	result.Resolver = resolverConfig
	if err := configureHostName(sources.Hostname, config); err != nil {
		result.recoverable(err, logger)
	}
	return nil
}
