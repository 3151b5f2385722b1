package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/chenzhuo1005/OpENer/lib/flags/loadflags"
	"github.com/chenzhuo1005/OpENer/lib/log"
	"github.com/chenzhuo1005/OpENer/lib/log/cmdlogger"
	"github.com/chenzhuo1005/OpENer/lib/log/prefixlogger"
	libnet "github.com/chenzhuo1005/OpENer/lib/net"
	"github.com/chenzhuo1005/OpENer/lib/net/configurator"
	"github.com/chenzhuo1005/OpENer/lib/net/util"
	"github.com/chenzhuo1005/OpENer/netconfig/httpd"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

var (
	interfaceName = flag.String("interface", "",
		"Name or glob pattern of interface to configure (default: interface with the default route)")
	output = flag.String("output", outputAuto,
		"Output format: text, json, msgpack, resolvconf or auto")
	portNum = flag.Uint("portNum", 0,
		"Port number to serve status on after bootstrap (0: exit instead)")
	queryMethod = flag.String("queryMethod", configurator.QueryMethodIoctl,
		"Interface query method: ioctl or netlink")
	resolvConf = flag.String("resolvConf", util.EtcResolvConf,
		"Name of resolver configuration file")
	routeFile = flag.String("routeFile", util.ProcNetRoute,
		"Name of route table file")
)

func printUsage() {
	fmt.Fprintln(os.Stderr,
		"Usage: netconfig [flags...]")
	fmt.Fprintln(os.Stderr, "Common flags:")
	flag.PrintDefaults()
}

func main() {
	if err := loadflags.LoadForDaemon("netconfig"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Usage = printUsage
	flag.Parse()
	tricorder.RegisterFlags()
	logger := cmdlogger.New()
	if err := checkOutputFormat(*output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	querier, err := configurator.NewQuerier(*queryMethod)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	sources := configurator.Sources{
		Querier:        querier,
		RouteFile:      *routeFile,
		ResolvConfFile: *resolvConf,
	}
	state := httpd.NewState()
	if err := netconfig(*interfaceName, sources, state, os.Stdout,
		logger); err != nil {
		logger.Fatalln(err)
	}
	if *portNum > 0 {
		if err := httpd.StartServer(*portNum, state, false); err != nil {
			logger.Fatalf("Unable to create http server: %s\n", err)
		}
	}
}

// netconfig selects the interface, bootstraps the record, publishes it to
// state and writes it to stdout. Only a fatal error is returned.
func netconfig(pattern string, sources configurator.Sources,
	state *httpd.State, stdout io.Writer, logger log.DebugLogger) error {
	name, err := libnet.SelectInterface(pattern, sources.RouteFile, logger)
	if err != nil {
		return err
	}
	var config tcpip.InterfaceConfiguration
	var link tcpip.EthernetLink
	result, err := configurator.Bootstrap(name, sources, &config, &link,
		prefixlogger.New(name+": ", logger))
	if err != nil {
		return err
	}
	state.Update(config, link, result)
	return writeOutput(stdout, *output, record{
		Interface:     name,
		Configuration: config,
		EthernetLink:  link,
	})
}
