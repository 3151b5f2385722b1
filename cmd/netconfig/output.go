package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/chenzhuo1005/OpENer/lib/json"
	"github.com/chenzhuo1005/OpENer/lib/net/configurator"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
	"golang.org/x/crypto/ssh/terminal"
	"gopkg.in/vmihailenco/msgpack.v2"
)

const (
	outputAuto       = "auto"
	outputJson       = "json"
	outputMsgpack    = "msgpack"
	outputResolvConf = "resolvconf"
	outputText       = "text"
)

type record struct {
	Interface     string                       `msgpack:"interface"`
	Configuration tcpip.InterfaceConfiguration `msgpack:"configuration"`
	EthernetLink  tcpip.EthernetLink           `msgpack:"ethernet_link"`
}

func checkOutputFormat(format string) error {
	switch format {
	case outputAuto, outputJson, outputMsgpack, outputResolvConf, outputText:
		return nil
	}
	return fmt.Errorf("unknown output format: %s", format)
}

func resolveOutputFormat(format string, writer io.Writer) string {
	if format != outputAuto {
		return format
	}
	if file, ok := writer.(*os.File); ok {
		if terminal.IsTerminal(int(file.Fd())) {
			return outputText
		}
	}
	return outputJson
}

func writeOutput(writer io.Writer, format string, rec record) error {
	switch resolveOutputFormat(format, writer) {
	case outputJson:
		return json.WriteWithIndent(writer, "    ", rec)
	case outputMsgpack:
		return msgpack.NewEncoder(writer).Encode(rec)
	case outputResolvConf:
		return configurator.PrintResolvConf(writer, &rec.Configuration)
	case outputText:
		return writeText(writer, rec)
	}
	return fmt.Errorf("unknown output format: %s", format)
}

func writeText(writer io.Writer, rec record) error {
	config := rec.Configuration
	tw := tabwriter.NewWriter(writer, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "Interface:\t%s\n", rec.Interface)
	fmt.Fprintf(tw, "IP address:\t%s\n", config.IpAddress)
	fmt.Fprintf(tw, "Network mask:\t%s\n", config.NetworkMask)
	fmt.Fprintf(tw, "Gateway:\t%s\n", config.Gateway)
	fmt.Fprintf(tw, "Multicast address:\t%s\n", config.MulticastAddress)
	fmt.Fprintf(tw, "Name servers:\t%s %s\n", config.NameServer,
		config.NameServer2)
	fmt.Fprintf(tw, "Domain name:\t%s\n", config.DomainName)
	fmt.Fprintf(tw, "Host name:\t%s\n", config.Hostname)
	fmt.Fprintf(tw, "MAC address:\t%s\n", rec.EthernetLink.PhysicalAddress)
	return tw.Flush()
}
