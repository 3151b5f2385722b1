package httpd

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/chenzhuo1005/OpENer/lib/html"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

func (s *State) statusHandler(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	writer := bufio.NewWriter(w)
	defer writer.Flush()
	fmt.Fprintln(writer, "<title>netconfig status page</title>")
	fmt.Fprintln(writer, `<style>
                          table, th, td {
                          border-collapse: collapse;
                          }
                          </style>`)
	fmt.Fprintln(writer, "<body>")
	fmt.Fprintln(writer, "<center>")
	fmt.Fprintln(writer, "<h1>netconfig status page</h1>")
	fmt.Fprintln(writer, "</center>")
	html.WriteHeader(writer)
	fmt.Fprintln(writer, "<h3>")
	s.writeDashboard(writer)
	fmt.Fprintln(writer, "</h3>")
	fmt.Fprintln(writer, `<a href="showConfiguration">JSON</a> `)
	fmt.Fprintln(writer, `<a href="metrics">Metrics</a><br>`)
	fmt.Fprintln(writer, "<hr>")
	html.WriteFooter(writer)
	fmt.Fprintln(writer, "</body>")
}

func (s *State) writeDashboard(writer io.Writer) {
	configuration := s.get()
	config := configuration.Configuration
	fmt.Fprintf(writer, "Interface: %s<br>\n",
		template.HTMLEscapeString(configuration.Interface))
	fmt.Fprintln(writer, `<table border="1">`)
	tw, _ := html.NewTableWriter(writer, true, "Field", "Value")
	tw.WriteRow("", "", "IP address", formatAddress(config.IpAddress))
	tw.WriteRow("", "", "Network mask", formatAddress(config.NetworkMask))
	gatewayForeground := ""
	if configuration.GatewayStatus == tcpip.GatewayStatusUnparsable {
		gatewayForeground = "red"
	}
	tw.WriteRow(gatewayForeground, "", "Gateway",
		fmt.Sprintf("%s (%s)", formatAddress(config.Gateway),
			configuration.GatewayStatus))
	tw.WriteRow("", "", "Name server", formatAddress(config.NameServer))
	tw.WriteRow("", "", "Name server 2", formatAddress(config.NameServer2))
	tw.WriteRow("", "", "Domain name", config.DomainName)
	tw.WriteRow("", "", "Host name", config.Hostname)
	tw.WriteRow("", "", "Multicast address",
		formatAddress(config.MulticastAddress))
	tw.WriteRow("", "", "MAC address",
		configuration.EthernetLink.PhysicalAddress.String())
	fmt.Fprintln(writer, "</table><br>")
	if errs := s.getRecoverableErrors(); len(errs) > 0 {
		fmt.Fprintln(writer, `<font color="red">Errors:</font><br>`)
		for _, err := range errs {
			fmt.Fprintf(writer, "%s<br>\n", template.HTMLEscapeString(err))
		}
	}
}

func formatAddress(addr tcpip.Address) string {
	if addr == 0 {
		return ""
	}
	return addr.String()
}
