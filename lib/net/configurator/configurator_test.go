package configurator

import (
	"bytes"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	liberrors "github.com/chenzhuo1005/OpENer/lib/errors"
	"github.com/chenzhuo1005/OpENer/lib/log/testlogger"
	"github.com/chenzhuo1005/OpENer/lib/net/util"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

const (
	routeTable = `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth0	00000000	0101A8C0	0003	0	0	100	00000000	0	0	0
eth0	0001A8C0	00000000	0001	0	0	100	00FFFFFF	0	0	0
eth1	10.0.0.0	0.0.0.0	0003	0	0	0	0	0	0	0
lo0	127.0.0.1	127.0.0.1	0003	0	0	0	0	0	0	0
eth2	0	not-an-address	0003	0	0	0	0	0	0	0
`
	resolvConf = `# generated
domain alpha
search beta
nameserver 8.8.8.8
nameserver bogus
nameserver 1.1.1.1
nameserver 9.9.9.9
`
)

var errQuery = errors.New("no such device")

type fakeQuerier struct {
	ipAddress   tcpip.Address
	networkMask tcpip.Address
	hwAddr      net.HardwareAddr
	err         error
	numCalls    int
}

func (q *fakeQuerier) InterfaceAddress(interfaceName string) (
	tcpip.Address, tcpip.Address, error) {
	q.numCalls++
	if q.err != nil {
		return 0, 0, q.err
	}
	return q.ipAddress, q.networkMask, nil
}

func (q *fakeQuerier) HardwareAddress(interfaceName string) (
	net.HardwareAddr, error) {
	q.numCalls++
	if q.err != nil {
		return nil, q.err
	}
	return q.hwAddr, nil
}

func mustParse(t *testing.T, text string) tcpip.Address {
	addr, err := tcpip.ParseAddress(text)
	if err != nil {
		t.Fatal(err)
	}
	return addr
}

func writeFile(t *testing.T, dir, name, contents string) string {
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func makeSources(t *testing.T, querier InterfaceQuerier) Sources {
	dir := t.TempDir()
	return Sources{
		Querier:        querier,
		RouteFile:      writeFile(t, dir, "route", routeTable),
		ResolvConfFile: writeFile(t, dir, "resolv.conf", resolvConf),
		Hostname:       func() (string, error) { return "plc-17", nil },
	}
}

func newQuerier192(t *testing.T) *fakeQuerier {
	return &fakeQuerier{
		ipAddress:   mustParse(t, "192.168.1.10"),
		networkMask: mustParse(t, "255.255.255.0"),
		hwAddr:      net.HardwareAddr{0x00, 0x1d, 0x9c, 0x01, 0x02, 0x03},
	}
}

func TestCalculateMulticastAddress(t *testing.T) {
	var tests = []struct {
		ipAddress string
		mask      string
		want      string
	}{
		{"192.168.1.10", "255.255.255.0", "239.192.2.32"},
		{"192.168.1.1", "255.255.255.0", "239.192.1.0"},
		{"10.0.4.2", "255.255.0.0", "239.192.1.32"},
	}
	for _, test := range tests {
		got := CalculateMulticastAddress(mustParse(t, test.ipAddress),
			mustParse(t, test.mask))
		if got.String() != test.want {
			t.Errorf("CalculateMulticastAddress(%s, %s) = %s, want %s",
				test.ipAddress, test.mask, got, test.want)
		}
	}
}

func TestConfigureNetworkInterface(t *testing.T) {
	querier := newQuerier192(t)
	sources := makeSources(t, querier)
	logger := testlogger.New(t)
	var tests = []struct {
		interfaceName string
		wantGateway   string
		wantStatus    tcpip.GatewayStatus
	}{
		{"eth0", "192.168.1.1", tcpip.GatewayStatusFound},
		{"eth1", "0.0.0.0", tcpip.GatewayStatusUnset},
		{"lo0", "0.0.0.0", tcpip.GatewayStatusLoopback},
		{"eth2", "0.0.0.0", tcpip.GatewayStatusUnparsable},
	}
	for _, test := range tests {
		config := tcpip.InterfaceConfiguration{Gateway: 0xdeadbeef}
		gateway, err := ConfigureNetworkInterface(test.interfaceName, querier,
			sources.RouteFile, &config, logger)
		if err != nil {
			t.Errorf("ConfigureNetworkInterface(%s): %s", test.interfaceName,
				err)
			continue
		}
		if config.Gateway.String() != test.wantGateway {
			t.Errorf("%s: gateway = %s, want %s", test.interfaceName,
				config.Gateway, test.wantGateway)
		}
		if gateway.Status != test.wantStatus {
			t.Errorf("%s: status = %s, want %s", test.interfaceName,
				gateway.Status, test.wantStatus)
		}
		if config.IpAddress != querier.ipAddress ||
			config.NetworkMask != querier.networkMask {
			t.Errorf("%s: address/mask = %s/%s", test.interfaceName,
				config.IpAddress, config.NetworkMask)
		}
		if config.MulticastAddress.String() != "239.192.2.32" {
			t.Errorf("%s: multicast = %s", test.interfaceName,
				config.MulticastAddress)
		}
	}
}

func TestConfigureNetworkInterfaceNameTooLong(t *testing.T) {
	querier := newQuerier192(t)
	sources := makeSources(t, querier)
	config := tcpip.InterfaceConfiguration{IpAddress: 1, NetworkMask: 2}
	saved := config
	_, err := ConfigureNetworkInterface("abcdefghijklmnop", querier,
		sources.RouteFile, &config, testlogger.New(t))
	if !errors.Is(err, util.ErrNameTooLong) {
		t.Fatalf("error = %v, want %v", err, util.ErrNameTooLong)
	}
	if liberrors.IsFatal(err) {
		t.Error("name too long is fatal")
	}
	if config != saved {
		t.Errorf("config changed: %+v", config)
	}
	if querier.numCalls != 0 {
		t.Errorf("querier called %d times", querier.numCalls)
	}
}

func TestConfigureNetworkInterfaceQueryFailure(t *testing.T) {
	querier := &fakeQuerier{err: errQuery}
	config := tcpip.InterfaceConfiguration{
		IpAddress:   0x0a000001,
		NetworkMask: 0xff000000,
		Gateway:     0x0a0000fe,
	}
	saved := config
	// Gateway discovery is skipped, so a missing route file is not reached.
	_, err := ConfigureNetworkInterface("eth0", querier,
		filepath.Join(t.TempDir(), "missing"), &config, testlogger.New(t))
	if !errors.Is(err, errQuery) {
		t.Fatalf("error = %v, want %v", err, errQuery)
	}
	if liberrors.IsFatal(err) {
		t.Error("query failure is fatal")
	}
	if config != saved {
		t.Errorf("config changed: %+v", config)
	}
}

func TestConfigureNetworkInterfaceFatal(t *testing.T) {
	querier := newQuerier192(t)
	sources := makeSources(t, querier)
	logger := testlogger.New(t)
	var config tcpip.InterfaceConfiguration
	_, err := ConfigureNetworkInterface("wlan0", querier, sources.RouteFile,
		&config, logger)
	if !liberrors.IsFatal(err) {
		t.Errorf("missing interface: error = %v, want fatal", err)
	}
	if !errors.Is(err, util.ErrInterfaceNotFound) {
		t.Errorf("missing interface: error = %v", err)
	}
	_, err = ConfigureNetworkInterface("eth0", querier,
		filepath.Join(t.TempDir(), "missing"), &config, logger)
	if !liberrors.IsFatal(err) {
		t.Errorf("missing route file: error = %v, want fatal", err)
	}
}

func TestConfigureMacAddress(t *testing.T) {
	querier := newQuerier192(t)
	var link tcpip.EthernetLink
	if err := ConfigureMacAddress("eth0", querier, &link); err != nil {
		t.Fatal(err)
	}
	if got := link.PhysicalAddress.String(); got != "00:1d:9c:01:02:03" {
		t.Errorf("PhysicalAddress = %s", got)
	}
	saved := link
	if err := ConfigureMacAddress("abcdefghijklmnop", querier,
		&link); !errors.Is(err, util.ErrNameTooLong) {
		t.Errorf("error = %v, want %v", err, util.ErrNameTooLong)
	}
	querier.err = errQuery
	if err := ConfigureMacAddress("eth0", querier, &link); err == nil {
		t.Error("no error from failed query")
	}
	if link != saved {
		t.Errorf("link changed: %s", link.PhysicalAddress)
	}
}

func TestConfigureDomainName(t *testing.T) {
	sources := makeSources(t, nil)
	logger := testlogger.New(t)
	var config tcpip.InterfaceConfiguration
	resolverConfig, err := ConfigureDomainName(sources.ResolvConfFile, &config,
		logger)
	if err != nil {
		t.Fatal(err)
	}
	if config.DomainName != "beta" {
		t.Errorf("DomainName = %q, want %q", config.DomainName, "beta")
	}
	if config.NameServer.String() != "8.8.8.8" {
		t.Errorf("NameServer = %s", config.NameServer)
	}
	if config.NameServer2.String() != "1.1.1.1" {
		t.Errorf("NameServer2 = %s", config.NameServer2)
	}
	if len(resolverConfig.Discarded) != 1 {
		t.Errorf("Discarded = %v", resolverConfig.Discarded)
	}
	if !logger.Contains("bogus") {
		t.Error("malformed nameserver not reported")
	}
}

func TestConfigureDomainNameKeepsUnsetFields(t *testing.T) {
	dir := t.TempDir()
	filename := writeFile(t, dir, "resolv.conf", "nameserver 10.1.1.1\n")
	config := tcpip.InterfaceConfiguration{
		DomainName:  "kept.example",
		NameServer2: 0x0a020202,
	}
	if _, err := ConfigureDomainName(filename, &config,
		testlogger.New(t)); err != nil {
		t.Fatal(err)
	}
	if config.DomainName != "kept.example" {
		t.Errorf("DomainName = %q", config.DomainName)
	}
	if config.NameServer.String() != "10.1.1.1" {
		t.Errorf("NameServer = %s", config.NameServer)
	}
	if config.NameServer2.String() != "10.2.2.2" {
		t.Errorf("NameServer2 = %s", config.NameServer2)
	}
	_, err := ConfigureDomainName(filepath.Join(dir, "missing"), &config,
		testlogger.New(t))
	if !liberrors.IsFatal(err) {
		t.Errorf("missing file: error = %v, want fatal", err)
	}
}

func TestConfigureHostName(t *testing.T) {
	config := tcpip.InterfaceConfiguration{Hostname: "old"}
	err := ConfigureHostName(func() (string, error) {
		return "", errQuery
	}, &config)
	if err == nil {
		t.Error("no error from failed hostname query")
	}
	if config.Hostname != "old" {
		t.Errorf("Hostname = %q", config.Hostname)
	}
	longName := strings.Repeat("h", 80)
	err = ConfigureHostName(func() (string, error) {
		return longName, nil
	}, &config)
	if err != nil {
		t.Fatal(err)
	}
	if config.Hostname != longName[:tcpip.MaxHostnameLength] {
		t.Errorf("Hostname = %q", config.Hostname)
	}
}

func TestBootstrap(t *testing.T) {
	querier := newQuerier192(t)
	sources := makeSources(t, querier)
	logger := testlogger.New(t)
	var config tcpip.InterfaceConfiguration
	var link tcpip.EthernetLink
	result, err := Bootstrap("eth0", sources, &config, &link, logger)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.RecoverableErrors) != 0 {
		t.Errorf("RecoverableErrors = %v", result.RecoverableErrors)
	}
	want := tcpip.InterfaceConfiguration{
		IpAddress:        mustParse(t, "192.168.1.10"),
		NetworkMask:      mustParse(t, "255.255.255.0"),
		Gateway:          mustParse(t, "192.168.1.1"),
		NameServer:       mustParse(t, "8.8.8.8"),
		NameServer2:      mustParse(t, "1.1.1.1"),
		DomainName:       "beta",
		Hostname:         "plc-17",
		MulticastAddress: mustParse(t, "239.192.2.32"),
	}
	if config != want {
		t.Errorf("config = %+v, want %+v", config, want)
	}
	first, firstLink := config, link
	if _, err := Bootstrap("eth0", sources, &config, &link,
		logger); err != nil {
		t.Fatal(err)
	}
	if config != first || link != firstLink {
		t.Errorf("second bootstrap changed record: %+v", config)
	}
}

func TestBootstrapRecoverable(t *testing.T) {
	querier := &fakeQuerier{err: errQuery}
	sources := makeSources(t, querier)
	sources.Hostname = func() (string, error) { return "", errQuery }
	logger := testlogger.New(t)
	config := tcpip.InterfaceConfiguration{Hostname: "old"}
	var link tcpip.EthernetLink
	result, err := Bootstrap("eth0", sources, &config, &link, logger)
	if err != nil {
		t.Fatalf("recoverable errors treated as fatal: %s", err)
	}
	if len(result.RecoverableErrors) != 3 {
		t.Errorf("RecoverableErrors = %v", result.RecoverableErrors)
	}
	if config.IpAddress != 0 || config.Gateway != 0 {
		t.Errorf("address fields set: %+v", config)
	}
	if config.DomainName != "beta" || config.Hostname != "old" {
		t.Errorf("config = %+v", config)
	}
}

func TestBootstrapFatal(t *testing.T) {
	querier := newQuerier192(t)
	sources := makeSources(t, querier)
	var config tcpip.InterfaceConfiguration
	var link tcpip.EthernetLink
	_, err := Bootstrap("eth9", sources, &config, &link, testlogger.New(t))
	if !liberrors.IsFatal(err) {
		t.Fatalf("error = %v, want fatal", err)
	}
	if config.DomainName != "" || config.Hostname != "" {
		t.Errorf("steps ran after fatal error: %+v", config)
	}
}

func TestPrintResolvConf(t *testing.T) {
	config := tcpip.InterfaceConfiguration{
		DomainName: "example.com",
		NameServer: 0x08080808,
	}
	buffer := &bytes.Buffer{}
	if err := PrintResolvConf(buffer, &config); err != nil {
		t.Fatal(err)
	}
	want := "domain example.com\nsearch example.com\n\nnameserver 8.8.8.8\n"
	if got := buffer.String(); got != want {
		t.Errorf("PrintResolvConf() = %q, want %q", got, want)
	}
}

type failingWriter struct {
	numWrites int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.numWrites++
	return 0, errQuery
}

func TestPrintResolvConfWriteErrors(t *testing.T) {
	var tests = []tcpip.InterfaceConfiguration{
		{DomainName: "example.com"},
		{NameServer: 0x08080808},
		{DomainName: "example.com", NameServer: 0x08080808},
	}
	for _, config := range tests {
		writer := &failingWriter{}
		if err := PrintResolvConf(writer, &config); err != errQuery {
			t.Errorf("PrintResolvConf(%+v) error = %v, want %v", config, err,
				errQuery)
		}
		if writer.numWrites != 1 {
			t.Errorf("PrintResolvConf(%+v) kept writing: %d writes", config,
				writer.numWrites)
		}
	}
}

func TestNewQuerier(t *testing.T) {
	for _, method := range []string{"", QueryMethodIoctl, QueryMethodNetlink} {
		if _, err := NewQuerier(method); err != nil {
			t.Errorf("NewQuerier(%q): %s", method, err)
		}
	}
	if _, err := NewQuerier("carrier-pigeon"); err == nil {
		t.Error("NewQuerier accepted unknown method")
	}
}
