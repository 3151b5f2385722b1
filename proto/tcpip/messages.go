package tcpip

const (
	GatewayStatusUnset      = 0
	GatewayStatusFound      = 1
	GatewayStatusLoopback   = 2
	GatewayStatusUnparsable = 3

	// MaxHostnameLength excludes the terminating NUL of HOST_NAME_MAX.
	MaxHostnameLength = 63
)

// Address is an IPv4 address. The first dotted octet is the most significant
// byte. The zero value means "not set".
type Address uint32

type GatewayStatus uint

type MacAddress [6]byte

// InterfaceConfiguration mirrors the Interface Configuration attribute of the
// CIP TCP/IP Interface object together with the host name.
type InterfaceConfiguration struct {
	IpAddress        Address `json:",omitempty" msgpack:"ip_address"`
	NetworkMask      Address `json:",omitempty" msgpack:"network_mask"`
	Gateway          Address `json:",omitempty" msgpack:"gateway"`
	NameServer       Address `json:",omitempty" msgpack:"name_server"`
	NameServer2      Address `json:",omitempty" msgpack:"name_server_2"`
	DomainName       string  `json:",omitempty" msgpack:"domain_name"`
	Hostname         string  `json:",omitempty" msgpack:"hostname"`
	MulticastAddress Address `json:",omitempty" msgpack:"multicast_address"`
}

// EthernetLink holds the link identity of the CIP Ethernet Link object.
type EthernetLink struct {
	PhysicalAddress MacAddress `msgpack:"physical_address"`
}
