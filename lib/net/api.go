package net

import (
	"net"

	"github.com/chenzhuo1005/OpENer/lib/log"
)

const (
	InterfaceTypeEtherNet = 1 << iota
	InterfaceTypeBonding
	InterfaceTypeBridge
	InterfaceTypeVlan
	InterfaceTypeTunTap
)

// ListBroadcastInterfaces returns the broadcast-capable interfaces whose type
// is included in the interfaceType bitmask, both as a list and keyed by name.
func ListBroadcastInterfaces(interfaceType uint, logger log.DebugLogger) (
	[]net.Interface, map[string]net.Interface, error) {
	return listBroadcastInterfaces(interfaceType, logger)
}

// SelectInterface resolves an interface pattern to an interface name.
// An empty pattern selects the interface holding the default route in
// routeFile (/proc/net/route if empty). A pattern
// containing '*' is matched against the broadcast interfaces; the first
// matching name (sorted) with carrier wins, else the first matching name.
// Any other pattern is returned unchanged.
func SelectInterface(pattern, routeFile string,
	logger log.DebugLogger) (string, error) {
	return selectInterface(pattern, routeFile, logger)
}

// TestCarrier returns true if the interface reports link carrier.
func TestCarrier(name string) bool {
	return testCarrier(name)
}
