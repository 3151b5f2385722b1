package net

import (
	"net"
	"os"
	"path/filepath"

	"github.com/chenzhuo1005/OpENer/lib/log"
)

const (
	procNetVlan = "/proc/net/vlan"
	sysClassNet = "/sys/class/net"
)

func listBroadcastInterfaces(interfaceType uint, logger log.DebugLogger) (
	[]net.Interface, map[string]net.Interface, error) {
	interfaceList := make([]net.Interface, 0)
	interfaceMap := make(map[string]net.Interface)
	if allInterfaces, err := net.Interfaces(); err != nil {
		return nil, nil, err
	} else {
		for _, iface := range allInterfaces {
			if iface.Flags&net.FlagBroadcast == 0 {
				logger.Debugf(2, "skipping non-broadcast interface: %s\n",
					iface.Name)
			} else if includeType(iface, interfaceType, logger) {
				logger.Debugf(1, "found broadcast interface: %s\n", iface.Name)
				interfaceList = append(interfaceList, iface)
				interfaceMap[iface.Name] = iface
			}
		}
	}
	return interfaceList, interfaceMap, nil
}

func includeType(iface net.Interface, interfaceType uint,
	logger log.DebugLogger) bool {
	var checks = []struct {
		pathname string
		mask     uint
		typeName string
	}{
		{filepath.Join(sysClassNet, iface.Name, "bonding"),
			InterfaceTypeBonding, "bonding"},
		{filepath.Join(sysClassNet, iface.Name, "bridge"),
			InterfaceTypeBridge, "bridge"},
		{filepath.Join(sysClassNet, iface.Name, "device"),
			InterfaceTypeEtherNet, "EtherNet"},
		{filepath.Join(procNetVlan, iface.Name), InterfaceTypeVlan, "Vlan"},
		{filepath.Join(sysClassNet, iface.Name, "tun_flags"),
			InterfaceTypeTunTap, "TUN/TAP"},
	}
	for _, check := range checks {
		if _, err := os.Stat(check.pathname); err != nil {
			continue
		}
		if interfaceType&check.mask == 0 {
			logger.Debugf(2, "skipping %s interface: %s\n", check.typeName,
				iface.Name)
			return false
		}
		return true
	}
	logger.Debugf(1, "skipping unknown interface: %s\n", iface.Name)
	return false
}
