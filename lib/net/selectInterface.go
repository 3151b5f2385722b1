package net

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chenzhuo1005/OpENer/lib/log"
	"github.com/chenzhuo1005/OpENer/lib/net/util"
	"github.com/ryanuber/go-glob"
)

const selectableInterfaceTypes = InterfaceTypeEtherNet |
	InterfaceTypeBonding | InterfaceTypeBridge | InterfaceTypeVlan

func selectInterface(pattern, routeFile string,
	logger log.DebugLogger) (string, error) {
	if pattern == "" {
		if routeFile == "" {
			routeFile = util.ProcNetRoute
		}
		defaultRoute, err := util.ReadDefaultRouteFile(routeFile)
		if err != nil {
			return "", err
		}
		logger.Debugf(0, "using default route interface: %s\n",
			defaultRoute.Interface)
		return defaultRoute.Interface, nil
	}
	if !strings.Contains(pattern, glob.GLOB) {
		return pattern, nil
	}
	interfaces, _, err := listBroadcastInterfaces(selectableInterfaceTypes,
		logger)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(interfaces))
	for _, iface := range interfaces {
		names = append(names, iface.Name)
	}
	name, err := chooseInterface(names, pattern, testCarrier)
	if err != nil {
		return "", err
	}
	logger.Debugf(0, "interface pattern: %s selected: %s\n", pattern, name)
	return name, nil
}

func chooseInterface(names []string, pattern string,
	hasCarrier func(name string) bool) (string, error) {
	matches := make([]string, 0, len(names))
	for _, name := range names {
		if glob.Glob(pattern, name) {
			matches = append(matches, name)
		}
	}
	if len(matches) < 1 {
		return "", fmt.Errorf("no interface matches: %s", pattern)
	}
	sort.Strings(matches)
	for _, name := range matches {
		if hasCarrier(name) {
			return name, nil
		}
	}
	return matches[0], nil
}
