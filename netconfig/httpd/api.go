package httpd

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/chenzhuo1005/OpENer/lib/html"
	"github.com/chenzhuo1005/OpENer/lib/net/configurator"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

// Configuration is a snapshot of the bootstrapped record.
type Configuration struct {
	Interface     string
	Configuration tcpip.InterfaceConfiguration
	EthernetLink  tcpip.EthernetLink
	GatewayStatus tcpip.GatewayStatus
}

// State holds the record served by the status pages.
type State struct {
	mutex             sync.RWMutex
	configuration     Configuration
	recoverableErrors []string
}

func NewState() *State {
	return &State{}
}

// Get returns a copy of the current record.
func (s *State) Get() Configuration {
	return s.get()
}

// Update replaces the record with the output of a bootstrap pass.
func (s *State) Update(config tcpip.InterfaceConfiguration,
	link tcpip.EthernetLink, result *configurator.Result) {
	s.update(config, link, result)
}

func StartServer(portNum uint, state *State, daemon bool) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", portNum))
	if err != nil {
		return err
	}
	state.register(http.DefaultServeMux)
	if daemon {
		go http.Serve(listener, nil)
	} else {
		return http.Serve(listener, nil)
	}
	return nil
}

func (s *State) register(serveMux *http.ServeMux) {
	html.HandleFunc(serveMux, "/", s.statusHandler)
	html.HandleFunc(serveMux, "/showConfiguration",
		s.showConfigurationHandler)
}
