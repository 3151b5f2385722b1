package httpd

import (
	"github.com/chenzhuo1005/OpENer/lib/net/configurator"
	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

func (s *State) get() Configuration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.configuration
}

func (s *State) getRecoverableErrors() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.recoverableErrors
}

func (s *State) update(config tcpip.InterfaceConfiguration,
	link tcpip.EthernetLink, result *configurator.Result) {
	configuration := Configuration{
		Configuration: config,
		EthernetLink:  link,
	}
	var recoverableErrors []string
	if result != nil {
		configuration.Interface = result.Interface
		if result.Gateway != nil {
			configuration.GatewayStatus = result.Gateway.Status
		}
		for _, err := range result.RecoverableErrors {
			recoverableErrors = append(recoverableErrors, err.Error())
		}
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.configuration = configuration
	s.recoverableErrors = recoverableErrors
}
