package configurator

import (
	"fmt"
	"io"

	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

func printResolvConf(writer io.Writer,
	config *tcpip.InterfaceConfiguration) error {
	if config.DomainName != "" {
		_, err := fmt.Fprintf(writer, "domain %s\nsearch %s\n\n",
			config.DomainName, config.DomainName)
		if err != nil {
			return err
		}
	}
	for _, nameServer := range []tcpip.Address{
		config.NameServer, config.NameServer2} {
		if nameServer == 0 {
			continue
		}
		if _, err := fmt.Fprintf(writer, "nameserver %s\n",
			nameServer); err != nil {
			return err
		}
	}
	return nil
}
