package configurator

import (
	"fmt"
)

func newQuerier(method string) (InterfaceQuerier, error) {
	switch method {
	case QueryMethodIoctl, "":
		return &IoctlQuerier{}, nil
	case QueryMethodNetlink:
		return &NetlinkQuerier{}, nil
	}
	return nil, fmt.Errorf("unknown query method: %s", method)
}
