package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

const (
	maxNameServers        = 2
	maxResolvConfFileSize = 1 << 20
)

func readResolverConfiguration(filename string) (
	*ResolverConfiguration, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	fi, err := file.Stat()
	if err != nil {
		return nil, err
	}
	length := fi.Size()
	if length > maxResolvConfFileSize {
		return nil, fmt.Errorf("%s: %d bytes is too large to read",
			filename, length)
	}
	buffer := make([]byte, length)
	if nRead, err := io.ReadFull(file, buffer); err != nil {
		return nil, fmt.Errorf("%s: read %d of %d bytes: %s",
			filename, nRead, length, err)
	}
	return parseResolverConfiguration(buffer), nil
}

func parseResolverConfiguration(data []byte) *ResolverConfiguration {
	config := &ResolverConfiguration{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			continue
		}
		switch line[0] {
		case '#', ';':
		case 'd', 's':
			fields := strings.Fields(line)
			if fields[0] != "domain" && fields[0] != "search" {
				continue
			}
			if len(fields) > 1 {
				config.DomainName = fields[1]
				config.HaveDomainName = true
			}
		case 'n':
			fields := strings.Fields(line)
			if fields[0] != "nameserver" || len(fields) < 2 {
				continue
			}
			config.addNameServer(fields[1])
		}
	}
	return config
}

func (config *ResolverConfiguration) addNameServer(value string) {
	addr, err := tcpip.ParseAddress(value)
	if err != nil {
		config.Malformed = append(config.Malformed, value)
		return
	}
	if len(config.NameServers) < maxNameServers {
		config.NameServers = append(config.NameServers, addr)
	} else {
		config.Discarded = append(config.Discarded, addr)
	}
}
