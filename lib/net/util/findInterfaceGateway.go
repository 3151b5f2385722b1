package util

import (
	"bufio"
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/chenzhuo1005/OpENer/proto/tcpip"
)

// Columns of /proc/net/route: Iface Destination Gateway Flags ...
const gatewayColumn = 2

var loopbackAddress = tcpip.Address(0x7f000001)

func findInterfaceGateway(reader io.Reader,
	interfaceName string) (*GatewayInfo, error) {
	if interfaceName == "" {
		return nil, ErrInterfaceNotFound
	}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, interfaceName) {
			continue
		}
		info := &GatewayInfo{Status: tcpip.GatewayStatusUnparsable}
		if fields := strings.Fields(line); len(fields) > gatewayColumn {
			info.Token = fields[gatewayColumn]
			info.Address, info.Status = parseGatewayAddress(info.Token)
		}
		return info, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, ErrInterfaceNotFound
}

func parseGatewayAddress(token string) (tcpip.Address, tcpip.GatewayStatus) {
	addr, err := tcpip.ParseAddress(token)
	if err != nil {
		// The kernel writes the raw in_addr as 8 hexadecimal digits.
		if len(token) != 8 {
			return 0, tcpip.GatewayStatusUnparsable
		}
		value, err := strconv.ParseUint(token, 16, 32)
		if err != nil {
			return 0, tcpip.GatewayStatusUnparsable
		}
		var raw [4]byte
		binary.LittleEndian.PutUint32(raw[:], uint32(value))
		addr = tcpip.Address(binary.BigEndian.Uint32(raw[:]))
	}
	switch addr {
	case 0:
		return 0, tcpip.GatewayStatusUnset
	case loopbackAddress:
		return 0, tcpip.GatewayStatusLoopback
	}
	return addr, tcpip.GatewayStatusFound
}
