package proc

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/portscout/portscout/pkg/model"
)

var tcpStates = map[string]model.SockState{
	"01": model.StateEstablished,
	"02": model.StateSynSent,
	"03": model.StateSynRecv,
	"04": model.StateFinWait1,
	"05": model.StateFinWait2,
	"06": model.StateTimeWait,
	"07": model.StateClose,
	"08": model.StateCloseWait,
	"09": model.StateLastAck,
	"0A": model.StateListen,
	"0B": model.StateClosing,
}

// parseSocketTable decodes one /proc/net socket table. The first line is a
// column header and is discarded. A line that fails to decode is skipped and
// counted; the rest of the table still parses.
func parseSocketTable(r io.Reader, proto model.Protocol, family model.Family) ([]model.SocketRecord, int) {
	var records []model.SocketRecord
	malformed := 0

	scanner := bufio.NewScanner(r)
	scanner.Scan() // skip header

	for scanner.Scan() {
		rec, err := parseSocketLine(scanner.Text(), proto, family)
		if err != nil {
			malformed++
			continue
		}
		records = append(records, rec)
	}
	return records, malformed
}

func parseSocketLine(line string, proto model.Protocol, family model.Family) (model.SocketRecord, error) {
	fields := strings.Fields(line)
	if len(fields) < 10 {
		return model.SocketRecord{}, fmt.Errorf("want at least 10 fields, got %d", len(fields))
	}

	localIP, localPort, err := parseAddr(fields[1], family)
	if err != nil {
		return model.SocketRecord{}, fmt.Errorf("local address %q: %w", fields[1], err)
	}
	remoteIP, remotePort, err := parseAddr(fields[2], family)
	if err != nil {
		return model.SocketRecord{}, fmt.Errorf("remote address %q: %w", fields[2], err)
	}

	// UDP rows carry no meaningful state byte; they are always bound.
	state := model.StateOpen
	if proto == model.TCP {
		var ok bool
		state, ok = tcpStates[fields[3]]
		if !ok {
			state = model.StateUnknown
		}
	}

	inode, err := strconv.ParseUint(fields[9], 10, 64)
	if err != nil {
		return model.SocketRecord{}, fmt.Errorf("inode %q: %w", fields[9], err)
	}

	return model.SocketRecord{
		Protocol:   proto,
		Family:     family,
		LocalIP:    localIP,
		LocalPort:  localPort,
		RemoteIP:   remoteIP,
		RemotePort: remotePort,
		State:      state,
		Inode:      inode,
	}, nil
}

// parseAddr decodes the kernel's hex ADDR:PORT notation. The port is plain
// big-endian hex. IPv4 addresses are stored as a little-endian 32-bit value;
// IPv6 addresses as four such values, each byte-reversed within its group.
func parseAddr(raw string, family model.Family) (net.IP, uint16, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return nil, 0, fmt.Errorf("not in ADDR:PORT form")
	}

	port, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return nil, 0, fmt.Errorf("port: %w", err)
	}

	b, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, 0, fmt.Errorf("address: %w", err)
	}

	switch family {
	case model.IPv4:
		if len(b) != 4 {
			return nil, 0, fmt.Errorf("want 4 address bytes, got %d", len(b))
		}
		return net.IP{b[3], b[2], b[1], b[0]}, uint16(port), nil
	case model.IPv6:
		if len(b) != 16 {
			return nil, 0, fmt.Errorf("want 16 address bytes, got %d", len(b))
		}
		ip := make(net.IP, 16)
		for i := 0; i < 4; i++ {
			ip[i*4+0] = b[i*4+3]
			ip[i*4+1] = b[i*4+2]
			ip[i*4+2] = b[i*4+1]
			ip[i*4+3] = b[i*4+0]
		}
		return ip, uint16(port), nil
	}
	return nil, 0, fmt.Errorf("unknown address family %v", family)
}
