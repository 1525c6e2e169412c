//go:build linux

package proc

import (
	"os"

	"github.com/portscout/portscout/pkg/model"
)

var socketTables = []struct {
	path   string
	proto  model.Protocol
	family model.Family
}{
	{"/proc/net/tcp", model.TCP, model.IPv4},
	{"/proc/net/tcp6", model.TCP, model.IPv6},
	{"/proc/net/udp", model.UDP, model.IPv4},
	{"/proc/net/udp6", model.UDP, model.IPv6},
}

// ReadSocketTables snapshots all four kernel socket tables. A missing table
// (IPv6 disabled, for example) contributes zero records; only when no table
// can be opened at all does the read fail, with ErrUnsupportedPlatform.
// The second return value counts lines that failed to decode.
func ReadSocketTables() ([]model.SocketRecord, int, error) {
	var records []model.SocketRecord
	malformed := 0
	opened := 0

	for _, t := range socketTables {
		f, err := os.Open(t.path)
		if err != nil {
			continue
		}
		opened++
		recs, bad := parseSocketTable(f, t.proto, t.family)
		f.Close()
		records = append(records, recs...)
		malformed += bad
	}

	if opened == 0 {
		return nil, 0, ErrUnsupportedPlatform
	}
	return records, malformed, nil
}
