package proc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portscout/portscout/pkg/model"
)

const tcpHeader = "  sl  local_address rem_address   st tx_queue rx_queue tr tm->when retrnsmt   uid  timeout inode"

func TestParseSocketTableTCP(t *testing.T) {
	table := tcpHeader + "\n" +
		"   0: 0100007F:1F90 00000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 75236 1 0000000000000000 100 0 0 10 0\n" +
		"   1: 0100007F:0BB8 0100007F:1F90 01 00000000:00000000 00:00000000 00000000  1000        0 75237 1 0000000000000000 100 0 0 10 0\n"

	records, malformed := parseSocketTable(strings.NewReader(table), model.TCP, model.IPv4)
	require.Len(t, records, 2)
	assert.Equal(t, 0, malformed)

	listen := records[0]
	assert.Equal(t, model.TCP, listen.Protocol)
	assert.Equal(t, model.IPv4, listen.Family)
	assert.Equal(t, "127.0.0.1", listen.LocalIP.String())
	assert.Equal(t, uint16(8080), listen.LocalPort)
	assert.Equal(t, model.StateListen, listen.State)
	assert.Equal(t, uint64(75236), listen.Inode)

	est := records[1]
	assert.Equal(t, "127.0.0.1:3000", est.LocalAddr())
	assert.Equal(t, "127.0.0.1:8080", est.RemoteAddr())
	assert.Equal(t, model.StateEstablished, est.State)
}

func TestParseSocketTableUDPAlwaysOpen(t *testing.T) {
	table := tcpHeader + "\n" +
		"  102: 0100007F:0035 00000000:0000 07 00000000:00000000 00:00000000 00000000   101        0 23456 2 0000000000000000 0\n"

	records, malformed := parseSocketTable(strings.NewReader(table), model.UDP, model.IPv4)
	require.Len(t, records, 1)
	assert.Equal(t, 0, malformed)
	assert.Equal(t, model.StateOpen, records[0].State)
	assert.Equal(t, uint16(53), records[0].LocalPort)
}

func TestParseSocketTableIPv6(t *testing.T) {
	table := tcpHeader + "\n" +
		"   0: 00000000000000000000000001000000:1A0A 00000000000000000000000000000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 34567 1 0000000000000000 100 0 0 10 0\n"

	records, malformed := parseSocketTable(strings.NewReader(table), model.TCP, model.IPv6)
	require.Len(t, records, 1)
	assert.Equal(t, 0, malformed)
	assert.Equal(t, "::1", records[0].LocalIP.String())
	assert.Equal(t, uint16(6666), records[0].LocalPort)
	assert.Equal(t, "::", records[0].RemoteIP.String())
}

func TestParseSocketTableSkipsMalformedLines(t *testing.T) {
	table := tcpHeader + "\n" +
		"garbage\n" +
		"   0: ZZZZZZZZ:1F90 00000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 75236 1\n" +
		"   1: 0100007F:1F90 00000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 notanode 1\n" +
		"   2: 0100007F:0050 00000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 99999 1 0000000000000000 100 0 0 10 0\n"

	records, malformed := parseSocketTable(strings.NewReader(table), model.TCP, model.IPv4)
	require.Len(t, records, 1)
	assert.Equal(t, 3, malformed)
	assert.Equal(t, uint16(80), records[0].LocalPort)
}

func TestParseSocketTableHeaderOnly(t *testing.T) {
	records, malformed := parseSocketTable(strings.NewReader(tcpHeader+"\n"), model.TCP, model.IPv4)
	assert.Empty(t, records)
	assert.Equal(t, 0, malformed)
}

func TestParseSocketTableUnknownStateByte(t *testing.T) {
	table := tcpHeader + "\n" +
		"   0: 0100007F:1F90 00000000:0000 0D 00000000:00000000 00:00000000 00000000  1000        0 75236 1 0000000000000000 100 0 0 10 0\n"

	records, _ := parseSocketTable(strings.NewReader(table), model.TCP, model.IPv4)
	require.Len(t, records, 1)
	assert.Equal(t, model.StateUnknown, records[0].State)
}

// The kernel stores 127.0.0.1:8080 as 0100007F:1F90; decoding must recover
// the dotted-decimal form and the big-endian port exactly.
func TestParseAddrRoundTrip(t *testing.T) {
	ip, port, err := parseAddr("0100007F:1F90", model.IPv4)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip.String())
	assert.Equal(t, uint16(8080), port)

	ip, port, err = parseAddr("00000000:0000", model.IPv4)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", ip.String())
	assert.Equal(t, uint16(0), port)
}

func TestParseAddrRejectsBadInput(t *testing.T) {
	cases := []string{
		"0100007F",          // no port
		"0100007F:ZZZZ",     // bad port hex
		"XX00007F:1F90",     // bad address hex
		"0100:1F90",         // short IPv4 address
		"0100007F00:1F90",   // long IPv4 address
	}
	for _, raw := range cases {
		_, _, err := parseAddr(raw, model.IPv4)
		assert.Error(t, err, raw)
	}

	_, _, err := parseAddr("0100007F:1F90", model.IPv6)
	assert.Error(t, err, "IPv4-sized address in the IPv6 table")
}
