package model

import (
	"fmt"
	"net"
)

type Protocol int

const (
	TCP Protocol = iota
	UDP
)

func (p Protocol) String() string {
	switch p {
	case TCP:
		return "TCP"
	case UDP:
		return "UDP"
	}
	return "UNKNOWN"
}

// Family is the address family of the kernel table a record came from.
// Inode numbers are only unique within one protocol/family table, so a
// record carries its origin.
type Family int

const (
	IPv4 Family = iota
	IPv6
)

func (f Family) String() string {
	if f == IPv6 {
		return "IPv6"
	}
	return "IPv4"
}

// SockState is the shared textual state vocabulary. TCP sockets use the
// kernel state names; UDP sockets always report StateOpen.
type SockState string

const (
	StateEstablished SockState = "ESTABLISHED"
	StateSynSent     SockState = "SYN_SENT"
	StateSynRecv     SockState = "SYN_RECV"
	StateFinWait1    SockState = "FIN_WAIT1"
	StateFinWait2    SockState = "FIN_WAIT2"
	StateTimeWait    SockState = "TIME_WAIT"
	StateClose       SockState = "CLOSE"
	StateCloseWait   SockState = "CLOSE_WAIT"
	StateLastAck     SockState = "LAST_ACK"
	StateListen      SockState = "LISTEN"
	StateClosing     SockState = "CLOSING"
	StateOpen        SockState = "OPEN"
	StateUnknown     SockState = "UNKNOWN"
)

// SocketRecord is one row of a kernel socket table, decoded. Records are
// built once per run and never mutated.
type SocketRecord struct {
	Protocol   Protocol
	Family     Family
	LocalIP    net.IP
	LocalPort  uint16
	RemoteIP   net.IP
	RemotePort uint16
	State      SockState
	Inode      uint64
}

func (r SocketRecord) LocalAddr() string {
	return fmt.Sprintf("%s:%d", r.LocalIP, r.LocalPort)
}

func (r SocketRecord) RemoteAddr() string {
	return fmt.Sprintf("%s:%d", r.RemoteIP, r.RemotePort)
}
