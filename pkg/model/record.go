package model

// EnrichedRecord is a socket joined with its owning process, when one could
// be resolved. A nil Owner is a normal outcome (process exited between the
// two snapshot passes, or its descriptors were not readable) and the record
// is still reported.
type EnrichedRecord struct {
	Socket SocketRecord
	Owner  *Owner
}
