package model

// Optional is a string field that may never have been observed. An invalid
// Optional means the read failed (permission, process gone); a valid one
// with an empty Value means the field really was empty.
type Optional struct {
	Value string
	Valid bool
}

func Some(v string) Optional {
	return Optional{Value: v, Valid: true}
}

// Or returns the observed value, or fallback when the field is unknown.
func (o Optional) Or(fallback string) string {
	if !o.Valid {
		return fallback
	}
	return o.Value
}

// ProcessMeta holds the per-process details fetched for a canonical owner.
// Every field is independently best-effort.
type ProcessMeta struct {
	Name       Optional
	Cmdline    Optional
	WorkingDir Optional
}

// Owner identifies the canonical process owning a socket.
type Owner struct {
	PID  int
	Meta ProcessMeta
}
