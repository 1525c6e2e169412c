package filter

import (
	"sort"
	"strings"

	"github.com/portscout/portscout/pkg/model"
)

type Scope int

const (
	ScopeLoopback Scope = iota
	ScopeAll
)

// Options is the resolved filter configuration. Nil pointer fields mean the
// corresponding stage is a no-op.
type Options struct {
	Scope   Scope
	Port    *uint16
	Include string
	Exclude string
	Limit   *uint
}

// Apply runs the filter stages in fixed order: scope, exact port, include,
// exclude, sort, limit. Zero survivors is a valid result.
func Apply(records []model.EnrichedRecord, opts Options) []model.EnrichedRecord {
	out := make([]model.EnrichedRecord, 0, len(records))
	for _, r := range records {
		if opts.Scope == ScopeLoopback && !r.Socket.LocalIP.IsLoopback() {
			continue
		}
		if opts.Port != nil && r.Socket.LocalPort != *opts.Port {
			continue
		}
		if opts.Include != "" && !matches(r, opts.Include) {
			continue
		}
		if opts.Exclude != "" && matches(r, opts.Exclude) {
			continue
		}
		out = append(out, r)
	}

	// Local port ascending, TCP before UDP on ties. Output order must not
	// depend on table discovery order.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Socket, out[j].Socket
		if a.LocalPort != b.LocalPort {
			return a.LocalPort < b.LocalPort
		}
		return a.Protocol < b.Protocol
	})

	if opts.Limit != nil && uint(len(out)) > *opts.Limit {
		out = out[:*opts.Limit]
	}
	return out
}

// matches reports whether needle occurs, case-sensitively, in any observed
// process field: name, command line, or working directory. Port and protocol
// text are not part of the match set. Records with no owning process never
// match, so include drops them and exclude keeps them.
func matches(r model.EnrichedRecord, needle string) bool {
	if r.Owner == nil {
		return false
	}
	fields := []model.Optional{
		r.Owner.Meta.Name,
		r.Owner.Meta.Cmdline,
		r.Owner.Meta.WorkingDir,
	}
	for _, f := range fields {
		if f.Valid && strings.Contains(f.Value, needle) {
			return true
		}
	}
	return false
}
