//go:build linux

// Package pipeline wires the snapshot, correlation, and filter stages into
// one run.
package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/portscout/portscout/internal/correlate"
	"github.com/portscout/portscout/internal/filter"
	"github.com/portscout/portscout/internal/output"
	"github.com/portscout/portscout/internal/proc"
	"github.com/portscout/portscout/pkg/model"
)

// Config is the resolved invocation handed in by the CLI layer.
type Config struct {
	Scope   filter.Scope
	Port    *uint16
	Include string
	Exclude string
	Limit   *uint
	Layout  output.Layout
}

// Stats carries per-run diagnostic counts.
type Stats struct {
	Sockets   int
	Malformed int
	Skipped   int
}

// Run takes one socket-table snapshot and one process-table snapshot, joins
// them, and filters the result. The two passes are not atomic: a socket
// whose owner exits in between simply comes back unowned.
func Run(cfg Config) ([]model.EnrichedRecord, Stats, error) {
	sockets, malformed, err := proc.ReadSocketTables()
	if err != nil {
		return nil, Stats{}, err
	}

	ix, skipped := proc.BuildInodeIndex()

	stats := Stats{Sockets: len(sockets), Malformed: malformed, Skipped: skipped}
	log.Debug("snapshot complete",
		"sockets", stats.Sockets,
		"owned_inodes", ix.Len(),
		"malformed_lines", stats.Malformed,
		"skipped_processes", stats.Skipped)

	records := correlate.Enrich(sockets, ix, proc.Metadata)
	records = filter.Apply(records, filter.Options{
		Scope:   cfg.Scope,
		Port:    cfg.Port,
		Include: cfg.Include,
		Exclude: cfg.Exclude,
		Limit:   cfg.Limit,
	})
	return records, stats, nil
}

// Render formats the records in the configured layout.
func Render(records []model.EnrichedRecord, layout output.Layout) string {
	return output.Render(records, layout)
}
