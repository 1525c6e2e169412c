// Package output renders an ordered record set in one of three layouts. All
// three share the same column model and field extraction, so a field means
// the same thing everywhere; only width handling differs.
package output

import (
	"strconv"

	"github.com/portscout/portscout/pkg/model"
)

// Layout selects one of the three render strategies.
type Layout int

const (
	LayoutStandard Layout = iota
	LayoutCompact
	LayoutDetailed
)

var headers = []string{"PORT", "PROTOCOL", "STATE", "PID", "PROCESS", "COMMAND", "WORKING_DIR"}

// Column positions in the shared field slice.
const (
	colPort = iota
	colProtocol
	colState
	colPID
	colProcess
	colCommand
	colWorkingDir
)

// fieldValues extracts the column values for one record. Process fields with
// no observed value render as "-".
func fieldValues(r model.EnrichedRecord) []string {
	pid, name, cmd, wd := "-", "-", "-", "-"
	if r.Owner != nil {
		pid = strconv.Itoa(r.Owner.PID)
		name = r.Owner.Meta.Name.Or("-")
		cmd = r.Owner.Meta.Cmdline.Or("-")
		wd = r.Owner.Meta.WorkingDir.Or("-")
	}
	return []string{
		strconv.Itoa(int(r.Socket.LocalPort)),
		r.Socket.Protocol.String(),
		string(r.Socket.State),
		pid,
		name,
		cmd,
		wd,
	}
}

// Render formats records in the requested layout. An empty record set still
// renders a structurally valid (header-only) report.
func Render(records []model.EnrichedRecord, layout Layout) string {
	switch layout {
	case LayoutCompact:
		return renderCompact(records)
	case LayoutDetailed:
		return renderDetailed(records)
	default:
		return renderStandard(records)
	}
}
