//go:build linux

package proc

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/portscout/portscout/pkg/model"
)

// Metadata fetches the short name, command line, and working directory for
// pid. Each field is read independently and tolerated on failure, so a
// process that exits mid-read or denies access still yields whatever fields
// were readable. A kernel thread legitimately reports an empty command line;
// that stays distinguishable from a failed read.
func Metadata(pid int) model.ProcessMeta {
	var meta model.ProcessMeta

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return meta
	}

	if name, err := p.Name(); err == nil {
		meta.Name = model.Some(name)
	}
	if args, err := p.CmdlineSlice(); err == nil {
		meta.Cmdline = model.Some(strings.Join(args, " "))
	}
	if cwd, err := p.Cwd(); err == nil {
		meta.WorkingDir = model.Some(cwd)
	}
	return meta
}
