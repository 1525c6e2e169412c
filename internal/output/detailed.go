package output

import (
	"fmt"
	"strings"

	"github.com/portscout/portscout/pkg/model"
)

// renderDetailed prints one labeled block per record with every field in
// full, blocks separated by a blank line.
func renderDetailed(records []model.EnrichedRecord) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		v := fieldValues(r)
		fmt.Fprintf(&b, "Port: %s (%s)\n", v[colPort], v[colProtocol])
		fmt.Fprintf(&b, "State: %s\n", v[colState])
		fmt.Fprintf(&b, "PID: %s\n", v[colPID])
		fmt.Fprintf(&b, "Process: %s\n", v[colProcess])
		fmt.Fprintf(&b, "Command: %s\n", v[colCommand])
		fmt.Fprintf(&b, "Working Dir: %s\n", v[colWorkingDir])
		b.WriteString(strings.Repeat("-", 60) + "\n")
	}
	return b.String()
}
