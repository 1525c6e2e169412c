package proc

import "errors"

// ErrUnsupportedPlatform means none of the expected kernel socket tables
// could be opened. The host does not expose the Linux /proc/net interface.
var ErrUnsupportedPlatform = errors.New("no /proc/net socket tables available")
