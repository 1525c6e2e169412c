//go:build linux

package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// BuildInodeIndex walks every visible /proc/<pid>/fd directory and collects
// the socket inodes their descriptors point at. Processes whose descriptors
// cannot be listed (other users' processes, or ones that exited mid-walk)
// contribute nothing; the count of those is returned alongside the index.
func BuildInodeIndex() (*InodeIndex, int) {
	return buildInodeIndex("/proc")
}

func buildInodeIndex(procRoot string) (*InodeIndex, int) {
	ix := NewInodeIndex()
	skipped := 0

	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return ix, 0
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}

		fdDir := filepath.Join(procRoot, e.Name(), "fd")
		fds, err := os.ReadDir(fdDir)
		if err != nil {
			// permission denied, or the process is already gone
			skipped++
			continue
		}

		for _, fd := range fds {
			link, err := os.Readlink(filepath.Join(fdDir, fd.Name()))
			if err != nil {
				continue
			}
			inode, ok := socketInode(link)
			if !ok {
				continue
			}
			ix.Add(inode, pid)
		}
	}
	return ix, skipped
}

// socketInode extracts N from a "socket:[N]" descriptor link target.
func socketInode(link string) (uint64, bool) {
	if !strings.HasPrefix(link, "socket:[") || !strings.HasSuffix(link, "]") {
		return 0, false
	}
	n, err := strconv.ParseUint(link[len("socket:["):len(link)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
