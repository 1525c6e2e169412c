package proc

// InodeIndex maps a socket inode to every pid holding a descriptor for it.
// A socket referenced from several processes (fork before exec, descriptor
// passing) keeps all candidates; Owner picks the canonical one.
type InodeIndex struct {
	pids map[uint64][]int
}

func NewInodeIndex() *InodeIndex {
	return &InodeIndex{pids: make(map[uint64][]int)}
}

// Add records one descriptor observation. A pid holding several descriptors
// for the same socket collapses to a single candidate.
func (ix *InodeIndex) Add(inode uint64, pid int) {
	for _, p := range ix.pids[inode] {
		if p == pid {
			return
		}
	}
	ix.pids[inode] = append(ix.pids[inode], pid)
}

// Owner returns the canonical owning pid for inode: the numerically smallest
// candidate, so the choice does not depend on walk order. ok is false when no
// visible process holds the socket.
func (ix *InodeIndex) Owner(inode uint64) (int, bool) {
	candidates := ix.pids[inode]
	if len(candidates) == 0 {
		return 0, false
	}
	owner := candidates[0]
	for _, p := range candidates[1:] {
		if p < owner {
			owner = p
		}
	}
	return owner, true
}

// Len reports how many distinct socket inodes were observed.
func (ix *InodeIndex) Len() int {
	return len(ix.pids)
}
