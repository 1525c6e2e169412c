//go:build linux

package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addFakeProc lays out <root>/<pid>/fd/<n> symlinks the way /proc does.
func addFakeProc(t *testing.T, root string, pid int, links ...string) {
	t.Helper()
	fdDir := filepath.Join(root, strconv.Itoa(pid), "fd")
	require.NoError(t, os.MkdirAll(fdDir, 0o755))
	for i, target := range links {
		require.NoError(t, os.Symlink(target, filepath.Join(fdDir, strconv.Itoa(i))))
	}
}

func TestBuildInodeIndexWalk(t *testing.T) {
	root := t.TempDir()
	addFakeProc(t, root, 4242, "socket:[999]", "/dev/null", "pipe:[123]")
	addFakeProc(t, root, 17, "socket:[999]", "socket:[1000]")

	// Non-pid entries must be ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sys"), 0o755))

	ix, skipped := buildInodeIndex(root)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 2, ix.Len())

	pid, ok := ix.Owner(999)
	assert.True(t, ok)
	assert.Equal(t, 17, pid)

	pid, ok = ix.Owner(1000)
	assert.True(t, ok)
	assert.Equal(t, 17, pid)

	_, ok = ix.Owner(123)
	assert.False(t, ok, "pipe inodes must not be indexed")
}

func TestBuildInodeIndexSkipsUnreadableProcess(t *testing.T) {
	root := t.TempDir()
	addFakeProc(t, root, 100, "socket:[50]")

	// A pid directory with no fd dir looks like a process that exited
	// between the listing and the descriptor read.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "200"), 0o755))

	ix, skipped := buildInodeIndex(root)
	assert.Equal(t, 1, skipped)

	pid, ok := ix.Owner(50)
	assert.True(t, ok)
	assert.Equal(t, 100, pid)
}

func TestSocketInode(t *testing.T) {
	n, ok := socketInode("socket:[12345]")
	assert.True(t, ok)
	assert.Equal(t, uint64(12345), n)

	for _, link := range []string{"/dev/null", "pipe:[123]", "socket:[]", "socket:[abc]", "socket:[123"} {
		_, ok := socketInode(link)
		assert.False(t, ok, link)
	}
}
