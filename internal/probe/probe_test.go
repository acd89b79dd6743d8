package probe

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha.txt"), []byte("abc"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "nested"), 0755))
	fsys := OS()

	t.Run("read dir", func(t *testing.T) {
		names, err := fsys.ReadDir(root)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"alpha.txt", "nested"}, names)
	})

	t.Run("read missing dir", func(t *testing.T) {
		_, err := fsys.ReadDir(filepath.Join(root, "missing"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("exists", func(t *testing.T) {
		assert.True(t, fsys.Exists(filepath.Join(root, "alpha.txt")))
		assert.True(t, fsys.Exists(filepath.Join(root, "nested")))
		assert.False(t, fsys.Exists(filepath.Join(root, "missing")))
	})

	t.Run("stat", func(t *testing.T) {
		fp := filepath.Join(root, "alpha.txt")
		st, err := fsys.Stat(fp)
		require.NoError(t, err)
		assert.Equal(t, int64(3), st.Size)

		again, err := fsys.Stat(filepath.Join(root, "nested", "..", "alpha.txt"))
		require.NoError(t, err)
		assert.True(t, st.Same(again))

		other, err := fsys.Stat(filepath.Join(root, "nested"))
		require.NoError(t, err)
		assert.False(t, st.Same(other))
	})

	t.Run("stat missing", func(t *testing.T) {
		_, err := fsys.Stat(filepath.Join(root, "missing"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestFileStat_Same(t *testing.T) {
	t0 := time.UnixMilli(3600_000)
	base := FileStat{Size: 1, ID: FileID{Device: 1, Index: 2}, ModTime: t0}
	assert.True(t, base.Same(base))
	for key, other := range map[string]FileStat{
		"size":   {Size: 2, ID: base.ID, ModTime: t0},
		"device": {Size: 1, ID: FileID{Device: 2, Index: 2}, ModTime: t0},
		"index":  {Size: 1, ID: FileID{Device: 1, Index: 3}, ModTime: t0},
		"time":   {Size: 1, ID: base.ID, ModTime: t0.Add(time.Millisecond)},
	} {
		t.Run(key, func(t *testing.T) {
			assert.False(t, base.Same(other))
		})
	}
}
