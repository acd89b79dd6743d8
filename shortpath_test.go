package shortpath

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/mtth/shortpath/internal/fspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxLength(t *testing.T) {
	assert.Equal(t, fspath.MaxLength, MaxLength)
}

func TestCacheTTL(t *testing.T) {
	defer SetCacheTTL(CacheTTL())
	assert.Equal(t, DefaultCacheTTL, CacheTTL())
	SetCacheTTL(time.Second)
	assert.Equal(t, time.Second, CacheTTL())
}

func TestClearCache(t *testing.T) {
	_, err := Resolve("short", true)
	require.NoError(t, err)
	ClearCache()
	assert.Zero(t, service().CacheLen())
}

func TestPassthrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("short names are only skipped on other platforms")
	}
	ctx := context.Background()
	long := filepath.Join(t.TempDir(), strings.Repeat("a-very-long-directory-name/", 12), "file.txt")
	require.GreaterOrEqual(t, len(long), MaxLength)

	for _, force := range []bool{false, true} {
		got, err := Resolve(long, force)
		require.NoError(t, err)
		assert.Equal(t, long, got)

		got, err = ResolveAsync(long, force).Wait()
		require.NoError(t, err)
		assert.Equal(t, long, got)

		got, err = ExactShortName(ctx, long, force)
		require.NoError(t, err)
		assert.Equal(t, long, got)

		got, err = ExactShortNameAsync(ctx, long, force).Wait()
		require.NoError(t, err)
		assert.Equal(t, long, got)

		all, err := ResolveAll(ctx, []string{long, "short"}, force)
		require.NoError(t, err)
		assert.Equal(t, []string{long, "short"}, all)
	}
}
