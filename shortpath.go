// Package shortpath converts Windows paths which exceed the legacy MAX_PATH limit into equivalent
// paths using 8.3 short names, so they can be passed to APIs which still enforce it. On every other
// platform all functions return their input unchanged.
//
// Two strategies are available. Resolve reconstructs short names from directory listings and only
// keeps a shortened segment after checking that it denotes the same file as the original one.
// ExactShortName asks the operating system for the short path instead. Both cache their results
// in-process for a configurable duration (see SetCacheTTL).
package shortpath

import (
	"context"
	"sync"
	"time"

	core "github.com/mtth/shortpath/internal"
	"github.com/mtth/shortpath/internal/fspath"
	"github.com/mtth/shortpath/internal/helper"
)

// MaxLength is the path width, in UTF-16 code units, from which paths are shortened.
const MaxLength = fspath.MaxLength

// DefaultCacheTTL is the initial time-to-live of cached results.
const DefaultCacheTTL = core.DefaultTTL

var (
	// ErrDirectoryListing is returned when a directory along the path could not be listed. The
	// underlying error is wrapped.
	ErrDirectoryListing = core.ErrListingFailed
	// ErrStat is returned when a path vanished while it was being validated.
	ErrStat = core.ErrStatFailed
	// ErrHelperFailed is returned when the operating system helper failed.
	ErrHelperFailed = helper.ErrHelperFailed
	// ErrUnsafePath is returned when a path cannot be passed to the operating system helper.
	ErrUnsafePath = helper.ErrUnsafePath
)

var service = sync.OnceValue(func() *core.Service {
	return core.NewService(core.DefaultOptions())
})

// Resolve returns the path with its long segments replaced by short names, from the root down while
// the path's width minus the latest replacement's savings is at least MaxLength. Paths already under
// the limit are returned as-is unless force is set.
func Resolve(path string, force bool) (string, error) {
	return service().Resolve(path, force)
}

// Pending is the eventual result of an asynchronous call.
type Pending = core.Pending

// ResolveAsync runs Resolve in a separate goroutine.
func ResolveAsync(path string, force bool) *Pending {
	return service().ResolveAsync(path, force)
}

// ResolveAll resolves several paths concurrently and returns their results in order.
func ResolveAll(ctx context.Context, paths []string, force bool) ([]string, error) {
	return service().ResolveAll(ctx, paths, force)
}

// ExactShortName returns the short path reported by the operating system's command interpreter.
// The same passthrough rules as Resolve apply.
func ExactShortName(ctx context.Context, path string, force bool) (string, error) {
	return service().ExactShortPath(ctx, path, force)
}

// ExactShortNameAsync runs ExactShortName in a separate goroutine.
func ExactShortNameAsync(ctx context.Context, path string, force bool) *Pending {
	return service().ExactShortPathAsync(ctx, path, force)
}

// SetCacheTTL changes how long results and filesystem lookups are cached. Zero disables caching.
func SetCacheTTL(ttl time.Duration) {
	service().SetCacheTTL(ttl)
}

// CacheTTL returns how long results and filesystem lookups are cached.
func CacheTTL() time.Duration {
	return service().CacheTTL()
}

// ClearCache drops all cached results and filesystem lookups.
func ClearCache() {
	service().PurgeCaches()
}
