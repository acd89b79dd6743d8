// Package shortpath shortens paths which exceed the legacy Windows length limit by substituting
// their long segments with 8.3 short names.
package shortpath

import (
	"runtime"
	"time"

	"github.com/mtth/shortpath/internal/fspath"
	"github.com/mtth/shortpath/internal/helper"
	"github.com/mtth/shortpath/internal/probe"
	"github.com/mtth/shortpath/internal/ttlcache"
)

// DefaultTTL is the time-to-live of cache entries used by DefaultOptions.
const DefaultTTL = 10 * time.Second

// vulnerableOS is the only platform with a path length limit which short names work around. All
// operations are passthroughs on other platforms.
const vulnerableOS = "windows"

// Options configures a Service.
type Options struct {
	// Time-to-live of cached filesystem lookups and resolutions. Zero disables caching.
	TTL time.Duration
	// Operating system name, defaults to runtime.GOOS.
	GOOS string
	// Filesystem used to list directories and validate candidates, defaults to probe.OS().
	FileSystem probe.FileSystem
	// Source of exact short paths, defaults to helper.Command().
	Helper helper.Helper
}

// DefaultOptions returns the options used by the package-level functions.
func DefaultOptions() Options {
	return Options{TTL: DefaultTTL}
}

// resolveKey indexes full path resolutions, which differ depending on whether shortening was
// forced.
type resolveKey struct {
	path  fspath.Local
	force bool
}

// Service resolves short paths. Its caches are shared by all calls and safe for concurrent use;
// concurrent resolutions of the same path may duplicate work but produce identical results.
type Service struct {
	goos   string
	fs     probe.FileSystem
	helper helper.Helper

	caches   *ttlcache.Registry
	indexes  *ttlcache.Cache[fspath.Local, map[string]int]
	exists   *ttlcache.Cache[fspath.Local, bool]
	stats    *ttlcache.Cache[fspath.Local, probe.FileStat]
	segments *ttlcache.Cache[fspath.Local, fspath.Local]
	resolved *ttlcache.Cache[resolveKey, fspath.Local]
	exact    *ttlcache.Cache[fspath.Local, fspath.Local]
}

// NewService returns a new Service with empty caches.
func NewService(opts Options) *Service {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.FileSystem == nil {
		opts.FileSystem = probe.OS()
	}
	if opts.Helper == nil {
		opts.Helper = helper.Command()
	}
	reg := ttlcache.NewRegistry(opts.TTL)
	return &Service{
		goos:     opts.GOOS,
		fs:       opts.FileSystem,
		helper:   opts.Helper,
		caches:   reg,
		indexes:  ttlcache.New[fspath.Local, map[string]int](reg),
		exists:   ttlcache.New[fspath.Local, bool](reg),
		stats:    ttlcache.New[fspath.Local, probe.FileStat](reg),
		segments: ttlcache.New[fspath.Local, fspath.Local](reg),
		resolved: ttlcache.New[resolveKey, fspath.Local](reg),
		exact:    ttlcache.New[fspath.Local, fspath.Local](reg),
	}
}

// CacheTTL returns the current time-to-live of cache entries.
func (s *Service) CacheTTL() time.Duration {
	return s.caches.TTL()
}

// SetCacheTTL changes the time-to-live of cache entries. Zero disables caching without clearing
// existing entries.
func (s *Service) SetCacheTTL(ttl time.Duration) {
	s.caches.SetTTL(ttl)
}

// CacheLen returns the number of entries currently held across all caches.
func (s *Service) CacheLen() int {
	return s.caches.Len()
}

// PurgeCaches drops all cached entries, for example after directories were renamed.
func (s *Service) PurgeCaches() {
	s.caches.Purge()
}

// Close releases the service's caches and stops their sweep.
func (s *Service) Close() {
	s.caches.Close()
}

// passthrough returns true if the path should be returned as-is.
func (s *Service) passthrough(fp fspath.Local, force bool) bool {
	return s.goos != vulnerableOS || (!force && fspath.Width(fp) < fspath.MaxLength)
}

// Pending is the eventual result of an asynchronous call.
type Pending struct {
	done chan struct{}
	path fspath.Local
	err  error
}

func goPending(fn func() (fspath.Local, error)) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.path, p.err = fn()
	}()
	return p
}

// Done returns a channel which is closed once the result is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the call completes and returns its result.
func (p *Pending) Wait() (fspath.Local, error) {
	<-p.done
	return p.path, p.err
}
