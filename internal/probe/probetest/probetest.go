// Package probetest provides an in-memory probe.FileSystem which records the calls made to it.
package probetest

import (
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/mtth/shortpath/internal/fspath"
	"github.com/mtth/shortpath/internal/probe"
)

// Calls counts the operations performed against a FileSystem.
type Calls struct {
	ReadDir, Exists, Stat int
}

// Total returns the sum of all calls.
func (c Calls) Total() int {
	return c.ReadDir + c.Exists + c.Stat
}

type node struct {
	id       uint64
	size     int64
	dir      bool
	names    []string
	children map[string]*node
}

// FileSystem is an in-memory probe.FileSystem. Paths are decomposed with fspath.Split and a node may
// be reachable under several names (see Link), which is how short aliases are modeled. It is safe
// for concurrent use.
type FileSystem struct {
	mu     sync.Mutex
	lastID uint64
	roots  map[string]*node
	calls  Calls
}

var _ probe.FileSystem = (*FileSystem)(nil)

// New returns an empty FileSystem.
func New() *FileSystem {
	return &FileSystem{roots: make(map[string]*node)}
}

func (f *FileSystem) newNode(dir bool) *node {
	f.lastID++
	n := &node{id: f.lastID, dir: dir}
	if dir {
		n.children = make(map[string]*node)
	}
	return n
}

// Mkdir creates a directory and any missing parents.
func (f *FileSystem) Mkdir(dir fspath.Local) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.create(dir, true, 0)
}

// WriteFile creates a file of the given size, creating any missing parents. Children are listed in
// creation order.
func (f *FileSystem) WriteFile(fp fspath.Local, size int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.create(fp, false, size)
}

func (f *FileSystem) create(fp fspath.Local, dir bool, size int64) {
	segs := fspath.Split(fp)
	parent, ok := f.roots[segs[0]]
	if !ok {
		parent = f.newNode(true)
		f.roots[segs[0]] = parent
	}
	for i, seg := range segs[1:] {
		child, ok := parent.children[seg]
		if !ok {
			last := i == len(segs)-2
			child = f.newNode(!last || dir)
			child.size = size
			parent.children[seg] = child
			parent.names = append(parent.names, seg)
		}
		parent = child
	}
}

// Link makes the existing target reachable under the alias path, without listing it.
func (f *FileSystem) Link(alias, target fspath.Local) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tgt, err := f.lookup(target)
	if err != nil {
		panic(err)
	}
	segs := fspath.Split(alias)
	parent, err := f.lookup(dirOf(segs))
	if err != nil {
		panic(err)
	}
	parent.children[segs[len(segs)-1]] = tgt
}

// Remove deletes a path (and any alias in the same directory pointing to it).
func (f *FileSystem) Remove(fp fspath.Local) {
	f.mu.Lock()
	defer f.mu.Unlock()
	segs := fspath.Split(fp)
	parent, err := f.lookup(dirOf(segs))
	if err != nil {
		return
	}
	target := parent.children[segs[len(segs)-1]]
	for name, child := range parent.children {
		if child == target {
			delete(parent.children, name)
		}
	}
	names := parent.names[:0]
	for _, name := range parent.names {
		if _, ok := parent.children[name]; ok {
			names = append(names, name)
		}
	}
	parent.names = names
}

// Calls returns the number of operations performed so far.
func (f *FileSystem) Calls() Calls {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func dirOf(segs []string) fspath.Local {
	dir := segs[0]
	for _, seg := range segs[1 : len(segs)-1] {
		dir = fspath.Join(dir, seg)
	}
	return dir
}

func (f *FileSystem) lookup(fp fspath.Local) (*node, error) {
	segs := fspath.Split(fp)
	n, ok := f.roots[segs[0]]
	if !ok {
		return nil, &fs.PathError{Op: "lookup", Path: fp, Err: fs.ErrNotExist}
	}
	for _, seg := range segs[1:] {
		if !n.dir {
			return nil, &fs.PathError{Op: "lookup", Path: fp, Err: fs.ErrInvalid}
		}
		if n, ok = n.children[seg]; !ok {
			return nil, &fs.PathError{Op: "lookup", Path: fp, Err: fs.ErrNotExist}
		}
	}
	return n, nil
}

// ReadDir implements probe.FileSystem.
func (f *FileSystem) ReadDir(dir fspath.Local) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls.ReadDir++
	n, err := f.lookup(dir)
	if err != nil {
		return nil, err
	}
	if !n.dir {
		return nil, fmt.Errorf("read %s: %w", dir, fs.ErrInvalid)
	}
	return append([]string(nil), n.names...), nil
}

// Exists implements probe.FileSystem.
func (f *FileSystem) Exists(fp fspath.Local) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls.Exists++
	_, err := f.lookup(fp)
	return err == nil
}

// Stat implements probe.FileSystem. Modification times are derived from node identities.
func (f *FileSystem) Stat(fp fspath.Local) (probe.FileStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls.Stat++
	n, err := f.lookup(fp)
	if err != nil {
		return probe.FileStat{}, err
	}
	return probe.FileStat{
		Size:    n.size,
		ID:      probe.FileID{Device: 1, Index: n.id},
		ModTime: time.Unix(int64(n.id), 0),
	}, nil
}
