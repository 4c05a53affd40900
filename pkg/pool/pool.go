// Package pool manages the set of materialized item handles, mounting and
// unmounting exactly once per visibility change.
package pool

import (
	"sort"

	"github.com/google/uuid"

	"github.com/go-mosaic/mosaic/pkg/errors"
	"github.com/go-mosaic/mosaic/pkg/grid"
)

// Handle is the opaque value the visual layer returns from a mount. The pool
// never inspects it; any state the visual layer attaches (a pending shape
// probe, an image decode) survives as long as the key stays visible.
type Handle any

// Kind distinguishes the two render paths a target can take.
type Kind int

const (
	// KindPrimary is an entry of the packed collection.
	KindPrimary Kind = iota
	// KindLeading is an entry of the leading row-major block.
	KindLeading
)

// Target is one visible entry the pool should keep materialized.
type Target struct {
	Kind     Kind
	Item     grid.Item
	Position grid.Position
}

// MountFunc materializes one target and returns its handle.
type MountFunc func(t Target) Handle

// UnmountFunc destroys a previously mounted handle.
type UnmountFunc func(h Handle)

type entry struct {
	// id is a per-mount instance identifier; it changes only when a key is
	// unmounted and mounted again, so tests can observe identity.
	id     string
	handle Handle
}

// Pool diffs successive visible sets and issues mount/unmount side effects.
// It must only be used from the goroutine driving the engine.
type Pool struct {
	mount   MountFunc
	unmount UnmountFunc
	entries map[string]entry
}

// New creates a pool with the given collaborator callbacks.
func New(mount MountFunc, unmount UnmountFunc) *Pool {
	return &Pool{
		mount:   mount,
		unmount: unmount,
		entries: make(map[string]entry),
	}
}

// Reconcile brings the mounted set in line with visible. Keys present in
// both stay untouched, preserving their handles. Returned slices are sorted
// for deterministic observation; both are empty when nothing changed, so a
// second call with the same visible set is a no-op.
func (p *Pool) Reconcile(visible map[string]Target) (mounted, unmounted []string) {
	for key, e := range p.entries {
		if _, still := visible[key]; !still {
			p.destroy(key, e)
			unmounted = append(unmounted, key)
		}
	}
	for key, target := range visible {
		if _, ok := p.entries[key]; ok {
			continue
		}
		p.entries[key] = entry{id: uuid.NewString(), handle: p.create(key, target)}
		mounted = append(mounted, key)
	}
	sort.Strings(mounted)
	sort.Strings(unmounted)
	return mounted, unmounted
}

// Flush unmounts everything. Required whenever key-to-position
// correspondence is invalidated: a column-count change or an item list
// replacement.
func (p *Pool) Flush() {
	for key, e := range p.entries {
		p.destroy(key, e)
	}
	clear(p.entries)
}

// Len returns the number of mounted handles.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Keys returns the mounted keys, sorted.
func (p *Pool) Keys() []string {
	keys := make([]string, 0, len(p.entries))
	for key := range p.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Handle returns the mounted handle for key, if any.
func (p *Pool) Handle(key string) (Handle, bool) {
	e, ok := p.entries[key]
	return e.handle, ok
}

// InstanceID returns the mount instance identifier for key, if mounted. The
// identifier is stable while the key remains continuously visible.
func (p *Pool) InstanceID(key string) (string, bool) {
	e, ok := p.entries[key]
	return e.id, ok
}

// create invokes the mount callback under panic recovery; a panicking
// collaborator yields a nil handle, not a corrupted pool.
func (p *Pool) create(key string, target Target) (h Handle) {
	defer errors.Recover("pool.Reconcile/mount " + key)
	if p.mount == nil {
		return nil
	}
	return p.mount(target)
}

func (p *Pool) destroy(key string, e entry) {
	defer errors.Recover("pool.Reconcile/unmount " + key)
	delete(p.entries, key)
	if p.unmount != nil {
		p.unmount(e.handle)
	}
}
