// Package engine renders very large item collections inside a fixed
// viewport by materializing only the rows near the scroll position.
//
// The engine composes four parts: the bin-packing layout (pkg/grid), the
// visible-row window (pkg/viewport), the mount/unmount pool (pkg/pool) and
// tick coalescing (pkg/scheduler). It is single-threaded and cooperative:
// events mark work pending, and the host drives [Engine.Step] at its tick
// boundary, where each pending class of work runs exactly once.
//
// # Shape discovery
//
// Items default to a single column. When a collaborator learns an item's
// true shape needs two columns (its thumbnail decoded wide, say), it calls
// [Engine.ReportWide] with the epoch it captured from [Engine.Epoch].
// Discoveries arrive asynchronously and out of order; a burst of them
// coalesces into one relayout, and reports carrying a stale epoch are
// discarded, so callbacks outliving a SetItems can never corrupt the new
// list.
package engine

import (
	"github.com/go-mosaic/mosaic/pkg/grid"
	"github.com/go-mosaic/mosaic/pkg/pool"
	"github.com/go-mosaic/mosaic/pkg/scheduler"
	"github.com/go-mosaic/mosaic/pkg/viewport"
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	// PhaseEmpty means no items have been supplied.
	PhaseEmpty Phase = iota
	// PhaseLaidOut means positions are computed but the pool is not yet
	// synced to the viewport.
	PhaseLaidOut
	// PhaseRendering means the pool is synced to the current viewport.
	PhaseRendering
)

func (p Phase) String() string {
	switch p {
	case PhaseLaidOut:
		return "laid-out"
	case PhaseRendering:
		return "rendering"
	default:
		return "empty"
	}
}

// Engine positions items in a column grid and keeps the pool of mounted
// handles in sync with the scroll position.
//
// All methods must be called from the single goroutine that drives Step.
type Engine struct {
	host  Host
	opts  Options
	sched *scheduler.Scheduler
	pool  *pool.Pool

	reconcileTask *scheduler.Task
	relayoutTask  *scheduler.Task
	discoveryTask *scheduler.Task

	items   []grid.Item
	leading []grid.LeadingItem
	byKey   map[string]int

	geom   grid.Geometry
	wide   *grid.WideSet
	layout grid.Layout
	epoch  uint64
	phase  Phase
	stats  Stats
}

// New constructs an engine around the host's callbacks. Mount and unmount
// are the visual layer's materialization hooks; they are invoked only from
// within Step-driven reconciles.
func New(host Host, mount pool.MountFunc, unmount pool.UnmountFunc, opts Options) *Engine {
	e := &Engine{
		host:  host,
		opts:  opts.normalized(),
		sched: scheduler.New(),
		pool:  pool.New(mount, unmount),
		byKey: make(map[string]int),
		wide:  grid.NewWideSet(),
		phase: PhaseEmpty,
	}
	e.geom = grid.Geometry{
		ColumnCount:  1,
		RowExtent:    e.opts.RowExtent,
		ColumnExtent: e.opts.ColumnExtent,
	}
	// Scroll, resize and discovery coalesce independently so a flood of
	// one cannot starve the others.
	e.reconcileTask = e.sched.NewTask("reconcile", e.reconcile)
	e.relayoutTask = e.sched.NewTask("relayout", e.relayoutForResize)
	e.discoveryTask = e.sched.NewTask("discovery", e.relayoutForDiscovery)
	return e
}

// OnNeedsTick registers the host's wake-up callback, invoked when work
// becomes pending and a Step should be driven.
func (e *Engine) OnNeedsTick(fn func()) {
	e.sched.OnNeedsTick = fn
}

// Step runs all pending work once. The host calls this at its tick
// boundary (frame callback, event-loop turn).
func (e *Engine) Step() {
	e.sched.Step()
}

// NeedsStep reports whether any work is pending.
func (e *Engine) NeedsStep() bool {
	return e.sched.HasPending()
}

// SetItems replaces both collections. The epoch advances, outstanding
// discovery callbacks become stale, the wide set resets, and every mounted
// handle is flushed before the new layout is computed.
func (e *Engine) SetItems(primary []grid.Item, leading []grid.LeadingItem) {
	e.epoch++
	e.items = primary
	e.leading = leading
	e.byKey = make(map[string]int, len(primary))
	for i, item := range primary {
		e.byKey[item.Key] = i
	}
	e.wide = grid.NewWideSet()

	e.pool.Flush()
	e.refreshGeometry()
	e.relayout()
	e.reconcileTask.Schedule()
}

// Epoch returns the current item-list generation. Collaborators capture it
// alongside an item and pass it back to ReportWide.
func (e *Engine) Epoch() uint64 {
	return e.epoch
}

// Phase returns the engine's lifecycle state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Stats returns work counters for diagnostics.
func (e *Engine) Stats() Stats {
	return e.stats
}

// ReportWide records that an item's true shape requires two columns.
// Reports carrying a stale epoch are discarded; repeats for a known-wide
// key are no-ops; everything else accumulates into the wide set and
// schedules at most one relayout for the next Step.
func (e *Engine) ReportWide(key string, epoch uint64) {
	if epoch != e.epoch {
		e.stats.StaleReports++
		return
	}
	index, known := e.byKey[key]
	if !known || !e.items[index].WideEligible {
		return
	}
	if !e.wide.Add(key) {
		return
	}
	e.discoveryTask.Schedule()
}

// NotifyScroll schedules a reconcile for the next Step. Any number of
// scroll events per tick collapse into one reconcile.
func (e *Engine) NotifyScroll() {
	if e.phase == PhaseEmpty {
		return
	}
	e.reconcileTask.Schedule()
}

// NotifyResize schedules a geometry recompute for the next Step.
func (e *Engine) NotifyResize() {
	if e.phase == PhaseEmpty {
		return
	}
	e.relayoutTask.Schedule()
}

// ContentExtent returns the total scrollable height, for scrollbar sizing.
func (e *Engine) ContentExtent() float64 {
	return e.geom.LeadingExtent + float64(e.layout.RowCount)*e.geom.RowExtent
}

// Geometry returns the current grid geometry.
func (e *Engine) Geometry() grid.Geometry {
	return e.geom
}

// RowCount returns the number of packed rows in the current layout.
func (e *Engine) RowCount() int {
	return e.layout.RowCount
}

// MountedKeys returns the keys currently materialized, sorted.
func (e *Engine) MountedKeys() []string {
	return e.pool.Keys()
}

// MountedHandle returns the handle mounted for key, if any.
func (e *Engine) MountedHandle(key string) (pool.Handle, bool) {
	return e.pool.Handle(key)
}

// refreshGeometry derives the column count from the sampled container
// width. Returns true when the column count changed.
func (e *Engine) refreshGeometry() bool {
	width, _ := e.host.ViewportSize()
	columns := int(width / e.opts.ColumnExtent)
	if columns < 1 {
		columns = 1
	}
	changed := columns != e.geom.ColumnCount
	e.geom.ColumnCount = columns
	e.geom.LeadingExtent = float64(grid.LeadingRowCount(len(e.leading), columns)) * e.opts.LeadingRowExtent
	return changed
}

// relayout recomputes every position under the current geometry.
func (e *Engine) relayout() {
	start := scheduler.Now()
	e.layout = grid.Compute(e.items, e.geom.ColumnCount, e.wide)
	e.stats.Relayouts++
	e.stats.LastRelayout = scheduler.Now().Sub(start)
	if len(e.items) == 0 && len(e.leading) == 0 {
		e.phase = PhaseEmpty
		return
	}
	e.phase = PhaseLaidOut
}

// relayoutForResize runs as the coalesced resize task: one geometry
// recompute per tick, with a full pool flush only when the column count
// actually changed.
func (e *Engine) relayoutForResize() {
	if e.refreshGeometry() {
		e.pool.Flush()
		e.relayout()
	}
	e.reconcile()
}

// relayoutForDiscovery runs as the coalesced discovery task: capture the
// scroll position, flush, relayout with the grown wide set, restore the
// position, reconcile. The whole sequence happens within one Step, so
// observers never see a half-updated grid.
func (e *Engine) relayoutForDiscovery() {
	captured := e.host.ScrollOffset()
	e.pool.Flush()
	e.relayout()
	e.host.SetScrollOffset(captured)
	e.reconcile()
}

// reconcile syncs the pool to the rows near the sampled scroll offset.
func (e *Engine) reconcile() {
	if e.phase == PhaseEmpty {
		return
	}
	start := scheduler.Now()

	offset := e.host.ScrollOffset()
	_, height := e.host.ViewportSize()
	first, last := viewport.VisibleRows(
		offset, height, e.geom.LeadingExtent, e.geom.RowExtent,
		e.layout.RowCount, e.opts.BufferRows,
	)

	visible := make(map[string]pool.Target)
	leadingPositions := grid.LeadingPositions(len(e.leading), e.geom.ColumnCount)
	for i, lead := range e.leading {
		// Leading items are few and always materialized.
		visible[lead.Key] = pool.Target{
			Kind:     pool.KindLeading,
			Item:     grid.Item{Key: lead.Key},
			Position: leadingPositions[i],
		}
	}
	for row := first; row < last; row++ {
		for _, index := range e.layout.Rows[row] {
			item := e.items[index]
			visible[item.Key] = pool.Target{
				Kind:     pool.KindPrimary,
				Item:     item,
				Position: e.layout.Positions[index],
			}
		}
	}

	mounted, unmounted := e.pool.Reconcile(visible)
	e.stats.Mounts += len(mounted)
	e.stats.Unmounts += len(unmounted)
	e.stats.Reconciles++
	e.stats.LastReconcile = scheduler.Now().Sub(start)
	e.phase = PhaseRendering
}
