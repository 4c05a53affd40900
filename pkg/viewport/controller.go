package viewport

// Controller stores the scroll offset and viewport extent for a scrollable
// grid and notifies listeners when either changes.
//
// The engine samples scroll state rather than receiving pushes, so the
// Controller is owned by the visual layer: it applies user input here and
// forwards change notifications to the engine as scroll events. Offsets are
// always clamped to the extents; there is no overscroll.
type Controller struct {
	offset         float64
	min            float64
	max            float64
	viewportExtent float64
	listeners      map[int]func()
	nextListenerID int
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() float64 {
	return c.offset
}

// ViewportExtent returns the current viewport extent.
func (c *Controller) ViewportExtent() float64 {
	return c.viewportExtent
}

// JumpTo moves to a new offset, clamped to the extents.
func (c *Controller) JumpTo(offset float64) {
	clamped := c.clamp(offset)
	if clamped == c.offset {
		return
	}
	c.offset = clamped
	c.notifyListeners()
}

// ScrollBy applies a relative offset change, clamped to the extents.
func (c *Controller) ScrollBy(delta float64) {
	c.JumpTo(c.offset + delta)
}

// SetExtents updates the scrollable range and re-clamps the current offset.
func (c *Controller) SetExtents(min, max float64) {
	if max < min {
		max = min
	}
	c.min = min
	c.max = max
	clamped := c.clamp(c.offset)
	if clamped != c.offset {
		c.offset = clamped
		c.notifyListeners()
	}
}

// SetViewportExtent records the viewport size, notifying listeners on change.
func (c *Controller) SetViewportExtent(extent float64) {
	if extent == c.viewportExtent {
		return
	}
	c.viewportExtent = extent
	c.notifyListeners()
}

// AddListener registers a callback for scroll changes. The returned func
// removes the listener.
func (c *Controller) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) clamp(offset float64) float64 {
	if offset < c.min {
		return c.min
	}
	if offset > c.max {
		return c.max
	}
	return offset
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
