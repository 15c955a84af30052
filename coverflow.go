package flowview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/flowview/keybind"
)

// ScrollState describes what is currently driving the carousel's offset.
type ScrollState int

const (
	// ScrollStateIdle means the offset is at rest.
	ScrollStateIdle ScrollState = iota
	// ScrollStateDragging means a pointer drag is writing the offset.
	ScrollStateDragging
	// ScrollStateSettling means an animation is writing the offset.
	ScrollStateSettling
)

func (s ScrollState) String() string {
	switch s {
	case ScrollStateDragging:
		return "dragging"
	case ScrollStateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// placement is one materialized item's resolved screen geometry for a draw
// pass. Placements are kept in stacking order, bottom to top.
type placement struct {
	position   int
	item       Item
	x, y, w, h int
	alpha      float64
}

// CoverFlow is a horizontally arranged carousel of adapter-backed items. The
// center item renders at full size and brightness; items to either side
// shrink and fade with distance. The carousel is driven by dragging it with
// the mouse, by flinging it and letting it settle, or programmatically via
// [CoverFlow.SetSelection], [CoverFlow.GoToPrevious] and
// [CoverFlow.GoToNext].
type CoverFlow struct {
	*Box

	adapter  Adapter
	observer *coverFlowObserver
	window   *itemWindow

	sibling      int
	visibleCount int
	loop         bool
	edgeScale    float64
	gravity      Gravity
	layoutMode   LayoutMode
	tapToSwitch  bool
	slop         int

	offset      float64
	lastMid     int
	topPos      int
	dataChanged bool
	state       ScrollState

	scheduler Scheduler

	pointer         pointerState
	longPressCancel CancelFunc

	settle      *settleAnimation
	smooth      *smoothAnimation
	frameCancel CancelFunc
	animGen     int

	placements []placement
	topRect    [4]int // x, y, w, h of the center item, screen coordinates
	hasTopRect bool

	prevKeys   keybind.Keybind
	nextKeys   keybind.Keybind
	selectKeys keybind.Keybind

	topChanged     func(position int, item Item)
	topTapped      func(position int, item Item)
	topLongPressed func(position int, item Item)
}

// NewCoverFlow returns a carousel with default options: three visible items,
// looping, quarter edge falloff, vertically centered, tap-to-switch enabled.
func NewCoverFlow() *CoverFlow {
	c := &CoverFlow{
		Box:       NewBox(),
		scheduler: timerScheduler{},
		topPos:    -1,
		slop:      defaultDragSlop,
	}
	c.applyDefaults()
	c.window = newItemWindow(c.sibling)
	c.window.loop = c.loop
	return c
}

func (c *CoverFlow) applyDefaults() {
	o := DefaultOptions()
	c.visibleCount = o.VisibleCount
	c.sibling = o.VisibleCount / 2
	c.loop = o.Loop
	c.edgeScale = edgeScaleFromRatio(o.EdgeScaleRatio)
	c.gravity = GravityCenterVertical
	c.layoutMode = LayoutWrapContent
	c.tapToSwitch = o.TapToSwitch
	c.prevKeys = keybind.NewKeybind(o.PrevKeys...)
	c.nextKeys = keybind.NewKeybind(o.NextKeys...)
	c.selectKeys = keybind.NewKeybind(o.SelectKeys...)
}

// SetOptions applies a validated option set. The carousel is reset as if the
// adapter were freshly attached.
func (c *CoverFlow) SetOptions(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if c.adapter != nil && c.adapter.Count() < o.VisibleCount {
		return fmt.Errorf("flowview: adapter has %d items, need at least %d", c.adapter.Count(), o.VisibleCount)
	}
	gravity, _ := parseGravity(o.Gravity)
	layoutMode, _ := parseLayoutMode(o.LayoutMode)

	c.stopAll()
	c.visibleCount = o.VisibleCount
	c.sibling = o.VisibleCount / 2
	c.loop = o.Loop
	c.edgeScale = edgeScaleFromRatio(o.EdgeScaleRatio)
	c.gravity = gravity
	c.layoutMode = layoutMode
	c.tapToSwitch = o.TapToSwitch
	c.prevKeys = keybind.NewKeybind(o.PrevKeys...)
	c.nextKeys = keybind.NewKeybind(o.NextKeys...)
	c.selectKeys = keybind.NewKeybind(o.SelectKeys...)
	c.window.sibling = c.sibling
	c.window.loop = c.loop
	c.resetPosition()
	return nil
}

// SetScheduler sets the scheduler driving this carousel's animations and
// timers. Pass the Application to run them on its event loop.
func (c *CoverFlow) SetScheduler(scheduler Scheduler) *CoverFlow {
	c.scheduler = scheduler
	return c
}

// windowSize returns the number of items the carousel needs from its adapter.
func (c *CoverFlow) windowSize() int {
	return 2*c.sibling + 1
}

// SetAdapter attaches an adapter, replacing any previous one. The offset
// resets to zero and the window is rebuilt on the next draw. An adapter with
// fewer items than the visible window is rejected.
func (c *CoverFlow) SetAdapter(adapter Adapter) error {
	if adapter != nil && adapter.Count() < c.windowSize() {
		return fmt.Errorf("flowview: adapter has %d items, need at least %d", adapter.Count(), c.windowSize())
	}

	c.stopAll()
	if c.adapter != nil && c.observer != nil {
		c.adapter.UnregisterObserver(c.observer)
	}
	c.adapter = adapter
	c.window.adapter = adapter
	c.window.clear()
	if adapter != nil {
		if c.observer == nil {
			c.observer = &coverFlowObserver{c: c}
		}
		adapter.RegisterObserver(c.observer)
	}
	c.resetPosition()
	return nil
}

// Adapter returns the attached adapter, or nil.
func (c *CoverFlow) Adapter() Adapter {
	return c.adapter
}

// SetLoop switches looping on or off. Changing it resets the carousel to
// adapter position zero.
func (c *CoverFlow) SetLoop(loop bool) *CoverFlow {
	if c.loop == loop {
		return c
	}
	c.stopAll()
	c.loop = loop
	c.window.loop = loop
	c.resetPosition()
	return c
}

// SetEdgeScaleRatio sets how quickly items shrink with distance from the
// center. The ratio is clamped into [0, 1] and maps onto a falloff of up to
// 0.8 per item of distance; a negative ratio selects the default falloff.
func (c *CoverFlow) SetEdgeScaleRatio(ratio float64) *CoverFlow {
	c.edgeScale = edgeScaleFromRatio(ratio)
	c.MarkDirty()
	return c
}

// SetTapToSwitch controls whether clicking a side item scrolls one step
// toward it.
func (c *CoverFlow) SetTapToSwitch(enabled bool) *CoverFlow {
	c.tapToSwitch = enabled
	return c
}

// SetGravity sets the vertical placement of items.
func (c *CoverFlow) SetGravity(gravity Gravity) *CoverFlow {
	if c.gravity != gravity {
		c.gravity = gravity
		c.MarkDirty()
	}
	return c
}

// SetLayoutMode sets how items are measured vertically.
func (c *CoverFlow) SetLayoutMode(mode LayoutMode) *CoverFlow {
	if c.layoutMode != mode {
		c.layoutMode = mode
		c.MarkDirty()
	}
	return c
}

// SetVisibleCount sets the number of simultaneously visible items. It must be
// odd and at least three. The carousel resets to adapter position zero.
func (c *CoverFlow) SetVisibleCount(count int) error {
	if count < 3 || count%2 == 0 {
		return fmt.Errorf("flowview: visible count must be odd and at least 3, got %d", count)
	}
	if c.adapter != nil && c.adapter.Count() < count {
		return fmt.Errorf("flowview: adapter has %d items, need at least %d", c.adapter.Count(), count)
	}
	c.stopAll()
	c.visibleCount = count
	c.sibling = count / 2
	c.window.sibling = c.sibling
	c.resetPosition()
	return nil
}

// SetTopChangedFunc sets a callback invoked when the centered item changes.
// It fires only when the offset comes to rest exactly on an item.
func (c *CoverFlow) SetTopChangedFunc(handler func(position int, item Item)) *CoverFlow {
	c.topChanged = handler
	return c
}

// SetTopTappedFunc sets a callback invoked when the centered item is tapped.
func (c *CoverFlow) SetTopTappedFunc(handler func(position int, item Item)) *CoverFlow {
	c.topTapped = handler
	return c
}

// SetTopLongPressedFunc sets a callback invoked when the centered item is
// pressed and held.
func (c *CoverFlow) SetTopLongPressedFunc(handler func(position int, item Item)) *CoverFlow {
	c.topLongPressed = handler
	return c
}

// ScrollState returns what is currently driving the offset.
func (c *CoverFlow) ScrollState() ScrollState {
	return c.state
}

// TopPosition returns the adapter position of the centered item, or -1 if no
// adapter is attached.
func (c *CoverFlow) TopPosition() int {
	if c.adapter == nil || c.adapter.Count() <= 0 {
		return -1
	}
	return actualPosition(c.mid(), c.sibling, c.adapter.Count())
}

// TopItem returns the centered item, or nil if it is not materialized.
func (c *CoverFlow) TopItem() Item {
	p := c.TopPosition()
	if p < 0 {
		return nil
	}
	return c.window.item(p)
}

// SetSelection moves the carousel to the given adapter position. With smooth
// set, the move animates from the current offset, in loop mode along the
// shorter direction around the ring; otherwise the carousel jumps there and
// rebuilds its window. Out of range positions are rejected, never clamped.
func (c *CoverFlow) SetSelection(position int, smooth bool) error {
	if c.adapter == nil {
		return fmt.Errorf("flowview: no adapter attached")
	}
	count := c.adapter.Count()
	if position < 0 || position >= count {
		return fmt.Errorf("flowview: selection %d out of range [0, %d)", position, count)
	}

	if smooth {
		delta := position - c.TopPosition()
		if c.loop {
			for _, candidate := range []int{delta + count, delta - count} {
				if abs(candidate) < abs(delta) {
					delta = candidate
				}
			}
		}
		if delta == 0 {
			return nil
		}
		c.animateBy(delta)
		return nil
	}

	c.stopAll()
	idx := position - c.sibling
	c.offset = float64(idx)
	c.lastMid = idx
	c.topPos = -1
	c.dataChanged = true
	c.MarkDirty()
	return nil
}

// GoToPrevious smoothly scrolls one item to the left.
func (c *CoverFlow) GoToPrevious() {
	c.animateBy(-1)
}

// GoToNext smoothly scrolls one item to the right.
func (c *CoverFlow) GoToNext() {
	c.animateBy(1)
}

// StopScroll halts any scrolling. A settle in progress snaps to the nearest
// item before stopping.
func (c *CoverFlow) StopScroll() {
	if c.state == ScrollStateSettling && c.settle != nil {
		c.setOffset(math.Floor(c.offset + 0.5))
	}
	c.cancelAnimations()
	c.setState(ScrollStateIdle)
}

// stopAll tears down gestures and animations without snapping.
func (c *CoverFlow) stopAll() {
	c.cancelTouch()
	c.cancelAnimations()
	c.setState(ScrollStateIdle)
}

// resetPosition returns the carousel to its initial offset and forces a full
// window rebuild on the next layout pass.
func (c *CoverFlow) resetPosition() {
	c.offset = 0
	c.lastMid = 0
	c.topPos = -1
	c.dataChanged = true
	c.MarkDirty()
}

// mid returns the index nearest the current offset.
func (c *CoverFlow) mid() int {
	return int(math.Floor(c.offset + 0.5))
}

// setOffset writes the offset through the carousel's range rule: loop mode is
// unrestricted, non-loop clamps so the window cannot run past either end.
func (c *CoverFlow) setOffset(offset float64) {
	if !c.loop && c.adapter != nil {
		count := c.adapter.Count()
		lo := float64(-c.sibling)
		hi := float64(count - c.sibling - 1)
		if offset < lo {
			offset = lo
		} else if offset > hi {
			offset = hi
		}
	}
	if c.offset != offset {
		c.offset = offset
		c.MarkDirty()
	}
}

func (c *CoverFlow) setState(state ScrollState) {
	if c.state == state {
		return
	}
	c.state = state
}

// layout recomputes the window and item placements for the current offset.
// It runs at the start of every draw and is independent of the screen, so
// offset and window behavior is fully exercisable without one.
func (c *CoverFlow) layout() {
	c.placements = c.placements[:0]
	c.hasTopRect = false

	if c.adapter == nil {
		return
	}
	count := c.adapter.Count()
	if count < c.windowSize() {
		// The adapter shrank below the window after attach. Draw nothing
		// rather than a partial ring.
		c.window.clear()
		return
	}

	mid := c.mid()

	// Window maintenance: a one-index crossing patches a single slot, any
	// larger move or a data change rebuilds the whole window.
	switch {
	case c.dataChanged || c.window.size() == 0:
		c.window.rebuild(mid)
		c.dataChanged = false
	case mid == c.lastMid+1:
		c.window.shiftRight(c.lastMid)
	case mid == c.lastMid-1:
		c.window.shiftLeft(c.lastMid)
	case mid != c.lastMid:
		c.window.rebuild(mid)
	}
	c.lastMid = mid

	innerX, innerY, innerWidth, innerHeight := c.GetInnerRect()
	if innerWidth <= 0 || innerHeight <= 0 {
		return
	}

	// Measure: the tallest preferred item height determines the row height,
	// capped by (or stretched to, in match-parent mode) the inner height.
	rowHeight := 0
	for _, p := range c.window.stack {
		if item := c.window.item(p); item != nil {
			_, h := item.ItemSize()
			if h > rowHeight {
				rowHeight = h
			}
		}
	}
	if c.layoutMode == LayoutMatchParent || rowHeight > innerHeight || rowHeight <= 0 {
		rowHeight = innerHeight
	}

	// Index of each windowed position, for distance computation.
	indexOf := make(map[int]int, c.windowSize())
	for idx := mid - c.sibling; idx <= mid+c.sibling; idx++ {
		indexOf[actualPosition(idx, c.sibling, count)] = idx
	}

	for _, position := range c.window.stack {
		item := c.window.item(position)
		if item == nil {
			continue
		}
		idx, ok := indexOf[position]
		if !ok {
			continue
		}

		iw, ih := item.ItemSize()
		if iw < 1 {
			iw = 1
		}
		if ih < 1 {
			ih = 1
		}
		baseHeight := rowHeight
		baseWidth := int(math.Floor(float64(iw)*float64(rowHeight)/float64(ih) + 0.5))
		if baseWidth < 1 {
			baseWidth = 1
		}

		g := geometry{
			width:     innerWidth,
			sibling:   c.sibling,
			edgeScale: c.edgeScale,
			itemWidth: float64(baseWidth),
		}
		t := g.transform(float64(idx) - c.offset)

		w := scaledCells(baseWidth, t.Scale)
		h := scaledCells(baseHeight, t.Scale)
		if w == 0 || h == 0 {
			continue
		}
		x := innerX + int(math.Floor(t.X+0.5))
		y := innerY + verticalOffset(c.gravity, innerHeight, h)

		c.placements = append(c.placements, placement{
			position: position,
			item:     item,
			x:        x,
			y:        y,
			w:        w,
			h:        h,
			alpha:    t.Alpha,
		})
		if idx == mid {
			c.topRect = [4]int{x, y, w, h}
			c.hasTopRect = true
		}
	}

	// Report the new top item, but only once the offset has come to rest
	// exactly on it.
	if c.offset == math.Trunc(c.offset) {
		top := actualPosition(mid, c.sibling, count)
		if top != c.topPos {
			c.topPos = top
			if c.topChanged != nil {
				c.topChanged(top, c.window.item(top))
			}
		}
	}
}

// Draw draws this primitive onto the screen.
func (c *CoverFlow) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	c.layout()
	for _, p := range c.placements {
		p.item.SetRect(p.x, p.y, p.w, p.h)
		p.item.Draw(newPaneScreen(screen, p.x, p.y, p.w, p.h, p.alpha))
	}
}

// SetNavigationKeys replaces the key bindings for scrolling left, scrolling
// right and tapping the centered item.
func (c *CoverFlow) SetNavigationKeys(prev, next, selectKeys []string) *CoverFlow {
	c.prevKeys = keybind.NewKeybind(prev...)
	c.nextKeys = keybind.NewKeybind(next...)
	c.selectKeys = keybind.NewKeybind(selectKeys...)
	return c
}

// InputHandler handles key events. By default left/h scroll one item left,
// right/l scroll one item right, and enter taps the centered item.
func (c *CoverFlow) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, c.prevKeys):
		c.GoToPrevious()
	case keybind.Matches(event, c.nextKeys):
		c.GoToNext()
	case keybind.Matches(event, c.selectKeys):
		c.emitTopTapped()
	default:
		return nil
	}
	return RedrawCommand{}
}

func (c *CoverFlow) emitTopTapped() {
	if c.topTapped != nil {
		if p := c.TopPosition(); p >= 0 {
			c.topTapped(p, c.window.item(p))
		}
	}
}

func (c *CoverFlow) emitTopLongPressed() {
	if c.topLongPressed != nil {
		if p := c.TopPosition(); p >= 0 {
			c.topLongPressed(p, c.window.item(p))
		}
	}
}

// coverFlowObserver relays adapter notifications into a full refresh.
type coverFlowObserver struct {
	c *CoverFlow
}

func (o *coverFlowObserver) DataChanged() {
	o.c.refresh()
}

func (o *coverFlowObserver) DataInvalidated() {
	o.c.refresh()
}

// refresh reacts to an adapter notification: everything stops and the window
// is rebuilt from offset zero on the next layout pass.
func (c *CoverFlow) refresh() {
	c.stopAll()
	c.window.clear()
	c.resetPosition()
}

func edgeScaleFromRatio(ratio float64) float64 {
	if ratio < 0 {
		return defaultEdgeScale
	}
	if ratio > 1 {
		ratio = 1
	}
	return maxEdgeScale * ratio
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var _ Primitive = &CoverFlow{}
