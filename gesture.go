package flowview

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// defaultDragSlop is the pointer displacement, in cells, beyond which a
	// press becomes a drag.
	defaultDragSlop = 3

	// longPressDelay is how long a press must hold still to count as a long
	// press on the centered item.
	longPressDelay = 600 * time.Millisecond

	// tapThreshold is the longest press-release span that still counts as a
	// tap.
	tapThreshold = 500 * time.Millisecond

	// velocityWindow is how far back release velocity looks at pointer
	// samples.
	velocityWindow = 100 * time.Millisecond

	// maxFlingSpeed caps the release velocity handed to the settle animation,
	// in items per second.
	maxFlingSpeed = 6.0
)

// velocitySample is one pointer observation for release velocity tracking.
type velocitySample struct {
	at time.Time
	x  int
}

// velocityTracker estimates pointer velocity from recent samples.
type velocityTracker struct {
	samples []velocitySample
}

func (t *velocityTracker) reset() {
	t.samples = t.samples[:0]
}

func (t *velocityTracker) add(at time.Time, x int) {
	t.samples = append(t.samples, velocitySample{at: at, x: x})
	// Drop history older than the window, always keeping two samples so a
	// stalled pointer still yields a velocity of zero rather than none.
	cutoff := at.Add(-velocityWindow)
	for len(t.samples) > 2 && t.samples[0].at.Before(cutoff) {
		t.samples = t.samples[1:]
	}
}

// velocity returns the pointer speed in cells per second over the recent
// window, or 0 when there is not enough history.
func (t *velocityTracker) velocity() float64 {
	if len(t.samples) < 2 {
		return 0
	}
	first := t.samples[0]
	last := t.samples[len(t.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(last.x-first.x) / dt
}

// pointerState tracks one press-move-release sequence.
type pointerState struct {
	active       bool
	startX       int
	startY       int
	startTime    time.Time
	startOffset  float64
	startDragPos float64
	moved        bool
	onTopItem    bool
	tracker      velocityTracker
}

// dragPosition converts a pointer x coordinate into drag space, where one
// unit corresponds to one item of offset. The mapping spans one and a half
// items across the control's width, matching the on-screen spacing of
// adjacent items.
func (c *CoverFlow) dragPosition(x int) float64 {
	innerX, _, innerWidth, _ := c.GetInnerRect()
	if innerWidth <= 0 {
		return 0
	}
	rel := float64(x-innerX) / float64(innerWidth)
	return (rel*3 - 5) / 2
}

// inTopRect reports whether a screen coordinate falls on the centered item.
func (c *CoverFlow) inTopRect(x, y int) bool {
	if !c.hasTopRect {
		return false
	}
	r := c.topRect
	return x >= r[0] && x < r[0]+r[2] && y >= r[1] && y < r[1]+r[3]
}

// pointerDown begins a press. A settle in flight is preempted and the drag
// takes over its offset immediately.
func (c *CoverFlow) pointerDown(x, y int, at time.Time) {
	if c.state == ScrollStateSettling {
		c.cancelAnimations()
		c.setState(ScrollStateDragging)
	}

	c.pointer = pointerState{
		active:       true,
		startX:       x,
		startY:       y,
		startTime:    at,
		startOffset:  c.offset,
		startDragPos: c.dragPosition(x),
		onTopItem:    c.inTopRect(x, y),
	}
	c.pointer.tracker.add(at, x)

	if c.pointer.onTopItem {
		c.longPressCancel = c.scheduler.ScheduleAfter(longPressDelay, func() {
			c.longPressCancel = nil
			if c.pointer.active && !c.pointer.moved {
				c.emitTopLongPressed()
			}
		})
	}
}

// pointerMove updates the offset from pointer motion. Crossing the slop on
// either axis commits the press to a drag, killing tap and long-press
// candidacy.
func (c *CoverFlow) pointerMove(x, y int, at time.Time) {
	if !c.pointer.active {
		return
	}

	c.pointer.tracker.add(at, x)

	if !c.pointer.moved {
		if abs(x-c.pointer.startX) > c.slop || abs(y-c.pointer.startY) > c.slop {
			c.pointer.moved = true
			c.cancelLongPress()
			c.setState(ScrollStateDragging)
		}
	}

	c.setOffset(c.pointer.startOffset + (c.pointer.startDragPos - c.dragPosition(x)))
}

// pointerUp ends a press: a quick still release on the centered item taps it,
// a quick still release beside it optionally scrolls one step toward that
// side, and everything else hands off to the settle animation (or goes
// straight to rest when the offset is already integral).
func (c *CoverFlow) pointerUp(x, y int, at time.Time) {
	if !c.pointer.active {
		return
	}
	c.cancelLongPress()
	c.pointer.active = false
	duration := at.Sub(c.pointer.startTime)

	if !c.pointer.moved && duration < tapThreshold {
		if c.pointer.onTopItem && c.inTopRect(x, y) {
			c.setState(ScrollStateIdle)
			c.emitTopTapped()
			return
		}
		if c.tapToSwitch && c.hasTopRect && c.InInnerRect(x, y) {
			if x < c.topRect[0] {
				c.setState(ScrollStateIdle)
				c.GoToPrevious()
				return
			}
			if x >= c.topRect[0]+c.topRect[2] {
				c.setState(ScrollStateIdle)
				c.GoToNext()
				return
			}
		}
	}

	c.pointer.tracker.add(at, x)
	if c.offset != math.Trunc(c.offset) {
		_, _, innerWidth, _ := c.GetInnerRect()
		speed := 0.0
		if innerWidth > 0 {
			speed = c.pointer.tracker.velocity() * 1.5 / float64(innerWidth)
		}
		if speed > maxFlingSpeed {
			speed = maxFlingSpeed
		} else if speed < -maxFlingSpeed {
			speed = -maxFlingSpeed
		}
		c.startSettle(-speed)
		return
	}

	c.setState(ScrollStateIdle)
}

// cancelTouch abandons any press in progress.
func (c *CoverFlow) cancelTouch() {
	c.cancelLongPress()
	c.pointer = pointerState{}
}

func (c *CoverFlow) cancelLongPress() {
	if c.longPressCancel != nil {
		c.longPressCancel()
		c.longPressCancel = nil
	}
}

// MouseHandler translates host mouse actions into the pointer pipeline.
// During a press the carousel captures the mouse so moves outside its rect
// still reach it.
func (c *CoverFlow) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	switch action {
	case MouseLeftDown:
		if !c.InRect(x, y) {
			return nil, nil
		}
		c.pointerDown(x, y, event.When())
		return c, BatchCommand{SetFocusCommand{Target: c}, RedrawCommand{}}
	case MouseMove:
		if !c.pointer.active {
			return nil, nil
		}
		c.pointerMove(x, y, event.When())
		return c, RedrawCommand{}
	case MouseLeftUp:
		if !c.pointer.active {
			return nil, nil
		}
		c.pointerUp(x, y, event.When())
		return nil, RedrawCommand{}
	}
	if c.pointer.active {
		return c, nil
	}
	return nil, nil
}
