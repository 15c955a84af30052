package flowview

import (
	"math"
	"time"
)

const (
	// settleFriction is the deceleration applied to a fling, in items per
	// second squared.
	settleFriction = 10.0

	// smoothScrollDuration is how long a programmatic one-or-more-item scroll
	// takes.
	smoothScrollDuration = 300 * time.Millisecond

	// defaultEdgeScale is the scale falloff per item of distance when no
	// ratio was configured.
	defaultEdgeScale = 0.25

	// maxEdgeScale is the falloff at ratio 1.
	maxEdgeScale = 0.8
)

// settleAnimation carries a fling to rest on the nearest item along its
// direction of travel.
type settleAnimation struct {
	start    float64
	speed    float64
	duration float64
	begin    time.Time
}

// startSettle starts (or restarts) a settle from the current offset with the
// given release speed, in items per second. The trajectory decelerates at
// constant friction; the landing point is the offset the fling would reach on
// its own, rounded to the nearest item, with the speed recomputed so travel
// ends exactly there.
func (c *CoverFlow) startSettle(speed float64) {
	c.cancelAnimations()

	start := c.offset
	delta := speed * speed / (2 * settleFriction)
	if speed < 0 {
		delta = -delta
	}
	target := math.Floor(start + delta + 0.5)

	adjusted := math.Sqrt(2 * settleFriction * math.Abs(target-start))
	if target < start {
		adjusted = -adjusted
	}

	c.settle = &settleAnimation{
		start:    start,
		speed:    adjusted,
		duration: math.Abs(adjusted) / settleFriction,
		begin:    c.scheduler.Now(),
	}
	c.setState(ScrollStateSettling)
	c.scheduleFrame(c.settleFrame)
}

// settleFrame advances the settle and reschedules itself until the trajectory
// runs out.
func (c *CoverFlow) settleFrame(now time.Time) {
	s := c.settle
	if s == nil {
		return
	}

	t := now.Sub(s.begin).Seconds()
	if t >= s.duration {
		c.finishSettle()
		return
	}

	traveled := math.Abs(s.speed)*t - settleFriction*t*t/2
	if s.speed < 0 {
		traveled = -traveled
	}
	c.setOffset(s.start + traveled)
	c.scheduleFrame(c.settleFrame)
}

// finishSettle snaps exactly onto the nearest item and comes to rest.
func (c *CoverFlow) finishSettle() {
	c.settle = nil
	c.frameCancel = nil
	c.setOffset(math.Floor(c.offset + 0.5))
	c.setState(ScrollStateIdle)
}

// smoothAnimation eases the offset to a fixed target.
type smoothAnimation struct {
	start  float64
	target float64
	begin  time.Time
}

// animateBy smoothly scrolls the offset by n items. It only starts from rest;
// in non-loop mode a target beyond either end is dropped rather than clamped
// mid-flight.
func (c *CoverFlow) animateBy(n int) {
	if c.state != ScrollStateIdle || n == 0 || c.adapter == nil {
		return
	}
	target := float64(c.mid() + n)
	if !c.loop {
		count := c.adapter.Count()
		if target < float64(-c.sibling) || target > float64(count-c.sibling-1) {
			return
		}
	}

	c.cancelAnimations()
	c.smooth = &smoothAnimation{
		start:  c.offset,
		target: target,
		begin:  c.scheduler.Now(),
	}
	c.setState(ScrollStateSettling)
	c.scheduleFrame(c.smoothFrame)
}

// smoothFrame advances the programmatic scroll and reschedules itself until
// the easing completes.
func (c *CoverFlow) smoothFrame(now time.Time) {
	s := c.smooth
	if s == nil {
		return
	}

	p := now.Sub(s.begin).Seconds() / smoothScrollDuration.Seconds()
	if p >= 1 {
		c.smooth = nil
		c.frameCancel = nil
		c.setOffset(s.target)
		c.setState(ScrollStateIdle)
		return
	}

	c.setOffset(s.start + (s.target-s.start)*easeInOut(p))
	c.scheduleFrame(c.smoothFrame)
}

// easeInOut accelerates through the first half of progress and decelerates
// through the second.
func easeInOut(p float64) float64 {
	return math.Cos((p+1)*math.Pi)/2 + 0.5
}

// scheduleFrame schedules the next animation frame, guarded by the current
// animation generation so a frame that was superseded while pending becomes a
// no-op.
func (c *CoverFlow) scheduleFrame(frame func(now time.Time)) {
	gen := c.animGen
	c.frameCancel = c.scheduler.ScheduleFrame(func(now time.Time) {
		if c.animGen != gen {
			return
		}
		frame(now)
	})
}

// cancelAnimations tears down any settle or smooth scroll in flight without
// snapping the offset.
func (c *CoverFlow) cancelAnimations() {
	c.animGen++
	if c.frameCancel != nil {
		c.frameCancel()
		c.frameCancel = nil
	}
	c.settle = nil
	c.smooth = nil
}
