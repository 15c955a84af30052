package flowview

import (
	"math"
	"testing"
	"time"
)

func TestSettleLandsExactlyOnNearestItem(t *testing.T) {
	c, _, scheduler := newTestCoverFlow(t, 5)
	c.setOffset(2.3)

	c.startSettle(-1)

	if c.state != ScrollStateSettling {
		t.Fatalf("state = %v, want settling", c.state)
	}
	// delta = v*v/(2F) = 0.05 toward lower offsets; the trajectory targets
	// round(2.3 - 0.05) = 2.
	scheduler.advance(time.Second)

	if c.offset != 2 {
		t.Errorf("offset = %v, want exactly 2", c.offset)
	}
	if c.state != ScrollStateIdle {
		t.Errorf("state = %v, want idle", c.state)
	}
}

func TestSettleCarriesFlingAcrossItems(t *testing.T) {
	c, _, scheduler := newTestCoverFlow(t, 5)
	c.setOffset(0.2)

	// delta = 36/20 = 1.8; target = round(0.2 + 1.8) = 2.
	c.startSettle(6)
	scheduler.advance(2 * time.Second)
	c.layout()

	if c.offset != 2 {
		t.Errorf("offset = %v, want 2", c.offset)
	}
	if got := c.TopPosition(); got != 3 {
		t.Errorf("TopPosition() = %d, want 3", got)
	}
}

func TestSettleAdvancesMonotonically(t *testing.T) {
	c, _, scheduler := newTestCoverFlow(t, 5)
	c.startSettle(4)

	last := c.offset
	for i := 0; i < 30; i++ {
		scheduler.advance(frameInterval)
		if c.offset < last-1e-9 {
			t.Fatalf("offset went backwards: %v after %v", c.offset, last)
		}
		last = c.offset
	}
	scheduler.advance(time.Second)
	if c.offset != math.Trunc(c.offset) {
		t.Errorf("offset = %v, want integral at rest", c.offset)
	}
}

func TestCancelTearsDownWithoutSnapping(t *testing.T) {
	c, _, scheduler := newTestCoverFlow(t, 5)
	c.setOffset(1.4)
	c.startSettle(3)
	scheduler.advance(2 * frameInterval)
	mid := c.offset

	c.cancelAnimations()
	scheduler.advance(time.Second)

	if c.offset != mid {
		t.Errorf("offset moved from %v to %v after cancel", mid, c.offset)
	}
}

func TestStaleFrameAfterSupersessionIsNoOp(t *testing.T) {
	c, _, scheduler := newTestCoverFlow(t, 5)
	c.startSettle(3)

	// Supersede the settle before its first frame fires; the pending frame,
	// even if it were to run, belongs to a dead generation.
	c.cancelAnimations()
	c.setState(ScrollStateIdle)
	c.animateBy(1)
	scheduler.advance(time.Second)

	if c.offset != 1 {
		t.Errorf("offset = %v, want 1 from the superseding scroll", c.offset)
	}
	if c.state != ScrollStateIdle {
		t.Errorf("state = %v, want idle", c.state)
	}
}

func TestAnimateByOnlyStartsFromRest(t *testing.T) {
	c, _, scheduler := newTestCoverFlow(t, 5)
	c.startSettle(5)

	c.animateBy(1) // ignored while settling

	if c.smooth != nil {
		t.Fatal("smooth scroll started while settling")
	}
	scheduler.advance(2 * time.Second)
	if c.state != ScrollStateIdle {
		t.Errorf("state = %v, want idle", c.state)
	}
}

func TestSmoothScrollEasesToTarget(t *testing.T) {
	c, _, scheduler := newTestCoverFlow(t, 5)

	c.animateBy(2)
	if c.state != ScrollStateSettling {
		t.Fatalf("state = %v, want settling", c.state)
	}

	// Halfway through the ease has covered half the distance.
	scheduler.advance(smoothScrollDuration / 2)
	if math.Abs(c.offset-1) > 0.1 {
		t.Errorf("offset = %v at halfway, want about 1", c.offset)
	}

	scheduler.advance(smoothScrollDuration)
	if c.offset != 2 {
		t.Errorf("offset = %v, want exactly 2", c.offset)
	}
	if c.state != ScrollStateIdle {
		t.Errorf("state = %v, want idle", c.state)
	}
}

func TestEaseInOutEndpoints(t *testing.T) {
	if got := easeInOut(0); math.Abs(got) > 1e-9 {
		t.Errorf("easeInOut(0) = %v, want 0", got)
	}
	if got := easeInOut(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("easeInOut(1) = %v, want 1", got)
	}
	if got := easeInOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("easeInOut(0.5) = %v, want 0.5", got)
	}
}
