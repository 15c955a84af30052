package flowview

// itemWindow holds the materialized items of a carousel, keyed by adapter
// position, plus their stacking order. The window covers exactly the indices
// [mid-sibling, mid+sibling]; in non-loop mode slots whose raw index falls
// outside the adapter range stay empty.
//
// The stack lists adapter positions bottom to top. After a rebuild the center
// item is on top with stacking order decreasing outward; single-slot shifts
// preserve that by inserting the incoming edge at the bottom and re-raising
// the new center.
type itemWindow struct {
	adapter Adapter
	sibling int
	loop    bool

	items map[int]Item
	stack []int
}

func newItemWindow(sibling int) *itemWindow {
	return &itemWindow{
		sibling: sibling,
		items:   make(map[int]Item),
	}
}

// size returns the number of materialized items.
func (w *itemWindow) size() int {
	return len(w.items)
}

// item returns the materialized item for an adapter position, or nil.
func (w *itemWindow) item(position int) Item {
	return w.items[position]
}

// clear drops all items.
func (w *itemWindow) clear() {
	w.items = make(map[int]Item)
	w.stack = w.stack[:0]
}

// acquire materializes the item for an adapter position, passing the vacated
// item (or the previous handle for that position) as the reuse hint.
func (w *itemWindow) acquire(position int, reuse Item) Item {
	if reuse == nil {
		reuse = w.items[position]
	}
	item := w.adapter.Item(position, reuse)
	w.items[position] = item
	return item
}

// release removes an adapter position from the window and returns its item as
// a reuse hint for the next acquire.
func (w *itemWindow) release(position int) Item {
	item, ok := w.items[position]
	if !ok {
		return nil
	}
	delete(w.items, position)
	for i, p := range w.stack {
		if p == position {
			w.stack = append(w.stack[:i], w.stack[i+1:]...)
			break
		}
	}
	return item
}

// raise moves an adapter position to the top of the stack.
func (w *itemWindow) raise(position int) {
	for i, p := range w.stack {
		if p == position {
			w.stack = append(w.stack[:i], w.stack[i+1:]...)
			w.stack = append(w.stack, p)
			return
		}
	}
}

// rebuild discards the window and re-acquires every slot of the window around
// midIndex. Old items are kept in a scratch map and offered as reuse hints
// when their position reappears.
func (w *itemWindow) rebuild(midIndex int) {
	count := w.adapter.Count()
	old := w.items
	w.items = make(map[int]Item, 2*w.sibling+1)
	w.stack = w.stack[:0]

	// Left half and center stack ascending so the center ends on top. The
	// right half slides beneath, one slot at a time, so stacking order falls
	// off outward on both sides.
	for j := midIndex - w.sibling; j <= midIndex+w.sibling; j++ {
		if !w.loop && (j+w.sibling < 0 || j+w.sibling >= count) {
			continue
		}
		position := actualPosition(j, w.sibling, count)
		item := w.adapter.Item(position, old[position])
		w.items[position] = item
		if j <= midIndex {
			w.stack = append(w.stack, position)
		} else {
			w.stack = append([]int{position}, w.stack...)
		}
	}
}

// shiftRight patches the window after the offset crossed one index to the
// right: the leftmost item leaves, the incoming rightmost item (if available)
// enters at the bottom of the stack, and the new center is raised to the top.
func (w *itemWindow) shiftRight(lastMid int) {
	count := w.adapter.Count()
	mid := lastMid + 1

	reuse := w.release(actualPosition(lastMid-w.sibling, w.sibling, count))

	if w.loop || mid <= count-2*w.sibling-1 {
		position := actualPosition(mid+w.sibling, w.sibling, count)
		w.acquire(position, reuse)
		// Incoming edge item starts at the bottom of the stack.
		w.stack = append([]int{position}, w.stack...)
	}

	w.raise(actualPosition(mid, w.sibling, count))
}

// shiftLeft is the mirror of shiftRight for a one-index crossing to the left.
func (w *itemWindow) shiftLeft(lastMid int) {
	count := w.adapter.Count()
	mid := lastMid - 1

	reuse := w.release(actualPosition(lastMid+w.sibling, w.sibling, count))

	if w.loop || mid >= 0 {
		position := actualPosition(mid-w.sibling, w.sibling, count)
		w.acquire(position, reuse)
		w.stack = append([]int{position}, w.stack...)
	}

	w.raise(actualPosition(mid, w.sibling, count))
}
