package flowview

// Item is a primitive that can be placed in a carousel. Items report the cell
// size they would like to occupy at full scale.
type Item interface {
	Primitive

	// ItemSize returns the item's preferred width and height in cells.
	ItemSize() (width, height int)
}

// AdapterObserver receives change notifications from an Adapter.
type AdapterObserver interface {
	// DataChanged reports that the adapter's items changed in place.
	DataChanged()

	// DataInvalidated reports that the adapter's data is no longer valid.
	DataInvalidated()
}

// Adapter supplies items to a CoverFlow. Implementations typically embed
// [BaseAdapter] and only provide Count and Item.
type Adapter interface {
	// Count returns the number of items. It must be at least the carousel's
	// window size for as long as the adapter is attached.
	Count() int

	// Item materializes or refreshes the item at the given adapter position.
	// The reuse hint, if not nil, is an item vacated from another slot (or the
	// handle last produced for this position) which the adapter may recycle.
	Item(position int, reuse Item) Item

	// RegisterObserver subscribes an observer to change notifications.
	RegisterObserver(observer AdapterObserver)

	// UnregisterObserver removes a previously registered observer.
	UnregisterObserver(observer AdapterObserver)
}

// BaseAdapter provides observer registration and notification fan-out.
// Concrete adapters embed it and implement Count and Item.
type BaseAdapter struct {
	observers []AdapterObserver
}

// RegisterObserver implements [Adapter].
func (b *BaseAdapter) RegisterObserver(observer AdapterObserver) {
	for _, o := range b.observers {
		if o == observer {
			return
		}
	}
	b.observers = append(b.observers, observer)
}

// UnregisterObserver implements [Adapter].
func (b *BaseAdapter) UnregisterObserver(observer AdapterObserver) {
	for i, o := range b.observers {
		if o == observer {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// NotifyChanged tells all observers that the adapter's items changed.
func (b *BaseAdapter) NotifyChanged() {
	for _, o := range b.observers {
		o.DataChanged()
	}
}

// NotifyInvalidated tells all observers that the adapter's data is invalid.
func (b *BaseAdapter) NotifyInvalidated() {
	for _, o := range b.observers {
		o.DataInvalidated()
	}
}
