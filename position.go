package flowview

// actualPosition maps a carousel index to an adapter position. Index 0
// corresponds to adapter position sibling, so the leftmost item of the
// initial window sits at adapter position 0. The result is brought into
// [0, count) by true modulo, which is what makes looping work: indices keep
// growing (or shrinking) monotonically while positions wrap around.
//
// A non-positive count means no adapter is attached; the shifted index is
// returned as is.
func actualPosition(index, sibling, count int) int {
	p := index + sibling
	if count <= 0 {
		return p
	}
	for p < 0 {
		p += count
	}
	for p >= count {
		p -= count
	}
	return p
}
