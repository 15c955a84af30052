package flowview

import "math"

// Gravity controls where items sit vertically inside the carousel.
type Gravity int

const (
	GravityCenterVertical Gravity = iota
	GravityTop
	GravityBottom
)

// LayoutMode controls how the carousel measures its items vertically.
type LayoutMode int

const (
	// LayoutWrapContent sizes items to their preferred height, capped by the
	// carousel's inner height.
	LayoutWrapContent LayoutMode = iota
	// LayoutMatchParent stretches items to fill the carousel's inner height.
	LayoutMatchParent
)

// Transform describes how a single item is placed and rendered for a given
// distance from the carousel's offset.
type Transform struct {
	// Scale is the size multiplier applied to the item's measured size.
	Scale float64
	// X is the horizontal position of the item's left edge, in cells,
	// relative to the carousel's inner rect.
	X float64
	// Alpha is the item's opacity in [0, 1].
	Alpha float64
}

// geometry computes per-item transforms for a carousel pass. All fields are
// plain inputs so transforms are pure and directly testable.
type geometry struct {
	width        int     // inner width of the carousel, in cells
	paddingLeft  int     // extra inset on the left edge
	paddingRight int     // extra inset on the right edge
	sibling      int     // items on each side of the center
	edgeScale    float64 // scale falloff per unit of distance
	itemWidth    float64 // measured width of an unscaled item, in cells
}

// standardAlpha is the opacity falloff per unit of distance, chosen so the
// outermost sibling lands near the dimmest visible level.
func (g geometry) standardAlpha() float64 {
	return float64(255-76) / float64(g.sibling)
}

// transform returns the placement of an item at distance d from the offset.
// Negative d is left of center, positive right. The center item (d == 0)
// renders at full scale and full opacity.
func (g geometry) transform(d float64) Transform {
	ad := math.Abs(d)

	scale := 1 - ad*g.edgeScale

	alpha := 254 - ad*g.standardAlpha()
	if alpha < 0 {
		alpha = 0
	} else if alpha > 254 {
		alpha = 254
	}
	alpha /= 254

	// The left and right halves of the control are subdivided into sibling
	// slots each; an item's distance selects its slot edge within its half.
	// Each half-space ends half an item short of the midline, so the center
	// item sits centered and x stays continuous as an item crosses d == 0.
	leftHalf := float64(g.width)/2 - float64(g.paddingLeft) - g.itemWidth/2
	rightHalf := float64(g.width)/2 - float64(g.paddingRight) - g.itemWidth/2
	var x float64
	if d <= 0 {
		x = (leftHalf/float64(g.sibling))*(float64(g.sibling)+d) + float64(g.paddingLeft)
	} else {
		x = float64(g.width) - (rightHalf/float64(g.sibling))*(float64(g.sibling)-d) - g.itemWidth*scale - float64(g.paddingRight)
	}

	return Transform{Scale: scale, X: x, Alpha: alpha}
}

// scaledCells converts a preferred cell size through a scale factor. Anything
// still visible occupies at least one cell.
func scaledCells(size int, scale float64) int {
	if scale <= 0 {
		return 0
	}
	cells := int(math.Floor(float64(size)*scale + 0.5))
	if cells < 1 {
		cells = 1
	}
	return cells
}

// verticalOffset returns the y inset of an item of the given height within the
// carousel's inner height, according to gravity.
func verticalOffset(gravity Gravity, innerHeight, itemHeight int) int {
	switch gravity {
	case GravityTop:
		return 0
	case GravityBottom:
		return innerHeight - itemHeight
	default:
		return (innerHeight - itemHeight) / 2
	}
}
