package flowview

import (
	"github.com/gdamore/tcell/v3"
)

// Card is a ready-made carousel item: a bordered box with a title and a
// word-wrapped body. Adapters that only need to show text can hand out Cards
// instead of writing their own Item.
type Card struct {
	*Box

	// The text displayed inside the card.
	text string

	// The card's text style.
	style tcell.Style

	// Preferred cell size at full scale.
	width, height int
}

// NewCard returns a card with the given title and body text.
func NewCard(title, text string) *Card {
	box := NewBox()
	box.SetBorders(BordersAll)
	box.SetTitle(title)
	c := &Card{
		Box:   box,
		text:  text,
		style: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
	}
	c.width, c.height = 24, 12
	return c
}

// SetText sets the card's body text.
func (c *Card) SetText(text string) *Card {
	if c.text != text {
		c.text = text
		c.MarkDirty()
	}
	return c
}

// GetText returns the card's body text.
func (c *Card) GetText() string {
	return c.text
}

// SetTextStyle sets the style of the body text.
func (c *Card) SetTextStyle(style tcell.Style) *Card {
	if c.style != style {
		c.style = style
		c.MarkDirty()
	}
	return c
}

// SetItemSize sets the card's preferred cell size at full scale.
func (c *Card) SetItemSize(width, height int) *Card {
	if c.width != width || c.height != height {
		c.width, c.height = width, height
		c.MarkDirty()
	}
	return c
}

// ItemSize implements [Item].
func (c *Card) ItemSize() (width, height int) {
	return c.width, c.height
}

// Draw draws this primitive onto the screen.
func (c *Card) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	for i, line := range WordWrap(c.text, width) {
		if i >= height {
			break
		}
		printWithStyle(screen, line, x, y+i, 0, width, AlignmentLeft, c.style, true)
	}
}

var _ Item = &Card{}
