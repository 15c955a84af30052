package flowview

import (
	"math"

	"github.com/gdamore/tcell/v3"
)

// paneScreen restricts drawing to a rectangle and dims everything drawn
// through it according to an alpha level. Carousel items draw through one of
// these so a partially faded item cannot paint outside its slot and renders
// with a foreground from the theme's fade ramp instead of full brightness.
type paneScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
	alpha  float64
}

func newPaneScreen(screen tcell.Screen, x, y, width, height int, alpha float64) *paneScreen {
	return &paneScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		alpha:  alpha,
	}
}

func (s *paneScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

// fade maps the pane's alpha onto the theme's fade ramp. Full opacity leaves
// the style alone.
func (s *paneScreen) fade(style tcell.Style) tcell.Style {
	ramp := Styles.FadeRamp
	if s.alpha >= 1 || len(ramp) == 0 {
		return style
	}
	i := int(math.Floor((1 - s.alpha) * float64(len(ramp))))
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	if i <= 0 {
		return style
	}
	return style.Foreground(ramp[i])
}

func (s *paneScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, s.fade(style))
}

func (s *paneScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, s.fade(style))
}

func (s *paneScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *paneScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	style = s.fade(style)
	var state *stepState
	for len(str) > 0 {
		var cluster string
		cluster, str, state = step(str, state)
		width := state.Width()
		if width < 1 {
			width = 1
		}
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *paneScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}
