package flowview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

type putCall struct {
	x, y  int
	str   string
	style tcell.Style
}

// recordScreen records Put calls; everything else of tcell.Screen is unused
// by the code under test.
type recordScreen struct {
	tcell.Screen
	puts []putCall
}

func (r *recordScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	r.puts = append(r.puts, putCall{x: x, y: y, str: str, style: style})
	return "", 1
}

func TestPaneScreenClips(t *testing.T) {
	record := &recordScreen{}
	pane := newPaneScreen(record, 10, 5, 4, 2, 1)

	pane.Put(10, 5, "a", tcell.StyleDefault) // top left corner
	pane.Put(13, 6, "b", tcell.StyleDefault) // bottom right corner
	pane.Put(9, 5, "x", tcell.StyleDefault)  // left of the pane
	pane.Put(14, 5, "x", tcell.StyleDefault) // right of the pane
	pane.Put(10, 7, "x", tcell.StyleDefault) // below the pane

	if len(record.puts) != 2 {
		t.Fatalf("puts = %d, want 2 in-bounds writes", len(record.puts))
	}
	if record.puts[0].str != "a" || record.puts[1].str != "b" {
		t.Errorf("recorded %q and %q, want a and b", record.puts[0].str, record.puts[1].str)
	}
}

func TestPaneScreenFadesForeground(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  tcell.Color
	}{
		{"opaque untouched", 1, color.Yellow},
		{"slight fade stays bright", 0.9, color.Yellow},
		{"half fade dims", 0.5, Styles.FadeRamp[2]},
		{"deep fade is dimmest", 0.05, Styles.FadeRamp[len(Styles.FadeRamp)-1]},
	}
	style := tcell.StyleDefault.Foreground(color.Yellow)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &recordScreen{}
			pane := newPaneScreen(record, 0, 0, 10, 10, tt.alpha)
			pane.Put(0, 0, "a", style)

			if len(record.puts) != 1 {
				t.Fatal("no write recorded")
			}
			if got := record.puts[0].style.GetForeground(); got != tt.want {
				t.Errorf("foreground = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaneScreenPutStrClipsPerCluster(t *testing.T) {
	record := &recordScreen{}
	pane := newPaneScreen(record, 0, 0, 3, 1, 1)

	pane.PutStr(0, 0, "hello")

	if len(record.puts) != 3 {
		t.Fatalf("puts = %d, want the 3 clusters that fit", len(record.puts))
	}
	for i, want := range []string{"h", "e", "l"} {
		if record.puts[i].str != want {
			t.Errorf("put %d = %q, want %q", i, record.puts[i].str, want)
		}
	}
}
