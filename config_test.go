package flowview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptionsMissingFileReturnsDefaults(t *testing.T) {
	options, err := LoadOptions(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	defaults := DefaultOptions()
	if options.VisibleCount != defaults.VisibleCount || options.Loop != defaults.Loop {
		t.Errorf("options = %+v, want defaults %+v", options, defaults)
	}
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowview.toml")
	content := `
visible_count = 5
loop = false
edge_scale_ratio = 0.5
gravity = "bottom"
layout_mode = "match-parent"
tap_to_switch = false
next_keys = ["right", "ctrl+n"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	options, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if options.VisibleCount != 5 {
		t.Errorf("VisibleCount = %d, want 5", options.VisibleCount)
	}
	if options.Loop {
		t.Error("Loop = true, want false")
	}
	if options.EdgeScaleRatio != 0.5 {
		t.Errorf("EdgeScaleRatio = %v, want 0.5", options.EdgeScaleRatio)
	}
	if options.Gravity != "bottom" {
		t.Errorf("Gravity = %q, want bottom", options.Gravity)
	}
	if len(options.NextKeys) != 2 || options.NextKeys[0] != "right" {
		t.Errorf("NextKeys = %v, want [right ctrl+n]", options.NextKeys)
	}
	// Fields absent from the file keep their defaults.
	if len(options.PrevKeys) != 2 {
		t.Errorf("PrevKeys = %v, want defaults", options.PrevKeys)
	}
}

func TestLoadOptionsRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowview.toml")
	if err := os.WriteFile(path, []byte("visible_count = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Fatal("expected validation error for even visible_count")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		ok     bool
	}{
		{"defaults", func(o *Options) {}, true},
		{"even visible count", func(o *Options) { o.VisibleCount = 4 }, false},
		{"visible count too small", func(o *Options) { o.VisibleCount = 1 }, false},
		{"ratio above one", func(o *Options) { o.EdgeScaleRatio = 1.5 }, false},
		{"negative ratio selects default", func(o *Options) { o.EdgeScaleRatio = -1 }, true},
		{"unknown gravity", func(o *Options) { o.Gravity = "sideways" }, false},
		{"unknown layout mode", func(o *Options) { o.LayoutMode = "fill" }, false},
		{"match parent", func(o *Options) { o.LayoutMode = "match-parent" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultOptions()
			tt.mutate(&options)
			err := options.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate did not fail")
			}
		})
	}
}

func TestSetOptionsAppliesKeybinds(t *testing.T) {
	c, _, _ := newTestCoverFlow(t, 10)
	options := DefaultOptions()
	options.VisibleCount = 5
	options.NextKeys = []string{"ctrl+n"}
	options.PrevKeys = []string{"ctrl+p"}

	if err := c.SetOptions(options); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}
	if c.sibling != 2 {
		t.Errorf("sibling = %d, want 2", c.sibling)
	}
	if got := c.nextKeys.Keys(); len(got) != 1 || got[0] != "ctrl+n" {
		t.Errorf("next keys = %v, want [ctrl+n]", got)
	}
}

func TestEdgeScaleFromRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"negative selects default", -1, 0.25},
		{"zero", 0, 0},
		{"half", 0.5, 0.4},
		{"full", 1, 0.8},
		{"above one clamps", 3, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := edgeScaleFromRatio(tt.ratio); got != tt.want {
				t.Errorf("edgeScaleFromRatio(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}
