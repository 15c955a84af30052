package flowview

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Options holds the tunable carousel settings. They map one to one onto the
// CoverFlow setters and can be loaded from a TOML file.
type Options struct {
	// VisibleCount is the number of simultaneously visible items. Must be odd
	// and at least 3.
	VisibleCount int `toml:"visible_count"`

	// Loop makes the carousel wrap around past either end.
	Loop bool `toml:"loop"`

	// EdgeScaleRatio in [0, 1] controls how quickly items shrink with
	// distance from the center. Negative selects the default falloff.
	EdgeScaleRatio float64 `toml:"edge_scale_ratio"`

	// Gravity is the vertical item placement: "top", "bottom" or "center".
	Gravity string `toml:"gravity"`

	// LayoutMode is the vertical measurement mode: "wrap-content" or
	// "match-parent".
	LayoutMode string `toml:"layout_mode"`

	// TapToSwitch makes clicking a side item scroll one step toward it.
	TapToSwitch bool `toml:"tap_to_switch"`

	// PrevKeys, NextKeys and SelectKeys are the key bindings for scrolling
	// left, scrolling right and tapping the centered item.
	PrevKeys   []string `toml:"prev_keys"`
	NextKeys   []string `toml:"next_keys"`
	SelectKeys []string `toml:"select_keys"`
}

// DefaultOptions returns the default carousel settings.
func DefaultOptions() Options {
	return Options{
		VisibleCount:   3,
		Loop:           true,
		EdgeScaleRatio: -1,
		Gravity:        "center",
		LayoutMode:     "wrap-content",
		TapToSwitch:    true,
		PrevKeys:       []string{"left", "h"},
		NextKeys:       []string{"right", "l"},
		SelectKeys:     []string{"enter"},
	}
}

// LoadOptions loads carousel settings from a TOML file. A missing file yields
// the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultOptions(), nil
		}
		return DefaultOptions(), fmt.Errorf("failed to read options file: %w", err)
	}

	options := DefaultOptions()
	if err := toml.Unmarshal(data, &options); err != nil {
		return DefaultOptions(), fmt.Errorf("failed to parse options file: %w", err)
	}

	if err := options.Validate(); err != nil {
		return DefaultOptions(), err
	}
	return options, nil
}

// Validate checks the options for configuration errors.
func (o Options) Validate() error {
	if o.VisibleCount < 3 || o.VisibleCount%2 == 0 {
		return fmt.Errorf("visible_count must be odd and at least 3, got %d", o.VisibleCount)
	}
	if o.EdgeScaleRatio > 1 {
		return fmt.Errorf("edge_scale_ratio must be at most 1, got %v", o.EdgeScaleRatio)
	}
	if _, ok := parseGravity(o.Gravity); !ok {
		return fmt.Errorf("unknown gravity %q", o.Gravity)
	}
	if _, ok := parseLayoutMode(o.LayoutMode); !ok {
		return fmt.Errorf("unknown layout_mode %q", o.LayoutMode)
	}
	return nil
}

func parseGravity(s string) (Gravity, bool) {
	switch s {
	case "", "center", "center-vertical":
		return GravityCenterVertical, true
	case "top":
		return GravityTop, true
	case "bottom":
		return GravityBottom, true
	}
	return GravityCenterVertical, false
}

func parseLayoutMode(s string) (LayoutMode, bool) {
	switch s {
	case "", "wrap-content":
		return LayoutWrapContent, true
	case "match-parent":
		return LayoutMatchParent, true
	}
	return LayoutWrapContent, false
}
