package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/boergens/floatmgr/floatmgr"
	"github.com/boergens/floatmgr/layout"
)

// ParseError is a parse failure tagged with the source path and format,
// for a CLI to print without a Go-internal stack of wrapped errors.
type ParseError struct {
	Path    string
	Format  string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s file %q: %s", e.Format, e.Path, e.Message)
}

// Manifest is a single formatting context described in TOML: its writing
// mode and container size, plus the floats registered into it in order.
type Manifest struct {
	WritingMode string `toml:"writing_mode"`
	RTL         bool   `toml:"rtl"`
	// SampleText, when set and rtl is not already true, resolves the
	// paragraph direction via the Unicode bidi algorithm instead of
	// requiring the manifest author to know the script's direction.
	SampleText string `toml:"sample_text"`
	Container  struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"container"`
	Floats []ManifestFloat `toml:"float"`
}

// ManifestFloat is one [[float]] table: a margin box, physical side, and
// an optional shape-outside strategy.
type ManifestFloat struct {
	Side string  `toml:"side"` // "left" or "right"
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	W    float64 `toml:"width"`
	H    float64 `toml:"height"`

	Margin  [4]float64 `toml:"margin"`  // top, right, bottom, left
	Border  [4]float64 `toml:"border"`
	Padding [4]float64 `toml:"padding"`

	Shape ManifestShape `toml:"shape"`
}

// ManifestShape is the optional shape-outside payload; Kind == "" means
// the float uses its margin box verbatim.
type ManifestShape struct {
	Kind      string       `toml:"kind"` // box, inset, circle, ellipse, polygon, image
	Box       string       `toml:"box"`  // margin, border, padding, content
	Inset     [4]float64   `toml:"inset"`
	CenterX   float64      `toml:"center_x"`
	CenterY   float64      `toml:"center_y"`
	RX        float64      `toml:"rx"`
	RY        float64      `toml:"ry"`
	Vertices  [][2]float64 `toml:"vertices"`
	ImagePath string       `toml:"image_path"`
	Threshold float64      `toml:"threshold"`
}

// LoadManifest reads and parses a TOML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, &ParseError{Path: path, Format: "TOML", Message: err.Error()}
	}
	return &m, nil
}

// writingModeByName resolves the manifest's string writing mode name,
// defaulting to HorizontalTB for an empty or unrecognized value.
func writingModeByName(name string) layout.WritingMode {
	switch name {
	case "vertical-rl":
		return layout.VerticalRL
	case "vertical-lr":
		return layout.VerticalLR
	case "sideways-lr":
		return layout.SidewaysLR
	case "sideways-rl":
		return layout.SidewaysRL
	default:
		return layout.HorizontalTB
	}
}

// Build constructs a Manager from the manifest and registers every float
// in document order, in the manner a frame tree walk would. Image shapes
// referencing a path are decoded eagerly; a missing or undecodable image
// degrades to no shape rather than failing the whole manifest, matching
// AddFloat's own best-effort contract.
func (m *Manifest) Build() (*floatmgr.Manager, error) {
	wm := writingModeByName(m.WritingMode)
	size := layout.Size{Width: layout.Abs(m.Container.Width), Height: layout.Abs(m.Container.Height)}
	rtl := m.RTL
	if !rtl && m.SampleText != "" {
		rtl = DetectRTL(m.SampleText)
	}
	mgr := floatmgr.New(wm, rtl, size)

	for i, f := range m.Floats {
		side := floatmgr.SideLeft
		if f.Side == "right" {
			side = floatmgr.SideRight
		}
		rect := layout.PhysicalRect{X: layout.Abs(f.X), Y: layout.Abs(f.Y), Width: layout.Abs(f.W), Height: layout.Abs(f.H)}
		src := &manifestStyleSource{side: side, manifest: f}
		mgr.AddFloat(i, rect, src)
	}
	return mgr, nil
}
