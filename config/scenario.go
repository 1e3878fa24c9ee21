package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boergens/floatmgr/floatmgr"
	"github.com/boergens/floatmgr/layout"
)

// ScenarioSet is a batch of named regression scenarios loaded from YAML,
// each exercising GetFlowArea once against a manifest-shaped formatting
// context and asserting the expected result. Intended for the floatinspect
// "check" subcommand, not for the package's own tests (which construct
// Managers directly).
type ScenarioSet struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario names one manifest plus one flow-area query and its expected
// result.
type Scenario struct {
	Name     string   `yaml:"name"`
	Manifest Manifest `yaml:"manifest"`
	Query    struct {
		BCoord      float64    `yaml:"b_coord"`
		BSize       float64    `yaml:"b_size"`    // 0 means "infinite"
		BandMode    string     `yaml:"band_mode"` // "from-point" or "width-within-height"
		ShapeType   string     `yaml:"shape_type"` // "margin" or "shape-outside"
		ContentArea [4]float64 `yaml:"content_area"` // lineLeft, blockStart, width, height
	} `yaml:"query"`
	Expect struct {
		InlineStart float64 `yaml:"inline_start"`
		InlineSize  float64 `yaml:"inline_size"`
		BlockSize   float64 `yaml:"block_size"` // 0 means "infinite"
		HasFloats   bool    `yaml:"has_floats"`
	} `yaml:"expect"`
}

// LoadScenarioSet reads and parses a YAML scenario set from path.
func LoadScenarioSet(path string) (*ScenarioSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario set %s: %w", path, err)
	}
	var set ScenarioSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, &ParseError{Path: path, Format: "YAML", Message: err.Error()}
	}
	return &set, nil
}

// ContentArea converts the scenario's raw [lineLeft, blockStart, width,
// height] quad into a LogicalRect.
func (s *Scenario) ContentArea() layout.LogicalRect {
	q := s.Query.ContentArea
	return layout.LogicalRect{
		LineLeft:   layout.Abs(q[0]),
		BlockStart: layout.Abs(q[1]),
		Width:      layout.Abs(q[2]),
		Height:     layout.Abs(q[3]),
	}
}

// BSize returns the query's block size, treating 0 as layout.Infinite()
// since a finite zero-height band query is better expressed explicitly
// via WidthWithinHeight mode with a nonzero height.
func (s *Scenario) BSize() layout.Abs {
	if s.Query.BSize == 0 {
		return layout.Infinite()
	}
	return layout.Abs(s.Query.BSize)
}

// ExpectBlockSize mirrors BSize for the expected result.
func (s *Scenario) ExpectBlockSize() layout.Abs {
	if s.Expect.BlockSize == 0 {
		return layout.Infinite()
	}
	return layout.Abs(s.Expect.BlockSize)
}

// BandMode resolves the query's band_mode string, defaulting to
// BandFromPoint.
func (s *Scenario) BandMode() floatmgr.BandMode {
	if s.Query.BandMode == "width-within-height" {
		return floatmgr.WidthWithinHeight
	}
	return floatmgr.BandFromPoint
}

// ShapeType resolves the query's shape_type string, defaulting to
// ShapeTypeMargin.
func (s *Scenario) ShapeType() floatmgr.ShapeType {
	if s.Query.ShapeType == "shape-outside" {
		return floatmgr.ShapeTypeShapeOutside
	}
	return floatmgr.ShapeTypeMargin
}
