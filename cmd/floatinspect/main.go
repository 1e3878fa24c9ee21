// Package main provides the CLI entry point for floatinspect.
//
// Usage:
//
//	floatinspect area --b-coord 0 --b-size 1000 manifest.toml
//	floatinspect check scenarios.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boergens/floatmgr/config"
	"github.com/boergens/floatmgr/floatmgr"
	"github.com/boergens/floatmgr/layout"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "area":
		err = runArea(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	case "version", "-v", "--version":
		printVersion()
		return
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`floatinspect - inspect float-manager flow areas

Usage:
  floatinspect area [-b-coord N] [-b-size N] <manifest.toml>
  floatinspect check <scenarios.yaml>
  floatinspect help
  floatinspect version

Commands:
  area    Build a manager from a manifest and print GetFlowArea for a band
  check   Run a YAML scenario set and report pass/fail per scenario`)
}

func printVersion() {
	fmt.Println("floatinspect version 0.1.0")
}

func runArea(args []string) error {
	fs := flag.NewFlagSet("area", flag.ExitOnError)
	bCoord := fs.Float64("b-coord", 0, "block-axis band start")
	bSize := fs.Float64("b-size", 0, "block-axis band size (0 means infinite)")
	within := fs.Bool("within-height", false, "use WidthWithinHeight band mode instead of BandFromPoint")
	shapeOutside := fs.Bool("shape-outside", false, "query shape-outside exclusions instead of margin boxes")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing manifest path")
	}

	manifest, err := config.LoadManifest(fs.Arg(0))
	if err != nil {
		return err
	}
	mgr, err := manifest.Build()
	if err != nil {
		return err
	}

	bandMode := pickBandMode(*within)
	shapeType := pickShapeType(*shapeOutside)
	size := layout.Abs(*bSize)
	if size == 0 {
		size = layout.Infinite()
	}

	contentArea := layout.LogicalRect{
		Width:  layout.Abs(manifest.Container.Width),
		Height: layout.Abs(manifest.Container.Height),
	}

	area := mgr.GetFlowArea(layout.Abs(*bCoord), size, bandMode, shapeType, contentArea, nil)
	fmt.Printf("inlineStart=%g inlineSize=%g blockStart=%g blockSize=%g hasFloats=%v\n",
		float64(area.InlineStart), float64(area.InlineSize), float64(area.BlockStart), float64(area.BlockSize), area.HasFloats)
	return nil
}

func runCheck(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing scenario set path")
	}
	set, err := config.LoadScenarioSet(args[0])
	if err != nil {
		return err
	}

	failures := 0
	for _, sc := range set.Scenarios {
		mgr, err := sc.Manifest.Build()
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", sc.Name, err)
			failures++
			continue
		}

		got := mgr.GetFlowArea(
			layout.Abs(sc.Query.BCoord), sc.BSize(),
			sc.BandMode(), sc.ShapeType(), sc.ContentArea(), nil,
		)

		want := sc.Expect
		ok := float64(got.InlineStart) == want.InlineStart &&
			float64(got.InlineSize) == want.InlineSize &&
			got.HasFloats == want.HasFloats &&
			got.BlockSize == sc.ExpectBlockSize()

		if ok {
			fmt.Printf("PASS %s\n", sc.Name)
		} else {
			fmt.Printf("FAIL %s: got inlineStart=%g inlineSize=%g blockSize=%g hasFloats=%v\n",
				sc.Name, float64(got.InlineStart), float64(got.InlineSize), float64(got.BlockSize), got.HasFloats)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failures, len(set.Scenarios))
	}
	return nil
}

func pickBandMode(within bool) floatmgr.BandMode {
	if within {
		return floatmgr.WidthWithinHeight
	}
	return floatmgr.BandFromPoint
}

func pickShapeType(shapeOutside bool) floatmgr.ShapeType {
	if shapeOutside {
		return floatmgr.ShapeTypeShapeOutside
	}
	return floatmgr.ShapeTypeMargin
}
