// Command composetest frames an image with optional annotations and writes
// the PNG export without opening a window.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"snapframe/internal/annotation"
	"snapframe/internal/app"
	"snapframe/internal/config"
	"snapframe/internal/export"
	"snapframe/internal/interaction"
	"snapframe/internal/presentation"
	"snapframe/pkg/colorutil"
)

func main() {
	input := flag.String("i", "", "Path to input image")
	annotations := flag.String("a", "", "Path to annotations JSON (optional)")
	padding := flag.Float64("padding", -1, "Padding in pixels (default from config)")
	radius := flag.Float64("radius", -1, "Corner radius in pixels (default from config)")
	shadow := flag.Float64("shadow", -1, "Shadow radius in pixels (default from config)")
	bg := flag.String("bg", "", "Background swatch name or #rrggbb")
	output := flag.String("o", export.DefaultFileName, "Output PNG path, - for stdout")
	var draws []drawOp
	flag.Func("draw", "Draw an element after loading annotations (repeatable): "+
		"rectangle:x1,y1,x2,y2 | arrow:x1,y1,x2,y2 | text:x,y[:content]", func(v string) error {
		op, err := parseDraw(v)
		if err != nil {
			return err
		}
		draws = append(draws, op)
		return nil
	})
	flag.Parse()

	if *input == "" {
		fmt.Println("Usage: composetest -i <image> [-a <annotations.json>] [-draw op]... [-padding N] [-radius N] [-shadow N] [-bg name|#rrggbb] [-o out.png|-]")
		os.Exit(1)
	}

	// Keep stdout clean when the PNG goes there.
	info := io.Writer(os.Stdout)
	if *output == "-" {
		info = os.Stderr
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
	}

	state := app.NewState(cfg.PresentationState())
	if err := state.LoadImageFile(*input); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	var bgErr error
	state.UpdatePresentation(func(p *presentation.State) {
		if *padding >= 0 {
			p.SetPadding(*padding)
		}
		if *radius >= 0 {
			p.SetCornerRadius(*radius)
		}
		if *shadow >= 0 {
			p.SetShadowRadius(*shadow)
		}
		if *bg != "" {
			bgErr = p.SetBackground(*bg)
		}
	})
	if bgErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", bgErr)
		os.Exit(1)
	}

	if *annotations != "" {
		data, err := os.ReadFile(*annotations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read annotations: %v\n", err)
			os.Exit(1)
		}
		var list annotation.List
		if err := json.Unmarshal(data, &list); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse annotations: %v\n", err)
			os.Exit(1)
		}
		state.Elements = list
	}

	ctrl := interaction.New(state)
	for _, op := range draws {
		op.apply(state, ctrl)
	}

	frame := state.FrameSize()
	bgColor := state.Presentation.Background
	fmt.Fprintf(info, "=== %s ===\n", state.Image.Name())
	fmt.Fprintf(info, "Image: %dx%d (%s)\n", state.Image.Width(), state.Image.Height(), state.Image.Format)
	fmt.Fprintf(info, "Frame: %.0fx%.0f, padding=%.0f radius=%.0f shadow=%.0f bg=%s (%s)\n",
		frame.Width, frame.Height,
		state.Presentation.Padding, state.Presentation.CornerRadius,
		state.Presentation.ShadowRadius, bgColor.Name, colorutil.Hex(bgColor.Color))
	fmt.Fprintf(info, "Annotations: %d\n", state.Elements.Len())

	ctx := context.Background()
	if *output == "-" {
		if _, err := export.New(state, nil, "").Save(ctx, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	exp := export.New(state, nil, filepath.Base(*output))
	path, err := exp.SaveFile(ctx, filepath.Dir(*output))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(info, "Wrote %s\n", path)
}
