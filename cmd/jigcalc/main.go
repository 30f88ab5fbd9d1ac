package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jigcalc/pkg/drawing"
	"jigcalc/pkg/geometry"
	"jigcalc/pkg/params"
	"jigcalc/pkg/presets"
	"jigcalc/pkg/ui"
	"jigcalc/pkg/watcher"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	paramsPath := flag.String("params", "", "Load a geometry snapshot from a YAML file")
	presetName := flag.String("preset", "", "Start from a named preset")
	presetsPath := flag.String("presets", "", "Load extra presets from a YAML file")
	list := flag.Bool("list", false, "List available presets and exit")
	modeFlag := flag.String("mode", "", "Primary dimension mode (stack_reach, front_center, ett_taiwanese, ett_ht_tt)")
	asJSON := flag.Bool("json", false, "Print the setup sheet as JSON instead of opening the UI")
	svgPath := flag.String("svg", "", "Write a setup drawing to the given SVG file")
	watch := flag.Bool("watch", false, "Re-evaluate the params file whenever it changes")
	initPath := flag.String("init", "", "Write a template params file and exit")
	flag.Parse()

	if *help {
		fmt.Println("Usage: jigcalc [options]")
		fmt.Println("\nFrame jig setup calculator. Without options it opens the interactive UI.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("jigcalc version 0.1.0")
		os.Exit(0)
	}

	if *initPath != "" {
		if err := params.Save(*initPath, params.Template()); err != nil {
			fatal("writing template: %v", err)
		}
		fmt.Printf("Wrote template params to %s\n", *initPath)
		os.Exit(0)
	}

	ps, err := loadPresets(*presetsPath)
	if err != nil {
		fatal("loading presets: %v", err)
	}

	if *list {
		for _, p := range ps {
			fmt.Printf("%-24s %s\n", p.Name, p.Mode.Label())
		}
		os.Exit(0)
	}

	mode, p, err := resolveInput(ps, *paramsPath, *presetName, *modeFlag)
	if err != nil {
		fatal("%v", err)
	}

	oneShot := *asJSON || *svgPath != "" || *watch
	if !oneShot {
		m := ui.NewModel(ps, mode, p)
		prog := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := prog.Run(); err != nil {
			fatal("running calculator: %v", err)
		}
		return
	}

	emit := func() error {
		return emitSheet(mode, p, *asJSON, *svgPath)
	}
	if err := emit(); err != nil {
		fatal("%v", err)
	}

	if *watch {
		if *paramsPath == "" {
			fatal("-watch requires -params")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := watcher.Watch(ctx, *paramsPath, watcher.DefaultDebounce, func() {
			snap, err := params.Load(*paramsPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reloading %s: %v\n", *paramsPath, err)
				return
			}
			mode, p = snap.Mode, snap.Params
			if err := emit(); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		})
		if err != nil && ctx.Err() == nil {
			fatal("watching %s: %v", *paramsPath, err)
		}
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func loadPresets(extra string) ([]presets.Preset, error) {
	if extra != "" {
		return presets.LoadFile(extra)
	}
	return presets.Load()
}

// resolveInput builds the starting snapshot from the flags: a params file
// and a preset are mutually exclusive, and -mode overrides whichever mode
// the source carries.
func resolveInput(ps []presets.Preset, paramsPath, presetName, modeFlag string) (geometry.Mode, geometry.FrameParameters, error) {
	mode := geometry.ModeStackReach
	var p geometry.FrameParameters

	switch {
	case paramsPath != "" && presetName != "":
		return mode, p, fmt.Errorf("-params and -preset are mutually exclusive")
	case paramsPath != "":
		snap, err := params.Load(paramsPath)
		if err != nil {
			return mode, p, fmt.Errorf("loading %s: %w", paramsPath, err)
		}
		mode, p = snap.Mode, snap.Params
	case presetName != "":
		preset, ok := presets.Find(ps, presetName)
		if !ok {
			return mode, p, fmt.Errorf("unknown preset %q (use -list)", presetName)
		}
		mode, p = preset.Mode, preset.Params
	}

	if modeFlag != "" {
		m := geometry.Mode(modeFlag)
		if !m.IsValid() {
			return mode, p, fmt.Errorf("unknown mode %q", modeFlag)
		}
		mode = m
	}
	return mode, p, nil
}

func emitSheet(mode geometry.Mode, p geometry.FrameParameters, asJSON bool, svgPath string) error {
	issues := geometry.CheckParameters(mode, p)
	for _, issue := range issues.Issues {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", issue.Field.Label(), issue.Reason)
		p.Clear(issue.Field)
	}
	out := geometry.Evaluate(mode, p)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Print(ui.PlainSheet(mode, out))
	}

	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", svgPath, err)
		}
		defer f.Close()

		htLength := 0.0
		if p.HTLength != nil {
			htLength = *p.HTLength
		}
		if err := drawing.WriteSVG(f, mode, out, htLength); err != nil {
			return fmt.Errorf("drawing %s: %w", svgPath, err)
		}
	}
	return nil
}
