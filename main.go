package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"gridpath/config"
	"gridpath/core"
	"gridpath/export"
	"gridpath/grid"
	"gridpath/pathfinding"
	"gridpath/render"
	"gridpath/terminal"
	"gridpath/validation"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"
)

func main() {
	cfg := config.Default()
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		interactive = flag.Bool("i", false, "Animated TUI mode")
		validate    = flag.Bool("validate", false, "Validate the grid and the path before printing")
		help        = flag.Bool("help", false, "Show help")

		startFlag = flag.String("start", "", "Start cell as x,y (one-shot mode)")
		destFlag  = flag.String("dest", "", "Destination cell as x,y (one-shot mode)")

		format     = flag.String("format", cfg.Format, "Output format: ascii, ansi, json")
		outputFile = flag.String("o", "", "Output file (default: stdout)")
	)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Grid width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Grid height")
	flag.IntVar(&cfg.WallPercent, "walls", cfg.WallPercent, "Percentage of interior cells turned into walls")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	flag.BoolVar(&cfg.Accumulated, "accumulated", cfg.Accumulated, "Accumulate step costs along the path (textbook A*)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Finds a path between two cells of a random grid with A*.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # Ask for coordinates\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -seed 4 -start 1,1 -dest 8,8      # Print one search\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -start 1,1 -dest 8,8 -format json # Search as JSON\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i -width 40 -height 20           # Watch the search\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  GRIDPATH_WIDTH, GRIDPATH_HEIGHT, GRIDPATH_WALLS, GRIDPATH_SEED\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg.Format = *format
	switch {
	case *interactive:
		cfg.Mode = config.ModeTUI
	case *startFlag != "" || *destFlag != "":
		cfg.Mode = config.ModeOneShot
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cfg.Mode {
	case config.ModePrompt:
		session := terminal.NewSession(os.Stdin, os.Stdout, newFinder(cfg))
		session.SetCapabilities(render.DetectCapabilities())
		err = session.Run(ctx, cfg)
	case config.ModeTUI:
		err = runTUI(ctx, cfg, *startFlag, *destFlag)
	case config.ModeOneShot:
		var out io.Writer = os.Stdout
		if *outputFile != "" {
			f, ferr := os.Create(*outputFile)
			if ferr != nil {
				fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", ferr)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		err = runOneShot(ctx, cfg, *startFlag, *destFlag, *validate, out)
		if err == nil && *outputFile != "" {
			fmt.Fprintf(os.Stderr, "Successfully exported to %s\n", *outputFile)
		}
	}

	var invalid validationFailure
	switch {
	case errors.As(err, &invalid):
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2) // Exit with error code to indicate validation issues
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr)
		os.Exit(130) // interrupted
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFinder(cfg config.Config) *pathfinding.PathFinder {
	if cfg.Accumulated {
		return pathfinding.NewPathFinder(pathfinding.WithAccumulatedCost())
	}
	return pathfinding.NewPathFinder()
}

// validationFailure carries the problems found by -validate.
type validationFailure []validation.ValidationError

func (v validationFailure) Error() string {
	lines := make([]string, len(v))
	for i, e := range v {
		lines[i] = "Validation: " + e.Error()
	}
	return strings.Join(lines, "\n")
}

// runOneShot generates a grid, searches between the given cells and writes the
// result in the configured format.
func runOneShot(ctx context.Context, cfg config.Config, startArg, destArg string, validate bool, out io.Writer) error {
	exportFormat, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, export.GetAvailableFormats())
	}
	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		return err
	}

	g, err := grid.Generate(cfg.Width, cfg.Height, cfg.GridOptions()...)
	if err != nil {
		return fmt.Errorf("generating grid: %w", err)
	}
	if err := designate(g, startArg, destArg, nil); err != nil {
		return err
	}

	res, err := newFinder(cfg).Search(ctx, g)
	if err != nil {
		return err
	}
	g.MarkChecked(res.Checked)
	g.MarkPath(res.Path)

	if validate {
		problems := validation.NewGridValidator().Validate(g)
		problems = append(problems, validation.ValidatePath(g, res.Path)...)
		if len(problems) > 0 {
			return validationFailure(problems)
		}
	}

	output, err := exporter.Export(g, res)
	if err != nil {
		return fmt.Errorf("exporting result: %w", err)
	}
	_, err = io.WriteString(out, output)
	return err
}

// runTUI replays a search in the tcell viewer. Missing cells are picked at
// random among the floor cells.
func runTUI(ctx context.Context, cfg config.Config, startArg, destArg string) error {
	g, err := grid.Generate(cfg.Width, cfg.Height, cfg.GridOptions()...)
	if err != nil {
		return fmt.Errorf("generating grid: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := designate(g, startArg, destArg, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}
	return terminal.RunViewer(ctx, g, newFinder(cfg))
}

// designate sets start and destination from "x,y" arguments. Empty arguments
// are filled from rng when it is non-nil.
func designate(g *grid.Grid, startArg, destArg string, rng *rand.Rand) error {
	start, err := pickCell(g, "start", startArg, rng)
	if err != nil {
		return err
	}
	g.SetStart(start.X, start.Y)

	dest, err := pickCell(g, "destination", destArg, rng)
	if err != nil {
		return err
	}
	g.SetDestination(dest.X, dest.Y)
	return nil
}

func pickCell(g *grid.Grid, what, arg string, rng *rand.Rand) (core.Point, error) {
	if arg == "" {
		cells := g.AvailableCells()
		if rng == nil || len(cells) == 0 {
			return core.Point{}, fmt.Errorf("no %s cell given", what)
		}
		return cells[rng.Intn(len(cells))], nil
	}
	p, err := parsePoint(arg)
	if err != nil {
		return core.Point{}, fmt.Errorf("%s: %w", what, err)
	}
	if !g.IsAvailable(p.X, p.Y) {
		return core.Point{}, fmt.Errorf("%s %v is not an available cell", what, p)
	}
	return p, nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("expected x,y but got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, fmt.Errorf("column %q: %w", xs, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, fmt.Errorf("row %q: %w", ys, err)
	}
	return core.Point{X: x, Y: y}, nil
}
