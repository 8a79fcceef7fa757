// Package terminal holds the console front ends: a line-based prompt session
// and an animated full-screen viewer.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"gridpath/config"
	"gridpath/core"
	"gridpath/grid"
	"gridpath/pathfinding"
	"gridpath/render"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrExit is returned when the user types "exit".
var ErrExit = errors.New("exit requested")

// Session runs the question-and-answer loop over a reader and a writer.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	finder *pathfinding.PathFinder
	caps   render.TerminalCapabilities

	lines    chan inputLine
	readOnce sync.Once
}

type inputLine struct {
	text string
	err  error
}

// NewSession creates a session. A nil finder uses the default path finder.
func NewSession(in io.Reader, out io.Writer, finder *pathfinding.PathFinder) *Session {
	if finder == nil {
		finder = pathfinding.NewPathFinder()
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		finder: finder,
		lines:  make(chan inputLine),
	}
}

// readLoop feeds input lines to the session until the reader is exhausted.
// A blocked read does not stop a cancelled prompt from returning.
func (s *Session) readLoop() {
	defer close(s.lines)
	for s.in.Scan() {
		s.lines <- inputLine{text: s.in.Text()}
	}
	if err := s.in.Err(); err != nil {
		s.lines <- inputLine{err: fmt.Errorf("reading input: %w", err)}
	}
}

// SetCapabilities enables colored boards when caps supports color.
func (s *Session) SetCapabilities(caps render.TerminalCapabilities) {
	s.caps = caps
}

func (s *Session) board(g *grid.Grid) string {
	return render.DrawColoredBoard(g, s.caps)
}

// ProcessInput handles the commands every prompt understands and returns
// the input unchanged otherwise.
func (s *Session) ProcessInput(input string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit":
		return input, ErrExit
	case "help":
		fmt.Fprint(s.out, render.Legend())
		fmt.Fprintln(s.out, "Commands\nType exit to close the application.")
	}
	return input, nil
}

// ReadLine prints the prompt and returns the next line of input after command
// handling. io.EOF is returned when input runs out and ctx.Err() as soon as
// ctx is done, even while waiting for the user.
func (s *Session) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprintln(s.out, prompt)
	}
	s.readOnce.Do(func() { go s.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", line.err
		}
		return s.ProcessInput(line.text)
	}
}

// ReadNumeric asks until the answer parses as an integer.
func (s *Session) ReadNumeric(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := s.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return n, nil
		}
	}
}

// ReadPoint asks for a column and a row until they name an available cell,
// redrawing the board before every attempt.
func (s *Session) ReadPoint(ctx context.Context, g *grid.Grid, what string) (core.Point, error) {
	for {
		fmt.Fprint(s.out, s.board(g))
		x, err := s.ReadNumeric(ctx, fmt.Sprintf("Please type the %s column number.", what))
		if err != nil {
			return core.Point{}, err
		}
		y, err := s.ReadNumeric(ctx, fmt.Sprintf("Please type the %s row number.", what))
		if err != nil {
			return core.Point{}, err
		}
		if g.IsAvailable(x, y) {
			return core.Point{X: x, Y: y}, nil
		}
	}
}

// Round designates start and destination on g from user input, searches and
// prints the outcome.
func (s *Session) Round(ctx context.Context, g *grid.Grid) (core.Path, error) {
	start, err := s.ReadPoint(ctx, g, "start")
	if err != nil {
		return core.Path{}, err
	}
	g.SetStart(start.X, start.Y)

	dest, err := s.ReadPoint(ctx, g, "destination")
	if err != nil {
		return core.Path{}, err
	}
	g.SetDestination(dest.X, dest.Y)

	fmt.Fprint(s.out, s.board(g))
	if _, err := s.ReadLine(ctx, "Press enter to start the pathfinding."); err != nil {
		return core.Path{}, err
	}

	path, err := s.finder.CalculatePath(ctx, g)
	if err != nil {
		return core.Path{}, err
	}
	if path.IsEmpty() {
		fmt.Fprintln(s.out, "No path found.")
	} else {
		g.MarkPath(path)
		fmt.Fprint(s.out, s.board(g))
	}
	return path, nil
}

// Run repeats rounds on freshly generated grids until the user types exit or
// input ends. A done ctx stops it at any prompt with ctx.Err().
func (s *Session) Run(ctx context.Context, cfg config.Config) error {
	for ctx.Err() == nil {
		if _, err := s.ProcessInput("help"); err != nil {
			return err
		}
		_, err := s.ReadLine(ctx, "Press enter to start.")
		if err == nil {
			err = s.round(ctx, cfg)
		}
		if err == nil {
			_, err = s.ReadLine(ctx, "")
		}
		switch {
		case errors.Is(err, ErrExit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
	return ctx.Err()
}

func (s *Session) round(ctx context.Context, cfg config.Config) error {
	g, err := grid.Generate(cfg.Width, cfg.Height, cfg.GridOptions()...)
	if err != nil {
		return fmt.Errorf("generating grid: %w", err)
	}
	_, err = s.Round(ctx, g)
	return err
}
