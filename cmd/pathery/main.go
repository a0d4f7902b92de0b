// Command pathery solves a Pathery map code and prints the board with its
// shortest route.
//
//	pathery -map '6.5.4.Testmap...:,s1.4,r3.,f1.'
//	pathery -file board.txt -view
//	echo '<map code>' | pathery -json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/internal/config"
	"github.com/katalvlaran/pathery/internal/logger"
	"github.com/katalvlaran/pathery/internal/viewer"
	"github.com/katalvlaran/pathery/pathfinder"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pathery:", err)
		os.Exit(1)
	}
}

type options struct {
	mapCode string
	file    string
	view    bool
	json    bool
	timeout time.Duration
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("pathery", flag.ContinueOnError)
	fs.StringVar(&o.mapCode, "map", "", "map code to solve")
	fs.StringVar(&o.file, "file", "", "file holding a map code")
	fs.BoolVar(&o.view, "view", false, "show the result in an interactive terminal view")
	fs.BoolVar(&o.json, "json", false, "print the route as JSON")
	fs.DurationVar(&o.timeout, "timeout", 0, "search deadline (overrides PATHERY_TIMEOUT)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.mapCode != "" && o.file != "" {
		return o, errors.New("-map and -file are mutually exclusive")
	}
	if o.view && o.json {
		return o, errors.New("-view and -json are mutually exclusive")
	}
	return o, nil
}

func readMapCode(o options, stdin io.Reader) (string, error) {
	switch {
	case o.mapCode != "":
		return o.mapCode, nil
	case o.file != "":
		b, err := os.ReadFile(o.file)
		return strings.TrimSpace(string(b)), err
	}
	b, err := io.ReadAll(stdin)
	return strings.TrimSpace(string(b)), err
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}
	log := logger.NewWithOutput(cfg.Log, os.Stderr)

	code, err := readMapCode(o, stdin)
	if err != nil {
		return err
	}
	mc, err := grid.ParseMapCode(code)
	if err != nil {
		return err
	}

	route, err := solve(ctx, mc.Grid, log, cfg)
	if err != nil {
		return err
	}

	switch {
	case o.view:
		return view(ctx, mc, route)
	case o.json:
		return json.NewEncoder(stdout).Encode(struct {
			Name        string          `json:"name"`
			Reachable   bool            `json:"reachable"`
			Length      int             `json:"length"`
			Path        []grid.Position `json:"path"`
			Teleporters []int           `json:"teleporters,omitempty"`
		}{mc.Name, route.Reachable(), len(route.Path), route.Path, route.Teleporters})
	}

	if mc.Name != "" {
		fmt.Fprintln(stdout, mc.Name)
	}
	fmt.Fprint(stdout, grid.Render(mc.Grid, route.Path))
	if route.Reachable() {
		fmt.Fprintf(stdout, "steps: %d\n", len(route.Path))
	} else {
		fmt.Fprintf(stdout, "unreachable (stage %d)\n", route.Blocked)
	}
	return nil
}

func solve(ctx context.Context, g *grid.Grid, log logrus.FieldLogger, cfg config.Config) (*pathfinder.Route, error) {
	pf, err := pathfinder.New(g, pathfinder.WithLogger(log))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	return pf.Solve(ctx)
}

func view(ctx context.Context, mc *grid.MapCode, route *pathfinder.Route) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return viewer.New(screen, mc.Grid, route, mc.Name).Run(ctx)
}
