package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/maprobot/gridmap"
	"github.com/katalvlaran/maprobot/internal/config"
	"github.com/katalvlaran/maprobot/internal/logger"
)

// app carries state shared by every subcommand.
type app struct {
	out io.Writer
	cfg *config.Config

	// raw flag values, applied over the loaded config
	configPath string
	logLevel   string
	logFile    string
	mapPath    string
	width      int
	height     int
	noColor    bool
}

// newRootCmd builds the command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "maprobot",
		Short: "Find shortest paths on ASCII maps",
		Long: `maprobot reads a text map where '.' is open floor and every other
character is a wall, then finds fewest-step routes between cells.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: ./"+config.FileName+" or the user config dir)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFile, "log-file", "", "also write JSON logs to this file (rotated)")
	pf.StringVarP(&a.mapPath, "map", "m", "", "map file")
	pf.IntVar(&a.width, "width", 0, "map width (0 infers it from the file)")
	pf.IntVar(&a.height, "height", 0, "map height (0 infers it from the file)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.newFindCmd(),
		a.newShowCmd(),
		a.newRegionsCmd(),
		a.newBatchCmd(),
		a.newInitCmd(),
	)
	return root
}

// setup loads config with priority defaults < file < flags, validates it
// and initializes logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.LogFile = a.logFile
	}
	if flags.Changed("map") {
		cfg.Map.Path = a.mapPath
	}
	if flags.Changed("width") {
		cfg.Map.Width = a.width
	}
	if flags.Changed("height") {
		cfg.Map.Height = a.height
	}
	if a.noColor {
		cfg.Render.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg = cfg
	logger.Debug("config loaded", zap.Any("config", cfg))
	return nil
}

// loadGrid reads the configured map file.
func (a *app) loadGrid() (*gridmap.Grid, error) {
	if a.cfg.Map.Path == "" {
		return nil, fmt.Errorf("no map file: set --map or map.path in %s", config.FileName)
	}
	g, err := gridmap.LoadFile(a.cfg.Map.Path, a.cfg.Map.Width, a.cfg.Map.Height)
	if err != nil {
		return nil, err
	}
	logger.Info("map loaded",
		zap.String("path", a.cfg.Map.Path),
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
	)
	return g, nil
}

// colored reports whether output should carry terminal colors.
func (a *app) colored() bool {
	if !a.cfg.Render.Color {
		return false
	}
	f, ok := a.out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parsePoint parses "x,y" into a Point.
func parsePoint(s string) (gridmap.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return gridmap.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridmap.Point{}, fmt.Errorf("point %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridmap.Point{}, fmt.Errorf("point %q: bad y: %w", s, err)
	}
	return gridmap.Pt(x, y), nil
}
