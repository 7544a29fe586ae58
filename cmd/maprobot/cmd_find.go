package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/maprobot/gridmap"
	"github.com/katalvlaran/maprobot/internal/logger"
	"github.com/katalvlaran/maprobot/pathfind"
	"github.com/katalvlaran/maprobot/render"
)

func (a *app) newFindCmd() *cobra.Command {
	var startFlag, goalFlag string
	var maxExpansions int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "find --start X,Y --goal X,Y",
		Short: "Find a shortest path and draw it on the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parsePoint(startFlag)
			if err != nil {
				return err
			}
			goal, err := parsePoint(goalFlag)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-expansions") {
				a.cfg.Search.MaxExpansions = maxExpansions
			}
			if cmd.Flags().Changed("timeout") {
				a.cfg.Search.Timeout = timeout
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runFind(cmd.Context(), start, goal)
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "start cell as x,y")
	cmd.Flags().StringVar(&goalFlag, "goal", "", "goal cell as x,y")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "abort after expanding this many cells (0 = no limit)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}

// searchContext applies the configured timeout to ctx.
func (a *app) searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Search.Timeout)
	}
	return context.WithCancel(ctx)
}

func (a *app) runFind(ctx context.Context, start, goal gridmap.Point) error {
	g, err := a.loadGrid()
	if err != nil {
		return err
	}
	ctx, cancel := a.searchContext(ctx)
	defer cancel()

	began := time.Now()
	res, err := pathfind.Find(g, start, goal,
		pathfind.WithContext(ctx),
		pathfind.WithMaxExpansions(a.cfg.Search.MaxExpansions),
	)
	if err != nil {
		return fmt.Errorf("find %v -> %v: %w", start, goal, err)
	}

	fields := []zap.Field{
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("expanded", res.Expanded),
		zap.Duration("elapsed", time.Since(began)),
	}
	if res.Reached {
		logger.Info("path found", append(fields, zap.Int("hops", res.Path.Hops()))...)
	} else {
		logger.Warn("goal unreachable", fields...)
	}

	return render.Report(a.out, g, start, goal, res.Path, a.colored())
}
