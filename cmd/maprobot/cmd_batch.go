package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maprobot/gridmap"
	"github.com/katalvlaran/maprobot/internal/logger"
	"github.com/katalvlaran/maprobot/pathfind"
)

// queryEntry is one item of a batch file:
//
//   - start: [5, 5]
//     goal: [13, 5]
type queryEntry struct {
	Start []int `yaml:"start" validate:"len=2"`
	Goal  []int `yaml:"goal" validate:"len=2"`
}

var queryValidate = validator.New()

// loadQueries reads and validates a YAML batch file.
func loadQueries(path string) ([]pathfind.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []queryEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	queries := make([]pathfind.Query, len(entries))
	for i, e := range entries {
		if err := queryValidate.Struct(e); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
		queries[i] = pathfind.Query{
			Start: gridmap.Pt(e.Start[0], e.Start[1]),
			Goal:  gridmap.Pt(e.Goal[0], e.Goal[1]),
		}
	}
	return queries, nil
}

func (a *app) newBatchCmd() *cobra.Command {
	var queriesPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch --queries FILE",
		Short: "Answer a YAML list of start/goal pairs concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Search.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			queries, err := loadQueries(queriesPath)
			if err != nil {
				return err
			}
			g, err := a.loadGrid()
			if err != nil {
				return err
			}

			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()

			began := time.Now()
			results, err := pathfind.FindAll(ctx, g, queries, a.cfg.Search.Workers,
				pathfind.WithMaxExpansions(a.cfg.Search.MaxExpansions),
			)
			if err != nil {
				return err
			}
			logger.Info("batch finished",
				zap.Int("queries", len(queries)),
				zap.Duration("elapsed", time.Since(began)),
			)

			for i, res := range results {
				q := queries[i]
				var line string
				if res.Reached {
					line = fmt.Sprintf("%d: %v -> %v: %d hops", i, q.Start, q.Goal, res.Path.Hops())
				} else {
					line = fmt.Sprintf("%d: %v -> %v: unreachable", i, q.Start, q.Goal)
				}
				if _, err := fmt.Fprintln(a.out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&queriesPath, "queries", "q", "", "YAML file of start/goal pairs")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent searches (0 = one per CPU)")
	_ = cmd.MarkFlagRequired("queries")
	return cmd
}
