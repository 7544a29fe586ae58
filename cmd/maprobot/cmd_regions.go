package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/maprobot/internal/logger"
)

func (a *app) newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List connected regions of open cells",
		Long: `Two cells share a region iff a path exists between them, so
regions tell up front which start/goal pairs can never succeed.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			regions := g.Regions()
			logger.Info("regions labelled", zap.Int("count", len(regions)))

			if _, err := fmt.Fprintf(a.out, "Regions: %d\n", len(regions)); err != nil {
				return err
			}
			for i, r := range regions {
				if _, err := fmt.Fprintf(a.out, "%d: %d cells from %v\n", i, len(r), r[0]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
