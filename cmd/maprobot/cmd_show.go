package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maprobot/render"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the parsed map and its dimensions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "Width: %d\nHeight: %d\n%s", g.Width(), g.Height(), render.Map(g))
			return err
		},
	}
}
