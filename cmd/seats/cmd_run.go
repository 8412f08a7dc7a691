package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"seat-ca/internal/textio"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [layout-file]",
		Short: "Evolve a layout to its fixed point and print the occupied seat count",
		Long: `Reads a layout (from the file argument, or stdin) and ticks it until no
seat changes. Prints the number of occupied seats in the final layout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			grid, err := loadGrid(cmd, args)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, logger)
			if err != nil {
				return err
			}

			res, err := engine.Run(cmd.Context(), grid)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printGrid, _ := cmd.Flags().GetBool("print-grid")
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				payload := map[string]any{
					"strategy":  engine.Strategy().String(),
					"threshold": engine.Threshold(),
					"ticks":     res.Ticks,
					"occupied":  res.Occupied,
				}
				if printGrid {
					payload["grid"] = res.Grid.Lines()
				}
				return json.NewEncoder(out).Encode(payload)
			}

			if printGrid {
				if err := textio.WriteLines(out, res.Grid.Lines()); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, res.Occupied)
			return nil
		},
	}
	addRuleFlags(cmd)
	cmd.Flags().Bool("print-grid", false, "print the final layout before the count")
	return cmd
}
