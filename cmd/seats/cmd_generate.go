package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seat-ca/internal/core"
	"seat-ca/internal/textio"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random layout",
		Long:  `Prints a random layout. The same seed and options always give the same layout.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, _ := cmd.Flags().GetInt("rows")
			cols, _ := cmd.Flags().GetInt("cols")
			seed, _ := cmd.Flags().GetInt64("seed")
			floor, _ := cmd.Flags().GetFloat64("floor")
			occupied, _ := cmd.Flags().GetFloat64("occupied")

			if rows <= 0 || cols <= 0 {
				return fmt.Errorf("rows and cols must be positive, got %dx%d", rows, cols)
			}
			if floor < 0 || floor > 1 || occupied < 0 || occupied > 1 {
				return fmt.Errorf("floor and occupied must be between 0 and 1")
			}

			g, err := core.RandomLayout(seed, core.LayoutOptions{
				Rows:           rows,
				Cols:           cols,
				FloorChance:    floor,
				OccupiedChance: occupied,
			})
			if err != nil {
				return err
			}
			return textio.WriteLines(cmd.OutOrStdout(), g.Lines())
		},
	}
	cmd.Flags().Int("rows", 10, "number of rows")
	cmd.Flags().Int("cols", 10, "number of columns")
	cmd.Flags().Int64("seed", 42, "random seed")
	cmd.Flags().Float64("floor", 0.2, "probability that a tile is floor")
	cmd.Flags().Float64("occupied", 0, "probability that a seat starts occupied")
	return cmd
}
