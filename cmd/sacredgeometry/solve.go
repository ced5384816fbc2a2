package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/they4kman/experimentation/bruteforce/sacred-geometry/closure"
)

func newSolveCmd(opts *globalOptions) *cobra.Command {
	var target uint

	cmd := &cobra.Command{
		Use:   "solve --target T number...",
		Short: "find a formula combining the numbers into the target",
		Example: `  sacredgeometry solve --target 7 2 3 5 5
  7 = (2 * 3) + (5 / 5)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}

			engine, err := closure.NewWithParams(numbers, target, opts.engineParams())
			if err != nil {
				return err
			}

			logf := opts.logf(cmd)
			logf("%s", engine)

			if err := engine.Solve(); err != nil {
				return fmt.Errorf("%w (built %s expressions)", err, numPrinter.Sprintf("%d", engine.Len()))
			}
			logf("built %s expressions", numPrinter.Sprintf("%d", engine.Len()))

			if !engine.HasSolution() {
				fmt.Fprintf(cmd.OutOrStdout(), "no formula reaches %d from %v\n", target, numbers)
				return nil
			}

			expression, err := engine.RenderSolution()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d = %s\n", target, expression)
			return nil
		},
	}

	cmd.Flags().UintVarP(&target, "target", "t", 0, "Value the formula must equal")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
