package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/they4kman/experimentation/bruteforce/sacred-geometry/spell"
)

func loadTiers(path string) (spell.Tiers, error) {
	if path == "" {
		return spell.DefaultTiers(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tiers, err := spell.LoadTiers(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return tiers, nil
}

func newCastCmd(opts *globalOptions) *cobra.Command {
	var (
		level     int
		dice      []uint
		ranks     int
		sides     int
		seed      int64
		tiersPath string
	)

	cmd := &cobra.Command{
		Use:   "cast --level L [--dice 2,3,5,5 | --ranks R]",
		Short: "roll dice and find a formula reaching one of a spell level's constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers, err := loadTiers(tiersPath)
			if err != nil {
				return err
			}

			if len(dice) == 0 {
				if ranks <= 0 {
					return fmt.Errorf("either --dice or a positive --ranks is required")
				}

				if cmd.Flags().Changed("seed") {
					dice = spell.RollDiceWithRand(ranks, sides, rand.New(rand.NewSource(seed)))
				} else {
					dice = spell.RollDice(ranks, sides)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled %s\n", DiceValue{&dice})
			}

			params := spell.DefaultCasterParams()
			params.Engine = *opts.engineParams()
			params.Logf = opts.logf(cmd)

			caster, err := spell.NewCaster(tiers, params)
			if err != nil {
				return err
			}

			result, err := caster.Cast(dice, level)
			if err != nil {
				return err
			}

			for _, target := range result.Exhausted {
				fmt.Fprintf(cmd.ErrOrStderr(), "gave up on %d after %s expressions\n", target, numPrinter.Sprintf("%d", opts.maxExpressions))
			}

			if !result.Solved {
				targets, _ := tiers.Targets(level)
				fmt.Fprintf(cmd.OutOrStdout(), "level %d: none of %v can be reached\n", level, targets)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "level %d: %d = %s\n", level, result.Target, result.Expression)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&level, "level", "l", 1, "Spell level whose constants are targeted")
	flags.Var(DiceValue{&dice}, "dice", "Comma-separated die rolls to use instead of rolling")
	flags.IntVarP(&ranks, "ranks", "r", 0, "Number of dice to roll, one per rank")
	flags.IntVar(&sides, "sides", spell.DefaultSides, "Number of sides of each die")
	flags.Int64Var(&seed, "seed", 0, "Seed for rolling dice reproducibly")
	flags.StringVar(&tiersPath, "tiers", "", "YAML file mapping spell levels to target constants")

	return cmd
}

func newTiersCmd() *cobra.Command {
	var tiersPath string

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "list the target constants of each spell level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers, err := loadTiers(tiersPath)
			if err != nil {
				return err
			}

			for _, level := range tiers.Levels() {
				targets, _ := tiers.Targets(level)
				fmt.Fprintf(cmd.OutOrStdout(), "level %d: %v\n", level, targets)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tiersPath, "tiers", "", "YAML file mapping spell levels to target constants")

	return cmd
}
