package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/they4kman/experimentation/bruteforce/sacred-geometry/closure"
)

var numPrinter = message.NewPrinter(language.English)

type globalOptions struct {
	verbose        bool
	valueBits      int
	maxExpressions int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "sacredgeometry",
		Short: "sacredgeometry finds arithmetic formulas combining dice rolls into a target.",
		Long: `sacredgeometry combines every die of a roll exactly once, with + - * and /,
into a formula equal to a target number.

Intermediate results must stay non-negative integers. The search is exhaustive:
if no formula is reported, none exists within the value ceiling.

The cast command applies the Sacred Geometry feat: a spell level selects a
list of prime constants, which are tried in order until one can be reached.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print search progress to stderr")
	flags.IntVar(&opts.valueBits, "value-bits", closure.DefaultValueBits, "Number of bits intermediate values may occupy; larger values are skipped")
	flags.IntVar(&opts.maxExpressions, "max-expressions", 0, "Give up once this many distinct expressions were built. Set to 0 for no limit.")

	cmd.AddCommand(
		newSolveCmd(opts),
		newCastCmd(opts),
		newTiersCmd(),
	)

	return cmd
}

func (o *globalOptions) engineParams() *closure.Params {
	params := closure.DefaultParams()
	params.ValueBits = o.valueBits
	params.MaxExpressions = o.maxExpressions
	return params
}

// logf writes to stderr when --verbose is set
func (o *globalOptions) logf(cmd *cobra.Command) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		if !o.verbose {
			return
		}
		if format[len(format)-1] != '\n' {
			format += "\n"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}
