// Command gridcalc is an interactive calculator with a grid-search
// equation solver. Run with no arguments for the menu, or use the
// eval/solve subcommands for one-shot scripting.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alexshd/gridcalc"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gridcalc",
		Short: "Calculator with a grid-search equation solver",
		Long: "gridcalc evaluates basic binary arithmetic and solves equations of the\n" +
			"form x OP k = target (or k OP x = target) by scanning candidate x\n" +
			"values across [-100, 100] at step 0.1.\n\n" +
			"With no subcommand it starts the interactive menu.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newEvalCmd(), newSolveCmd())
	return root
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval A OP B",
		Short: "Evaluate a single binary operation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := gridcalc.EvaluateFields(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
			return nil
		},
	}
}

func newSolveCmd() *cobra.Command {
	var (
		target float64
		known  float64
		opText string
		xRight bool
		cfg    = gridcalc.DefaultSearchConfig()
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve x OP k = target (or k OP x = target) by grid search",
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := gridcalc.ParseOperator(opText)
			if err != nil {
				return err
			}

			side := gridcalc.XLeft
			if xRight {
				side = gridcalc.XRight
			}
			eq := gridcalc.Equation{Target: target, Op: op, Known: known, XSide: side}

			start := time.Now()
			res := gridcalc.Solve(eq, cfg)
			slog.Debug("scan finished",
				"equation", eq.String(),
				"kind", string(res.Kind),
				"candidates", res.Steps,
				"took", time.Since(start))

			printResult(cmd.OutOrStdout(), eq, res, cfg)
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "desired result (right of the equals sign)")
	cmd.Flags().Float64Var(&known, "known", 0, "the non-x operand")
	cmd.Flags().StringVar(&opText, "op", "+", "operation (+, -, *, /, ^)")
	cmd.Flags().BoolVar(&xRight, "x-right", false, "put x on the right of the operator")
	cmd.Flags().Float64Var(&cfg.Min, "min", cfg.Min, "lower bound of the scan range")
	cmd.Flags().Float64Var(&cfg.Max, "max", cfg.Max, "upper bound of the scan range")
	cmd.Flags().Float64Var(&cfg.Step, "step", cfg.Step, "candidate increment")
	cmd.Flags().Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "residual threshold for an exact hit")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// printResult reports a search outcome plus the verification line: the
// equation re-evaluated at the returned x.
func printResult(w io.Writer, eq gridcalc.Equation, res gridcalc.SearchResult, cfg gridcalc.SearchConfig) {
	switch res.Kind {
	case gridcalc.NotFound:
		fmt.Fprintln(w, "No solution found in the search range")
		return
	case gridcalc.Exact:
		fmt.Fprintf(w, "Solution: x = %.4f\n", res.X)
	case gridcalc.Approximate:
		fmt.Fprintf(w, "Closest:  x = %.4f (off by %.4f)\n", res.X, res.Residual)
	}

	v := gridcalc.Verify(eq, res.X, cfg.Epsilon)
	if v.Err != nil {
		fmt.Fprintf(w, "Verification failed: %v\n", v.Err)
		return
	}
	relation := "≠"
	if v.Exact {
		relation = "≈"
	}
	fmt.Fprintf(w, "Verification: %.4f %s %g\n", v.Result, relation, eq.Target)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
