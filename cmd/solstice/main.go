package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ericr/solstice/config"
	"github.com/ericr/solstice/encoding"
	"github.com/ericr/solstice/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := config.New()
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solstice path.cnf",
		Short: "A CDCL SAT solver",
		Long:  "solstice decides satisfiability of a DIMACS CNF formula via conflict-driven clause learning.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.Logger.SetLevel(logrus.DebugLevel)
			}
			return run(args[0], c)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed for restart/reduce randomness")
	flags.BoolVar(&c.Assertions, "assertions", c.Assertions, "enable internal invariant checks")
	flags.Float64Var(&c.VarDecay, "var-decay", c.VarDecay, "VSIDS activity decay factor")
	flags.Float64Var(&c.RestartTriggerK, "restart-k", c.RestartTriggerK, "glucose restart trigger coefficient")
	flags.IntVar(&c.ReduceLBDThreshold, "reduce-lbd", c.ReduceLBDThreshold, "LBD at or above which a learnt clause is eligible for deletion")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	return cmd
}

// run parses path as DIMACS CNF, solves it, and prints the two-line result
// contract to stdout. Solver statistics go to the log, never to stdout.
func run(path string, c *config.Config) error {
	f, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "opening %s", path)
		c.Logger.WithError(err).Error("solstice: fatal")
		return err
	}
	defer f.Close()

	parsed, err := encoding.ParseDimacs(f)
	if err != nil {
		err = errors.Wrap(err, "parsing DIMACS input")
		c.Logger.WithError(err).Error("solstice: fatal")
		return err
	}

	s := solver.New(c)
	for _, clause := range parsed.Clauses {
		s.AddClause(clause)
	}

	conflict := false
	for _, u := range parsed.Units {
		if s.AssignUnit(u) {
			conflict = true
		}
	}
	if !conflict {
		conflict = s.PropagateInitial()
	}

	if conflict {
		fmt.Println("s UNSATISFIABLE")
		logStats(c.Logger, s, 0)
		return nil
	}

	start := time.Now()
	sat := s.Solve()
	elapsed := time.Since(start)

	if sat {
		fmt.Println("s SATISFIABLE")
		printModel(s.Model())
	} else {
		fmt.Println("s UNSATISFIABLE")
	}
	logStats(c.Logger, s, elapsed)

	return nil
}

func printModel(model []int) {
	fmt.Print("v ")
	for _, v := range model {
		fmt.Printf("%d ", v)
	}
	fmt.Println("0")
}

func logStats(logger *logrus.Logger, s *solver.Solver, elapsed time.Duration) {
	logger.WithFields(logrus.Fields{
		"variables":    s.NVars(),
		"constraints":  s.NConstraints(),
		"conflicts":    s.NConflicts(),
		"propagations": s.NPropagations(),
		"restarts":     s.NRestarts(),
		"reduces":      s.NReduces(),
		"rephases":     s.NRephases(),
		"decisions":    s.NDecisions(),
		"elapsed":      elapsed,
	}).Info("solve finished")
}
