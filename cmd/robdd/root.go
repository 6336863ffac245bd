// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOpts struct {
	names    []string
	order    []string
	sweep    bool
	verify   bool
	dot      string
	stats    bool
	logLevel string
}

func (o *rootOpts) addFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.names, "names", defaultNames[:], "names of the first and second circuit in the expression")
	fs.StringSliceVar(&o.order, "order", nil, "variables placed first in the variable order, in this sequence; others follow by symbol code")
	fs.BoolVar(&o.sweep, "sweep", false, "sweep variables from the first one in every ITE call instead of splitting on the top variable")
	fs.BoolVar(&o.verify, "verify", false, "check each circuit diagram against its netlist with a SAT solver")
	fs.StringVar(&o.dot, "dot", "", "write the three diagrams in GraphViz DOT format to this file ('-' for stdout)")
	fs.BoolVar(&o.stats, "stats", false, "log statistics about the node table and the ITE cache")
	fs.StringVar(&o.logLevel, "log-level", "info", "logging level (panic, fatal, error, warn, info, debug, trace)")
}

// NewRootCmd returns the robdd command. Flags are bound to a fresh set of
// options, so each command can be executed on its own.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	rootCmd := &cobra.Command{
		Use:   "robdd <aig1> <aig2> <expr> <output>",
		Short: "robdd builds the reduced ordered BDD of two AIG circuits and of an expression combining them",
		Long: `robdd reads two combinational circuits in ASCII AIG format and a sum-of-products
expression over their names (for instance g*h+g'*h'). It writes three lines to
the output file: the canonical ITE expression of each circuit and of the
combined expression, each terminated by a period.`,
		Args:          cobra.ExactArgs(4),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], args[1], args[2], args[3])
		},
	}
	opts.addFlags(rootCmd.Flags())
	return rootCmd
}

// Execute runs the robdd command on the arguments of the process and returns
// the exit code, printing the error if any.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
