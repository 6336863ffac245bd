// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/aiger"
	"github.com/dalzilio/robdd/check"
	"github.com/dalzilio/robdd/sop"
	"github.com/sirupsen/logrus"
)

var defaultNames = [2]string{"g", "h"}

func run(opts *rootOpts, aig1, aig2, expr, output string) error {
	log := logrus.WithField("cmd", "robdd")
	b := robdd.New(robdd.Pinned(opts.order...), robdd.Logger(log))

	var circuits [2]*aiger.Circuit
	paths := [2]string{aig1, aig2}
	for k, path := range paths {
		c, err := aiger.TranslateFile(b, path, aiger.WithSweep(opts.sweep), aiger.WithLogger(log))
		if err != nil {
			return err
		}
		log.Infof("Loaded %s (%s): %d node(s) in the table", path, c.Header, b.Size())
		circuits[k] = c
	}

	names, err := rootNames(opts.names)
	if err != nil {
		return err
	}
	roots := map[string]robdd.Node{
		names[0]: circuits[0].Root,
		names[1]: circuits[1].Root,
	}
	log.Debugf("Expression roots are %s and %s", names[0], names[1])

	res, err := sop.TranslateFile(b, expr, roots, sop.WithSweep(opts.sweep), sop.WithLogger(log))
	if err != nil {
		return err
	}

	if opts.verify {
		if err := verify(b, circuits, paths); err != nil {
			return err
		}
		log.Info("Both circuits agree with their netlist")
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := b.WriteLabels(f, circuits[0].Root, circuits[1].Root, res); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Infof("Wrote %s", output)

	if opts.dot != "" {
		if err := b.FPrintDot(opts.dot, circuits[0].Root, circuits[1].Root, res); err != nil {
			return err
		}
	}
	if opts.stats {
		log.Info(b.Stats())
	}
	return nil
}

// verify checks the diagram of each circuit against its netlist, first with
// gophersat on the formula of the netlist, then with gini on the file at the
// matching path.
func verify(b *robdd.BDD, circuits [2]*aiger.Circuit, paths [2]string) error {
	for k, c := range circuits {
		if err := check.Circuit(b, c); err != nil {
			return fmt.Errorf("%s: %w", paths[k], err)
		}
		if err := check.RereadFile(b, c.Root, paths[k]); err != nil {
			return err
		}
	}
	return nil
}

// rootNames checks the names under which the first and second circuit appear
// in the expression. Symbols of the circuit outputs play no part in it.
func rootNames(names []string) ([2]string, error) {
	var res [2]string
	if len(names) != 2 {
		return res, fmt.Errorf("--names expects two names, got %d", len(names))
	}
	copy(res[:], names)
	if res[0] == "" || res[1] == "" {
		return res, fmt.Errorf("empty circuit name in --names")
	}
	if res[0] == res[1] {
		return res, fmt.Errorf("duplicate circuit name %q in --names", res[0])
	}
	return res, nil
}
