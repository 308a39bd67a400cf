package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-radiolab/dsp/alias"
	"github.com/cwbudde/algo-radiolab/internal/config"
)

func runAlias(args []string, cfg config.Config, g globals, stdout, stderr io.Writer, logger *log.Logger) error {
	ac := cfg.Alias
	flags := pflag.NewFlagSet("alias", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Float64Var(&ac.F0, "f0", ac.F0, "true tone frequency")
	flags.Float64Var(&ac.FsMax, "fs-max", ac.FsMax, "first (highest) sampling frequency of the sweep")
	flags.Float64Var(&ac.FsMin, "fs-min", ac.FsMin, "last (lowest) sampling frequency of the sweep")
	flags.IntVar(&ac.Points, "points", ac.Points, "number of log-spaced sampling frequencies")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return errUsage
	}

	fsVals, err := alias.LogspaceFs(ac.FsMax, ac.FsMin, ac.Points)
	if err != nil {
		return err
	}
	fs, fobs := alias.TheoryCurve(ac.F0, fsVals)
	logger.Printf("alias curve: f0=%g over %d sampling frequencies", ac.F0, len(fs))

	rows := make([][]string, len(fs))
	for i := range fs {
		rows[i] = []string{formatFloat(fs[i]), formatFloat(fobs[i])}
	}
	return writeTable(stdout, g.csv, []string{"fs", "fobs"}, rows)
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
