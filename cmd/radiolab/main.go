// Command radiolab runs the radio lab computations from the command line.
//
// Usage:
//
//	radiolab [global flags] <command> [command flags]
//
// Commands:
//
//	alias      print the aliasing theory curve fobs(fs) for a tone at f0
//	spectrum   capture from the simulated receiver and print the strongest bins
//
// Examples:
//
//	radiolab alias --f0 7 --fs-max 1000 --fs-min 10 --points 5
//	radiolab --config lab.toml spectrum --reduce median --top 3
//	radiolab --csv alias > curve.csv
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-radiolab/internal/config"
)

// globals are the flags accepted before the command name.
type globals struct {
	configPath string
	csv        bool
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var g globals
	flags := pflag.NewFlagSet("radiolab", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&g.configPath, "config", "c", "", "TOML configuration file")
	flags.BoolVar(&g.csv, "csv", false, "write CSV instead of an aligned table")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "log progress to stderr")
	flags.Usage = func() { usage(stderr, flags) }

	// Stop at the command name so command flags reach the command's own set.
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() < 1 {
		usage(stderr, flags)
		return 2
	}

	logger := log.New(io.Discard, "radiolab ", log.LstdFlags)
	if g.verbose {
		logger.SetOutput(stderr)
	}

	cfg := config.Default()
	if g.configPath != "" {
		var err error
		cfg, err = config.Load(g.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		logger.Printf("loaded config from %s", g.configPath)
	}

	cmd, cmdArgs := flags.Arg(0), flags.Args()[1:]
	var err error
	switch cmd {
	case "alias":
		err = runAlias(cmdArgs, cfg, g, stdout, stderr, logger)
	case "spectrum":
		err = runSpectrum(cmdArgs, cfg, g, stdout, stderr, logger)
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", cmd)
		usage(stderr, flags)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

// errUsage marks flag parsing failures; pflag has already reported them.
var errUsage = errors.New("usage")

func usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: radiolab [flags] <command> [command flags]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  alias      aliasing theory curve fobs(fs) for a tone at f0\n")
	fmt.Fprintf(w, "  spectrum   simulated capture, block reduction and strongest bins\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fmt.Fprint(w, flags.FlagUsages())
	fmt.Fprintf(w, "\nRun 'radiolab <command> --help' for command flags.\n")
}
