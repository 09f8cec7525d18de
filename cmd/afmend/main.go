// Command afmend computes minimal attack-relation repairs that enforce
// extensions or argument statuses in abstract argumentation frameworks.
//
// Usage:
//
//	afmend input-file mode [semantics]
//
// mode is one of strict, non-strict, cred, skept; semantics one of adm,
// com, stb, prf, sem, stg (omitted: grounded). See the flag help for the
// clause-emission and grounded-only switches.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/apx"
	"github.com/katalvlaran/afmend/cnfio"
	"github.com/katalvlaran/afmend/enforce"
	"github.com/katalvlaran/afmend/grounded"
)

const version = "0.4.0"

type cliOptions struct {
	cegar        bool
	groundedOnly bool
	outFile      string
	toStdout     bool
	format       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := &cobra.Command{
		Use:     "afmend input-file mode [semantics]",
		Short:   "Optimal enforcement in abstract argumentation frameworks",
		Version: version,
		Long: `afmend repairs the attack relation of an argumentation framework with a
minimum number of edits so that the requested enforcement holds.

  mode       strict | non-strict | cred | skept
  semantics  adm | com | stb | prf | sem | stg (omitted: grounded)`,
		Args:         cobra.RangeArgs(2, 3),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args, opts, logger)
		},
	}
	cmd.Flags().BoolVarP(&opts.cegar, "cegar", "c", false, "use CEGAR instead of the direct encoding (grounded semantics)")
	cmd.Flags().BoolVarP(&opts.groundedOnly, "grounded", "g", false, "print the grounded extension of the input and exit")
	cmd.Flags().StringVarP(&opts.outFile, "output", "o", "", "write the clauses to this file and exit")
	cmd.Flags().BoolVarP(&opts.toStdout, "stdout", "s", false, "write the clauses to stdout and exit")
	cmd.Flags().StringVarP(&opts.format, "type", "t", "wcnf", "clause format {wcnf|lp}")

	return cmd
}

func run(args []string, opts *cliOptions, logger *logrus.Logger) error {
	mode, err := af.ParseMode(args[1])
	if err != nil {
		return errors.Wrapf(err, "mode %q", args[1])
	}
	sem := af.Grounded
	if len(args) == 3 {
		if sem, err = af.ParseSemantics(args[2]); err != nil {
			return errors.Wrapf(err, "semantics %q", args[2])
		}
	}
	if err = af.ValidateCombination(mode, sem); err != nil {
		return err
	}
	if opts.format != "wcnf" && opts.format != "lp" {
		logger.Warnf("unknown clause format %q, using wcnf", opts.format)
		opts.format = "wcnf"
	}

	input, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "cannot open input file")
	}
	defer input.Close()

	f, err := apx.Parse(input, mode, logger)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"arguments": f.N(),
		"attacks":   len(f.Atts()),
		"enforced":  len(f.Enforcements()),
		"negated":   len(f.NegEnforcements()),
	}).Info("parsed instance")

	if opts.groundedOnly {
		ext := grounded.Extension(f)
		names := make([]string, len(ext))
		for i, id := range ext {
			names[i] = f.Name(id)
		}
		fmt.Println(strings.Join(names, ","))

		return nil
	}

	if opts.outFile != "" || opts.toStdout {
		return emitClauses(f, mode, sem, opts)
	}

	result, err := enforce.Enforce(f, mode, sem, enforceOptions(opts, logger)...)
	if err != nil {
		return err
	}
	fmt.Printf("Number of changes: %d\n", result.Changes)

	return apx.Write(os.Stdout, result.Output)
}

func enforceOptions(opts *cliOptions, logger *logrus.Logger) []enforce.Option {
	options := []enforce.Option{enforce.WithLogger(logger)}
	if opts.cegar {
		options = append(options, enforce.WithCEGAR())
	}

	return options
}

func emitClauses(f *af.Framework, mode af.Mode, sem af.Semantics, opts *cliOptions) error {
	hard, soft, top, err := enforce.Clauses(f, mode, sem, opts.cegar)
	if err != nil {
		return err
	}
	out := os.Stdout
	if opts.outFile != "" {
		file, err := os.Create(opts.outFile)
		if err != nil {
			return errors.Wrap(err, "cannot create clause file")
		}
		defer file.Close()
		out = file
	}
	nbvar := cnfio.MaxVar(hard, soft)
	if opts.format == "lp" {
		return cnfio.WriteLP(out, nbvar, hard, soft)
	}

	return cnfio.WriteWCNF(out, nbvar, top, hard, soft)
}
