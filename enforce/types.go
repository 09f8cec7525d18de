// SPDX-License-Identifier: MIT
//
// Package enforce: options, result type and sentinel errors.
package enforce

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/solver"
)

// Sentinel errors for enforcement runs.
var (
	// ErrInfeasible indicates the strict instance has no solution at any
	// edit distance: the enforced set is semantically unattainable.
	ErrInfeasible = errors.New("enforce: enforcement request is infeasible")

	// ErrUnsupportedOutput indicates clause emission was requested for a
	// semantics that is only solved through the refinement loop
	// (preferred, semi-stable, stage, skeptical status).
	ErrUnsupportedOutput = errors.New("enforce: clause output not supported for this combination")
)

// Options collects the tunables of an enforcement run.
type Options struct {
	// CEGAR forces the refinement loop for grounded semantics instead of
	// the direct level encoding. Semantics that only exist behind the
	// loop ignore the flag.
	CEGAR bool

	// Logger receives instance statistics and per-iteration progress.
	// Defaults to a discarding logger; the CLI installs its own.
	Logger *logrus.Logger

	// NewMaxSAT constructs the optimization engine for this run.
	NewMaxSAT func() solver.MaxSAT

	// NewSAT constructs the decision oracle for the refinement checks.
	NewSAT func() solver.SAT
}

// Option mutates Options; pass to Enforce.
type Option func(*Options)

// WithCEGAR forces the refinement loop for grounded semantics; the other
// semantics ignore it.
func WithCEGAR() Option {
	return func(o *Options) { o.CEGAR = true }
}

// WithLogger routes run diagnostics to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxSAT swaps the optimization engine factory.
func WithMaxSAT(fn func() solver.MaxSAT) Option {
	return func(o *Options) { o.NewMaxSAT = fn }
}

// WithSAT swaps the decision-oracle factory.
func WithSAT(fn func() solver.SAT) Option {
	return func(o *Options) { o.NewSAT = fn }
}

func defaultOptions() Options {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return Options{
		Logger:    logger,
		NewMaxSAT: func() solver.MaxSAT { return solver.NewMaxSAT() },
		NewSAT:    func() solver.SAT { return solver.NewSAT() },
	}
}

// Result is the outcome of an enforcement run.
type Result struct {
	// Output is the repaired framework: the input's arguments with the
	// attack relation read back from the optimal assignment.
	Output *af.Framework

	// Cost is the solver optimum plus the forced edits (input attacks on
	// pairs that carry no variable and are removed up front).
	Cost int

	// Changes is the cardinality of the symmetric difference between the
	// input and output attack relations.
	Changes int

	// Iterations counts refinement iterations; zero for direct pipelines.
	Iterations int
}

// rebuild reads the output framework off an optimal assignment: the
// input's arguments, and exactly the attacks whose variable is true.
func rebuild(f *af.Framework, assignment solver.Assignment) *af.Framework {
	out := af.New()
	for id := 1; id <= f.N(); id++ {
		_ = out.AddArgument(f.Name(id))
	}
	for v := 1; v <= f.VarCount(); v++ {
		a, ok := f.VarAtt(v)
		if ok && assignment.Value(v) {
			_ = out.AddAttack(f.Name(a.From), f.Name(a.To))
		}
	}

	return out
}

// forcedEdits counts input attacks on pairs without an attack variable;
// those attacks cannot survive and are edits by construction.
func forcedEdits(f *af.Framework) int {
	forced := 0
	for _, a := range f.Atts() {
		if f.AttVar(a.From, a.To) == 0 {
			forced++
		}
	}

	return forced
}

// changes counts the symmetric difference of the attack relations.
func changes(in, out *af.Framework) int {
	diff := 0
	for _, a := range in.Atts() {
		if !out.AttackExists(a.From, a.To) {
			diff++
		}
	}
	for _, a := range out.Atts() {
		if !in.AttackExists(a.From, a.To) {
			diff++
		}
	}

	return diff
}
