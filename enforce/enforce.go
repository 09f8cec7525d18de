// Package enforce: top-level dispatch and clause emission.
package enforce

import (
	"errors"

	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
	"github.com/katalvlaran/afmend/encode"
	"github.com/katalvlaran/afmend/solver"
)

// Enforce computes a minimally edited framework satisfying the
// enforcement request. The framework's variable tables are (re)built by
// this call; f itself is otherwise left untouched.
func Enforce(f *af.Framework, mode af.Mode, sem af.Semantics, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := af.ValidateCombination(mode, sem); err != nil {
		return nil, err
	}
	sem = collapse(mode, sem)

	o.Logger.WithFields(map[string]interface{}{
		"arguments": f.N(),
		"attacks":   len(f.Atts()),
		"enforced":  len(f.Enforcements()),
		"negated":   len(f.NegEnforcements()),
		"mode":      mode.String(),
		"semantics": sem.String(),
	}).Info("enforcement instance")

	switch mode {
	case af.Credulous:
		return enforceCred(f, sem, &o)
	case af.Skeptical:
		return enforceSkept(f, &o)
	default:
		if sem == af.Grounded && o.CEGAR {
			return groundedCEGAR(f, mode, &o)
		}

		return enforceExtension(f, mode, sem, &o)
	}
}

// Clauses builds the hard and soft pools of the instance for WCNF / LP
// emission, together with the top weight. Semantics that exist only
// behind the refinement loop have no standalone clause set and yield
// ErrUnsupportedOutput.
func Clauses(f *af.Framework, mode af.Mode, sem af.Semantics, cegar bool) (hard, soft []cnfio.Clause, top int, err error) {
	if err = af.ValidateCombination(mode, sem); err != nil {
		return nil, nil, 0, err
	}
	sem = collapse(mode, sem)

	switch mode {
	case af.Credulous:
		f.InitializeCred()
		if sem == af.Admissible {
			hard = encode.CredAdmissible(f)
		} else {
			hard = encode.CredStable(f)
		}

		return hard, encode.Soft(f), f.TopStatus(), nil
	case af.Skeptical:
		// The skeptical pipeline is a pure refinement loop; its initial
		// pool alone does not describe the problem.
		return nil, nil, 0, ErrUnsupportedOutput
	default:
	}

	if sem == af.Grounded {
		if err = f.Initialize(mode, sem, cegar); err != nil {
			return nil, nil, 0, err
		}
		hard = groundedHard(f, mode == af.Strict, cegar)

		return hard, encode.Soft(f), f.Top(), nil
	}
	if sem == af.Preferred || sem == af.SemiStable || sem == af.Stage {
		return nil, nil, 0, ErrUnsupportedOutput
	}
	if err = f.Initialize(mode, sem, false); err != nil {
		return nil, nil, 0, err
	}
	hard = extensionHard(f, mode == af.Strict, sem)

	return hard, encode.Soft(f), f.Top(), nil
}

// collapse maps complete and preferred to admissible where the encodings
// coincide: non-strict extension enforcement and credulous status.
func collapse(mode af.Mode, sem af.Semantics) af.Semantics {
	if (sem == af.Complete || sem == af.Preferred) && (mode == af.NonStrict || mode == af.Credulous) {
		return af.Admissible
	}

	return sem
}

// solveErr maps an unsatisfiable optimization call to the caller-facing
// outcome: infeasibility where the instance can legitimately be
// over-constrained, a plain error otherwise.
func solveErr(canBeInfeasible bool, err error) error {
	if canBeInfeasible && errors.Is(err, solver.ErrUnsat) {
		return ErrInfeasible
	}

	return err
}

// forbidPattern excludes the candidate's exact attack-bit pattern:
// every attack variable contributes the literal falsified by its
// current value.
func forbidPattern(f *af.Framework, assignment solver.Assignment) cnfio.Clause {
	var clause cnfio.Clause
	for v := 1; v <= f.VarCount(); v++ {
		if _, ok := f.VarAtt(v); !ok {
			continue
		}
		if assignment.Value(v) {
			clause = append(clause, -v)
		} else {
			clause = append(clause, v)
		}
	}

	return clause
}
