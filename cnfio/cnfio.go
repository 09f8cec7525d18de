// Package cnfio: clause type and the WCNF / LP writers.
package cnfio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Clause is an ordered sequence of signed variable ids: a positive id is
// a positive literal, a negative id its negation.
type Clause []int

// MaxVar returns the largest variable id appearing in any of the clause
// sets (0 when all are empty).
func MaxVar(sets ...[]Clause) int {
	maxVar := 0
	for _, set := range sets {
		for _, c := range set {
			for _, lit := range c {
				v := lit
				if v < 0 {
					v = -v
				}
				if v > maxVar {
					maxVar = v
				}
			}
		}
	}

	return maxVar
}

// WriteWCNF serializes the instance in weighted-DIMACS layout. Soft
// clauses carry unit weight; hard clauses carry top.
func WriteWCNF(w io.Writer, nbvar, top int, hard, soft []Clause) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p wcnf %d %d %d\n", nbvar, len(hard)+len(soft), top); err != nil {
		return err
	}
	for _, c := range hard {
		if err := writeClauseLine(bw, top, c); err != nil {
			return err
		}
	}
	for _, c := range soft {
		if err := writeClauseLine(bw, 1, c); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeClauseLine(bw *bufio.Writer, weight int, c Clause) error {
	if _, err := bw.WriteString(strconv.Itoa(weight)); err != nil {
		return err
	}
	for _, lit := range c {
		if _, err := bw.WriteString(" " + strconv.Itoa(lit)); err != nil {
			return err
		}
	}
	_, err := bw.WriteString(" 0\n")

	return err
}

// WriteLP serializes the instance as an ILP in LP format: minimize the
// sum of slack variables b_i over the soft clauses, one constraint per
// clause (Σ x_pos − Σ x_neg [+ b_i] ≥ 1 − #negated), binary bounds on
// every b and x.
func WriteLP(w io.Writer, nbvar int, hard, soft []Clause) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("Minimize\n obj:"); err != nil {
		return err
	}
	for i := range soft {
		sep := " + "
		if i == 0 {
			sep = " "
		}
		if _, err := fmt.Fprintf(bw, "%sb%d", sep, i+1); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\nSubject To\n"); err != nil {
		return err
	}
	for i, c := range soft {
		if err := writeLPRow(bw, c, i+1); err != nil {
			return err
		}
	}
	for _, c := range hard {
		if err := writeLPRow(bw, c, 0); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("Bounds\n"); err != nil {
		return err
	}
	for i := 1; i <= len(soft); i++ {
		if _, err := fmt.Fprintf(bw, " 0 <= b%d <= 1\n", i); err != nil {
			return err
		}
	}
	for i := 1; i <= nbvar; i++ {
		if _, err := fmt.Fprintf(bw, " 0 <= x%d <= 1\n", i); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("End\n"); err != nil {
		return err
	}

	return bw.Flush()
}

// writeLPRow emits one clause constraint; slack > 0 appends the slack
// variable b<slack> of a soft clause.
func writeLPRow(bw *bufio.Writer, c Clause, slack int) error {
	negated := 0
	for i, lit := range c {
		v, sign := lit, "+"
		if lit < 0 {
			v, sign = -lit, "-"
			negated++
		}
		if i == 0 && lit > 0 {
			if _, err := fmt.Fprintf(bw, " x%d", v); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, " %s x%d", sign, v); err != nil {
			return err
		}
	}
	if slack > 0 {
		if _, err := fmt.Fprintf(bw, " + b%d", slack); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(bw, " >= %d\n", 1-negated)

	return err
}
