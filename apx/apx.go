// Package apx: the .apx reader and writer.
package apx

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/afmend/af"
)

// ErrBadPredicate indicates an enf line in a status-mode instance or a
// pos/neg line in an extension-mode instance.
var ErrBadPredicate = stderrors.New("apx: predicate not valid for this mode")

// Parse reads an instance for the given mode. Malformed lines are logged
// and skipped; predicate/mode mismatches abort with ErrBadPredicate.
func Parse(r io.Reader, mode af.Mode, logger *logrus.Logger) (*af.Framework, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	f := af.New()
	statusMode := mode == af.Credulous || mode == af.Skeptical

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stripSpace(scanner.Text())
		if len(line) == 0 || line[0] == '/' || line[0] == '%' {
			continue
		}
		if len(line) < 6 {
			logger.Warnf("cannot parse line: %s", line)
			continue
		}
		op, body, ok := splitPredicate(line)
		if !ok {
			logger.Warnf("cannot parse line: %s", line)
			continue
		}
		var err error
		switch op {
		case "arg":
			err = f.AddArgument(body)
		case "att":
			src, dst, found := strings.Cut(body, ",")
			if !found {
				logger.Warnf("cannot parse line: %s", line)
				continue
			}
			err = f.AddAttack(src, dst)
		case "enf":
			if statusMode {
				return nil, errors.Wrap(ErrBadPredicate, "enf in a status-enforcement instance")
			}
			err = f.AddEnforcement(body)
		case "pos":
			if !statusMode {
				return nil, errors.Wrap(ErrBadPredicate, "pos in an extension-enforcement instance")
			}
			err = f.AddEnforcement(body)
		case "neg":
			if !statusMode {
				return nil, errors.Wrap(ErrBadPredicate, "neg in an extension-enforcement instance")
			}
			err = f.AddNegEnforcement(body)
		default:
			logger.Warnf("cannot parse line: %s", line)
			continue
		}
		if err != nil {
			if stderrors.Is(err, af.ErrConflictingEnforcement) {
				return nil, errors.Wrapf(err, "line %q", line)
			}
			logger.Warnf("skipping line %q: %v", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading apx input")
	}

	return f, nil
}

// Write emits the framework as arg and att lines in insertion order.
func Write(w io.Writer, f *af.Framework) error {
	bw := bufio.NewWriter(w)
	for id := 1; id <= f.N(); id++ {
		if _, err := fmt.Fprintf(bw, "arg(%s).\n", f.Name(id)); err != nil {
			return err
		}
	}
	for _, a := range f.Atts() {
		if _, err := fmt.Fprintf(bw, "att(%s,%s).\n", f.Name(a.From), f.Name(a.To)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// stripSpace removes every whitespace rune, matching the original
// erase-isspace preprocessing.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			return -1
		default:
			return r
		}
	}, s)
}

// splitPredicate splits "op(BODY)." into its parts; the trailing period
// is tolerated but not required, as in the original parser.
func splitPredicate(line string) (op, body string, ok bool) {
	if line[3] != '(' {
		return "", "", false
	}
	end := strings.IndexByte(line, ')')
	if end < 4 {
		return "", "", false
	}

	return line[:3], line[4:end], true
}
