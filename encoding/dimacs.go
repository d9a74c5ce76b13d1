// Package encoding reads DIMACS CNF: a textual satisfiability-problem
// format of an optional run of "c"-prefixed comment lines, exactly one
// "p cnf V C" header, then C clauses of whitespace-separated literals
// terminated by a literal 0, possibly spanning several lines.
package encoding

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ericr/solstice/lit"
)

// Result is a parsed DIMACS instance, split the way the engine needs it:
// Clauses are ready for solver.AddClause (length >= 2), Units are single
// literals the caller must assert at level 0 and propagate separately,
// matching AddClause's precondition.
type Result struct {
	NVars    int
	NClauses int
	Clauses  [][]lit.Lit
	Units    []lit.Lit
}

// ParseDimacs reads in to completion and returns the parsed instance, or a
// wrapped error describing the first malformed token encountered.
func ParseDimacs(in io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	res := &Result{}
	units := lit.NewQueue()
	headerSeen := false
	var current []lit.Lit
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "p" {
			if headerSeen {
				return nil, errors.Errorf("line %d: duplicate p cnf header", lineNo)
			}
			if len(current) != 0 {
				return nil, errors.Errorf("line %d: header after clause data", lineNo)
			}
			if err := parseHeader(res, fields, lineNo); err != nil {
				return nil, err
			}
			headerSeen = true
			continue
		}
		if !headerSeen {
			return nil, errors.Errorf("line %d: clause literals before p cnf header", lineNo)
		}

		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: malformed literal %q", lineNo, f)
			}
			if n == 0 {
				if len(current) == 0 {
					return nil, errors.Errorf("line %d: empty clause", lineNo)
				}
				if len(current) == 1 {
					units.Insert(current[0])
				} else {
					res.Clauses = append(res.Clauses, current)
				}
				current = nil
				continue
			}
			current = append(current, lit.NewFromInt(n))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading DIMACS input")
	}
	if !headerSeen {
		return nil, errors.New("missing p cnf header")
	}
	if len(current) != 0 {
		return nil, errors.New("unexpected end of input mid-clause")
	}
	res.Units = units.Slice()

	return res, nil
}

// parseHeader validates and records a "p cnf V C" line into res.
func parseHeader(res *Result, fields []string, lineNo int) error {
	if len(fields) != 4 || fields[1] != "cnf" {
		return errors.Errorf("line %d: malformed header, want \"p cnf V C\"", lineNo)
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return errors.Wrapf(err, "line %d: malformed variable count", lineNo)
	}
	c, err := strconv.Atoi(fields[3])
	if err != nil {
		return errors.Wrapf(err, "line %d: malformed clause count", lineNo)
	}
	res.NVars, res.NClauses = v, c

	return nil
}
