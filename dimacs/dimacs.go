// Package dimacs loads DIMACS CNF formulas and model files into a solver,
// wrapping github.com/rhartert/dimacs's streaming reader.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/hartwell/cdclsat/internal/sat"
)

// Solver is the subset of *sat.Solver a CNF loader needs: enough to grow the
// variable pool and install clauses as they stream in.
type Solver interface {
	NewVar() int
	AddClause([]sat.Literal)
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile parses the DIMACS CNF file at filename, adding one solver
// variable per declared variable and one clause per clause line, in order.
func LoadFile(filename string, gzipped bool, solver Solver) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()
	return Load(r, solver)
}

// Load parses a DIMACS CNF stream into solver.
func Load(r io.Reader, solver Solver) error {
	b := &builder{solver: solver}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	return nil
}

// builder implements dimacs.Builder over a Solver.
type builder struct {
	solver Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.NewVar()
	}
	return nil
}

func (b *builder) Clause(tmp []int) error {
	clause := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.solver.AddClause(clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}

// LoadModelFile reads a file of one or more satisfying assignments in the
// same DIMACS clause syntax used by SAT competition model output: each
// "clause" line lists every variable as a positive or negative literal,
// terminated by 0.
func LoadModelFile(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("dimacs: model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmp []int) error {
	model := make([]bool, len(tmp))
	for i, l := range tmp {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
