package fountain

import (
	"fmt"

	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/symbol"
)

// StepOp tags one elementary row operation of the elimination.
type StepOp uint8

const (
	// StepSwap exchanges rows A and B.
	StepSwap StepOp = iota
	// StepXorInto XORs row A into row B.
	StepXorInto
)

// String returns the wire name of the operation tag.
func (op StepOp) String() string {
	switch op {
	case StepSwap:
		return "swap"
	case StepXorInto:
		return "xor"
	default:
		return fmt.Sprintf("stepop(%d)", uint8(op))
	}
}

// Step is one recorded row operation. An ordered sequence of steps is a
// replayable program: applied to the coefficient matrix it produces reduced
// row-echelon form, and applied to any right-hand-side vector with the same
// row ordering it produces the matching transformation. Both operations are
// self-inverse, so the sequence can also be replayed in reverse.
type Step struct {
	Op StepOp
	A  int
	B  int
}

// SolverOption configures a Solver during construction.
type SolverOption func(*Solver) error

// WithSolverOps directs the solver's elementary-operation counts into
// counter.
func WithSolverOps(counter *ops.Counter) SolverOption {
	return func(s *Solver) error {
		s.counter = counter
		return nil
	}
}

// Solver computes and retains the row-operation program that reduces one
// n×k GF(2) coefficient matrix to reduced row-echelon form. The working
// matrix is discarded after construction; only the step log is kept for the
// lifetime of the decode session.
type Solver struct {
	n       int
	k       int
	steps   []Step
	counter *ops.Counter
}

// NewSolver copies the given n×k boolean matrix, runs Gaussian elimination
// over GF(2) recording every row operation, and verifies the result. It
// returns ErrUnsolvable when some column has no pivot and
// ErrInvariantViolation when the reduced matrix fails the identity/zero
// check that guards against defects in the elimination itself.
func NewSolver(matrix [][]bool, opts ...SolverOption) (*Solver, error) {
	n := len(matrix)
	if n == 0 {
		return nil, fmt.Errorf("empty matrix: %w", ErrUnsolvable)
	}
	k := len(matrix[0])
	if k == 0 {
		return nil, fmt.Errorf("matrix with empty rows: %w", ErrUnsolvable)
	}
	if n < k {
		return nil, fmt.Errorf("%d equations for %d unknowns: %w", n, k, ErrUnsolvable)
	}
	// Never mutate caller data in place.
	m := make([][]bool, n)
	for i, row := range matrix {
		if len(row) != k {
			return nil, fmt.Errorf("row %d has length %d, expected %d: %w",
				i, len(row), k, symbol.ErrDimensionMismatch)
		}
		m[i] = make([]bool, k)
		copy(m[i], row)
	}

	s := &Solver{n: n, k: k}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	// Forward elimination: pick a pivot for each column, swap it into
	// place, and clear the column below it.
	for c := 0; c < k; c++ {
		pivot := -1
		for r := c; r < n; r++ {
			s.counter.Add(1)
			if m[r][c] {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, fmt.Errorf("no pivot in column %d: %w", c, ErrUnsolvable)
		}
		if pivot != c {
			s.record(m, Step{Op: StepSwap, A: c, B: pivot})
		}
		for r := c + 1; r < n; r++ {
			s.counter.Add(1)
			if m[r][c] {
				s.record(m, Step{Op: StepXorInto, A: c, B: r})
			}
		}
	}

	// Back substitution: clear each column above its diagonal.
	for c := k - 1; c >= 1; c-- {
		if !m[c][c] {
			return nil, fmt.Errorf("missing diagonal in column %d: %w", c, ErrUnsolvable)
		}
		for r := c - 1; r >= 0; r-- {
			s.counter.Add(1)
			if m[r][c] {
				s.record(m, Step{Op: StepXorInto, A: c, B: r})
			}
		}
	}

	// The first k rows must now be the identity and every remaining row
	// all-zero. Anything else is a latent bug, never accepted silently.
	for r := 0; r < n; r++ {
		for c := 0; c < k; c++ {
			s.counter.Add(1)
			want := r == c
			if m[r][c] != want {
				return nil, fmt.Errorf("reduced matrix wrong at row %d column %d: %w",
					r, c, ErrInvariantViolation)
			}
		}
	}

	return s, nil
}

// record applies one step to the working matrix and appends it to the log.
func (s *Solver) record(m [][]bool, step Step) {
	switch step.Op {
	case StepSwap:
		m[step.A], m[step.B] = m[step.B], m[step.A]
		s.counter.Add(1)
	case StepXorInto:
		for c := 0; c < s.k; c++ {
			m[step.B][c] = m[step.B][c] != m[step.A][c]
		}
		s.counter.Add(uint64(s.k))
	}
	s.steps = append(s.steps, step)
}

// NumEquations returns n, the row count the step log is valid for.
func (s *Solver) NumEquations() int {
	return s.n
}

// NumVariables returns k, the number of unknowns.
func (s *Solver) NumVariables() int {
	return s.k
}

// Steps returns a copy of the recorded step program in application order.
func (s *Solver) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Solve replays the recorded steps against a private copy of the n
// right-hand-side symbols and returns the first k entries, the decoded
// variables. The rhs must be ordered exactly like the matrix rows the
// solver was built from.
func (s *Solver) Solve(rhs []symbol.Symbol) ([]symbol.Symbol, error) {
	if len(rhs) != s.n {
		return nil, fmt.Errorf("rhs has %d entries, matrix had %d rows: %w",
			len(rhs), s.n, symbol.ErrDimensionMismatch)
	}
	if _, err := symbol.UniformLength(rhs); err != nil {
		return nil, err
	}
	work := make([]symbol.Symbol, len(rhs))
	for i, sym := range rhs {
		work[i] = sym.Clone()
	}
	for _, step := range s.steps {
		if err := s.apply(work, step); err != nil {
			return nil, err
		}
	}
	return work[:s.k], nil
}

// Generate is the inverse use of the step program: it pads the k variables
// with zero symbols up to n entries and replays the steps in reverse order,
// reconstructing the right-hand sides the original n equations would have
// produced for this message.
func (s *Solver) Generate(variables []symbol.Symbol) ([]symbol.Symbol, error) {
	if len(variables) != s.k {
		return nil, fmt.Errorf("got %d variables, want %d: %w",
			len(variables), s.k, symbol.ErrDimensionMismatch)
	}
	length, err := symbol.UniformLength(variables)
	if err != nil {
		return nil, err
	}
	work := make([]symbol.Symbol, s.n)
	for i, sym := range variables {
		work[i] = sym.Clone()
	}
	for i := s.k; i < s.n; i++ {
		work[i] = symbol.Zero(length)
	}
	for i := len(s.steps) - 1; i >= 0; i-- {
		if err := s.apply(work, s.steps[i]); err != nil {
			return nil, err
		}
	}
	return work, nil
}

// apply performs one step on a symbol vector. Swap and XOR are each
// self-inverse, so the same application works for forward and reverse
// replay.
func (s *Solver) apply(work []symbol.Symbol, step Step) error {
	switch step.Op {
	case StepSwap:
		work[step.A], work[step.B] = work[step.B], work[step.A]
		s.counter.Add(1)
		return nil
	case StepXorInto:
		s.counter.Add(uint64(len(work[step.A])))
		return symbol.XorInto(work[step.B], work[step.A])
	default:
		return fmt.Errorf("unknown step op %d: %w", step.Op, ErrInvariantViolation)
	}
}
