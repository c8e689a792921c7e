package iterative

import (
	"fmt"
	"slices"
	"strings"
)

// Method selects the update rule of a sweep.
type Method int

const (
	// MethodJacobi computes x_new[i] from the previous iterate only.
	MethodJacobi Method = iota
	// MethodGaussSeidel updates x in place, reusing components refreshed earlier in the sweep.
	MethodGaussSeidel
)

// String returns the canonical lower-case name ("jacobi", "gauss-seidel").
func (m Method) String() string {
	switch m {
	case MethodJacobi:
		return "jacobi"
	case MethodGaussSeidel:
		return "gauss-seidel"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// valid reports whether m is one of the declared methods.
func (m Method) valid() bool { return m == MethodJacobi || m == MethodGaussSeidel }

// ParseMethod maps a case-insensitive name to a Method.
// Accepted: "jacobi", "gauss-seidel", "gauss_seidel", "gaussseidel", "seidel".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jacobi":
		return MethodJacobi, nil
	case "gauss-seidel", "gauss_seidel", "gaussseidel", "seidel":
		return MethodGaussSeidel, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", name, ErrUnknownMethod)
	}
}

// Status tags the outcome of a solve.
type Status int

const (
	// Unsolvable means the dominance check failed and no sweep was attempted.
	// It is the zero value, so an uninitialized Result never looks solved.
	Unsolvable Status = iota
	// Converged means the last update step was strictly below the tolerance.
	Converged
	// Exhausted means MaxIterations sweeps ran without meeting the tolerance.
	Exhausted
)

// String returns a short lower-case label for the status.
func (s Status) String() string {
	switch s {
	case Unsolvable:
		return "unsolvable"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Iteration is one diagnostic record of the sweep sequence.
//
// Index 0 is the starting point (initial guess) and carries Error = +Inf.
// X is owned by the engine and overwritten by the next sweep: clone it to keep it.
type Iteration struct {
	Index     int       // sweep number, 0 for the initial guess
	X         []float64 // current iterate (reused between records)
	Error     float64   // max_i |x_new[i] - x_old[i]|
	Converged bool      // Error < tolerance
}

// Result is the tagged outcome of a solve.
//
// X is nil exactly when Status == Unsolvable. Iterations counts performed
// sweeps and Error is the update-step norm of the last sweep.
type Result struct {
	Status     Status
	X          []float64
	Iterations int
	Error      float64
}

// Solved reports whether a vector was produced (converged or not).
func (r Result) Solved() bool { return r.Status != Unsolvable }

// Vector returns X and true, or nil and false for an Unsolvable result.
func (r Result) Vector() ([]float64, bool) {
	if r.Status == Unsolvable {
		return nil, false
	}

	return r.X, true
}

// ResultOf turns the last record of a Steps sequence into a Result, so a
// caller that already drained Steps for diagnostics need not run Solve again.
// A record without a vector (an empty sequence) yields Unsolvable; X is cloned.
func ResultOf(last Iteration) Result {
	if last.X == nil {
		return Result{Status: Unsolvable}
	}
	status := Exhausted
	if last.Converged {
		status = Converged
	}

	return Result{
		Status:     status,
		X:          slices.Clone(last.X),
		Iterations: last.Index,
		Error:      last.Error,
	}
}
