// Package iterative solves diagonally dominant linear systems A·x = b with the
// Jacobi and Gauss-Seidel fixed-point methods.
//
// Contract:
//
//	Both methods share one engine. Before any sweep the engine checks strict
//	row diagonal dominance (matrix.IsDiagonallyDominant). A non-dominant system
//	is not an error: the Result carries Status == Unsolvable and no vector, so
//	it can never be confused with a legitimate all-zero solution.
//
//	Each sweep produces a new iterate. Jacobi computes every component from the
//	previous iterate only; Gauss-Seidel updates in place and reuses the
//	components already refreshed in the current sweep. The error of a sweep is
//	the L∞ norm of the update step, max_i |x_new[i] − x_old[i]|. Iteration stops
//	as soon as the error is strictly below the tolerance (Status == Converged)
//	or after the configured number of sweeps (Status == Exhausted); the last
//	iterate is returned in both cases.
//
// Diagnostics:
//
//	Solver.Steps exposes the sweeps as a lazy iter.Seq[Iteration]. Nothing runs
//	until the sequence is ranged over, and breaking out of the loop stops the
//	computation. Solver.Solve drains the same sequence keeping only the last
//	record, so no history is collected unless the caller asks for it.
//
// Example:
//
//	s, err := iterative.NewSolver(iterative.MethodGaussSeidel, a, b,
//		iterative.WithTolerance(1e-6))
//	if err != nil { ... }
//	for it := range s.Steps() {
//		fmt.Println(it.Index, it.X, it.Error)
//	}
//	res := s.Solve()
//
// Complexity:
//
//	One sweep costs O(n²); a solve costs O(k·n²) for k sweeps, k ≤ MaxIterations.
package iterative
