// Package matrix provides dense linear-algebra primitives for small square systems.
//
// What & Why:
//
//	Dense is a row-major float64 matrix with bounds-checked accessors. On top of
//	it the package offers the building blocks shared by the direct and the
//	iterative solution paths:
//
//	  - elementary row operations (SwapRows, ScaleRow, AddScaledRow) and Augment;
//	  - Mul, MatVec, InfNorm, VecInfNorm and Residual;
//	  - Inverse (Gauss-Jordan on [A | I] with zero-avoiding row swaps);
//	  - ConditionNumber (‖A‖∞·‖A⁻¹‖∞);
//	  - IsDiagonallyDominant, the guard used by package iterative;
//	  - LU (Doolittle, no pivoting, epsilon substitution for zero pivots),
//	    ForwardSubstitution, BackwardSubstitution and SolveLU.
//
// Ownership:
//
//	Kernels never mutate their arguments. Row operations mutate the *Dense
//	receiver and are applied by kernels only to working copies they allocated.
//
// Errors:
//
//	Every failure wraps one of the sentinels in errors.go; match with errors.Is.
//	ErrSingular is returned by Inverse (and by ConditionNumber through it) when a
//	pivot column has no nonzero candidate.
//
// Complexity:
//
//	At/Set are O(1); Mul is O(r·n·c); Inverse, ConditionNumber and LU are O(n³).
package matrix
