// Package linsolve is a small toolkit for dense linear systems A·x = b:
// direct solution through inverses and LU factors, and iterative solution
// through the Jacobi and Gauss-Seidel methods.
//
// What is inside?
//
//	• Dense matrices with row operations, products and infinity norms
//	• Gauss-Jordan inverse and the condition number ‖A‖∞·‖A⁻¹‖∞
//	• Doolittle LU with forward and backward substitution
//	• Jacobi and Gauss-Seidel with a diagonal-dominance guard and lazy diagnostics
//	• Text reports, convergence charts and a file format for systems
//
// Layout:
//
//	matrix/           - Dense, row operations, Inverse, ConditionNumber, LU
//	iterative/        - Solver, Steps, Solve, Result
//	report/           - vector, matrix and iteration-table formatting
//	convergence/      - error-history charts (gonum/plot)
//	internal/sysfile/ - YAML and binary (.lsb) system files
//	cmd/linsolve/     - command-line front end
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{9, 1, 1}, {2, 10, 3}, {3, 4, 11}})
//	res, _ := iterative.SolveGaussSeidel(a, []float64{10, 19, 0})
//	if x, ok := res.Vector(); ok {
//		fmt.Println(report.FormatVector(x, 3)) // (1.000, 2.000, -1.000)
//	}
//
//	go install github.com/katalvlaran/linsolve/cmd/linsolve@latest
package linsolve
