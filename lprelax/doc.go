// Package lprelax solves the continuous relaxation of covering and
// packing models — the integer program with integrality dropped — as a
// subroutine for rounding-based algorithms and for quality bounds.
//
// The actual linear programming is delegated to a Backend, a narrow
// contract any standards-compliant LP solver can satisfy. Two backends
// ship with the package:
//
//   - Simplex  — pure Go, built on gonum's optimize/convex/lp package;
//     dual values are recovered by solving the explicit dual program.
//   - LPSolve  — cgo bindings for lp_solve via github.com/costela/golpa,
//     compiled only under the "lpsolve" build tag; constraint duals are
//     not exposed by those bindings, so Result.Duals is nil from this
//     backend.
//
// Backend failures surface as errors wrapping ErrDelegation — they are
// never retried here; retry policy belongs to the caller. The call
// blocks until the backend returns; callers needing cancellation must
// wrap the call at this boundary.
package lprelax
