// Package gopoly provides a sparse univariate polynomial value type for Go.
//
// Design goals:
//   - Exact rational coefficients (math/big.Rat), no rounding in arithmetic
//   - Deterministic normalization: like terms merged in first-seen order,
//     zero terms stripped, exponents descending
//   - Pure arithmetic: Add, Sub, Mul and Neg never touch their operands
//   - Stable canonical text with Unicode superscript exponents
//   - AI/LLM friendly: JSON, LaTeX, and MCP-ready tool calls
//
// A freshly built Polynomial is not normalized. Construction keeps duplicate
// exponents, zero coefficients and the caller's order, so
//
//	p := gopoly.New(gopoly.T(1, 1), gopoly.T(3, 2), gopoly.T(2, 1), gopoly.T(5, 0))
//	p.Normalize() // 3x² + 3x + 5
//
// A Polynomial is not safe for concurrent mutation. Read-only methods may be
// called from several goroutines as long as nothing mutates the value.
package gopoly
