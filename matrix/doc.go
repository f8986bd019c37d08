// Package matrix provides the dense float64 matrices used by the outranking
// pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and a finite-only
//     numeric policy (NaN/±Inf are rejected on Set and Apply).
//   - FromRows for ingesting rectangular [][]float64 tables (score tables).
//   - Kernels: Add, Mean, Scale, Transpose, MatVec, RowSums, ColSums.
//   - Element-wise operations: Clip (clamp into [lo,hi]) and Round (fixed
//     decimal precision, half-to-even).
//
// All kernels allocate a fresh result and never mutate their operands, except
// Dense.Apply which is in-place by contract. Loops run in fixed i→j order so
// results are bit-for-bit reproducible.
package matrix
