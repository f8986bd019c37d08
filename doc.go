// Package mcda is a multi-criteria decision analysis toolkit built around the
// PROMETHEE II outranking method.
//
// 🚀 What is mcda?
//
//	A small, deterministic library that ranks alternatives scored on several
//	criteria:
//		• Preference curves: usual, u-shape, v-shape, linear, level,
//		  v-shape with indifference, gaussian
//		• Dense matrices: row-major storage, finite-only policy, kernels
//		• Decision engine: pairwise comparison, weighted aggregation,
//		  positive/negative/net flows and a complete ranking
//		• Observability: slog logging and Prometheus collectors
//
// Under the hood, everything is organized under four subpackages:
//
//	curve/     — preference curve family and the Curve interface
//	matrix/    — Dense matrix, Mean/Scale/Clip/Round kernels, Row/Col sums
//	promethee/ — Engine, Criterion, Output and the outranking pipeline
//	metrics/   — Recorder backed by github.com/prometheus/client_golang
//
// Quick example:
//
//	eng, _ := promethee.New(
//		[]string{"A", "B"},
//		[]promethee.Criterion{{Name: "price", Weight: 1, Goal: promethee.Minimize, Curve: curve.NewUsual()}},
//	)
//	out, _ := eng.Prioritize([][]float64{{10, 12}})
//	fmt.Println(out.Ranking()) // [A B]
//
// See examples/ for a runnable supplier-selection walkthrough.
//
//	go get github.com/katalvlaran/mcda
package mcda
