// Package promethee ranks alternatives with the PROMETHEE II outranking
// method.
//
// 🚀 What is PROMETHEE?
//
//	Given alternatives scored on several criteria, PROMETHEE compares every
//	ordered pair of alternatives on every criterion, turns each score
//	difference into a preference degree through the criterion's preference
//	curve (package curve), averages the weighted degrees across criteria and
//	derives, for each alternative, how strongly it outranks the others
//	(positive flow) and is outranked by them (negative flow). The net flow,
//	positive minus negative, yields a complete ranking.
//
// Pipeline (one Prioritize call):
//
//  1. Pairwise comparison: diff = s[j][i] − s[j][k] (goal max) or
//     s[j][k] − s[j][i] (goal min), rounded to DiffPrecision decimals.
//  2. Degree: curve.Degree(diff), clamped into [0,1].
//  3. Weighting: degree × weight of the criterion.
//  4. Aggregation: mean over criteria, rounded to AggregatePrecision decimals.
//  5. Flows: row and column sums of the aggregate matrix over (n−1).
//  6. Ranking: net flows sorted descending; ties keep input order.
//
// ⚙️ Usage:
//
//	price, _ := curve.NewLinear(40, 5)
//	quality := curve.NewUsual()
//	eng, err := promethee.New(
//	  []string{"A", "B", "C"},
//	  []promethee.Criterion{
//	    {Name: "price", Weight: 0.6, Goal: promethee.Minimize, Curve: price},
//	    {Name: "quality", Weight: 0.4, Goal: promethee.Maximize, Curve: quality},
//	  },
//	  promethee.WithLogger(logger),
//	)
//	out, err := eng.Prioritize([][]float64{
//	  {100, 120, 110}, // price per alternative
//	  {3, 5, 4},       // quality per alternative
//	})
//	fmt.Println(out.Ranking())
//
// Concurrency: an Engine has no internal locking. Prioritize and Aggregate
// only read engine state; UpdateWeights and SetWeight mutate it and must not
// run concurrently with them without external synchronization.
//
// Complexity: O(|criteria| × |alternatives|²) time and memory per call.
package promethee
