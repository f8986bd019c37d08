package promethee_test

import (
	"fmt"

	"github.com/katalvlaran/mcda/curve"
	"github.com/katalvlaran/mcda/promethee"
)

// ExampleEngine_Prioritize ranks three offers on price (lower is better) and
// quality (higher is better).
func ExampleEngine_Prioritize() {
	eng, err := promethee.New(
		[]string{"A", "B", "C"},
		[]promethee.Criterion{
			{Name: "price", Weight: 0.6, Goal: promethee.Minimize, Curve: curve.NewUsual()},
			{Name: "quality", Weight: 0.4, Goal: promethee.Maximize, Curve: curve.NewUsual()},
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, err := eng.Prioritize([][]float64{
		{10, 20, 15}, // price
		{3, 5, 4},    // quality
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range out.Net {
		fmt.Printf("%s %.3f\n", p.Alternative, p.Value)
	}
	// Output:
	// A 0.100
	// C 0.000
	// B -0.100
}

// ExampleEngine_UpdateWeights re-ranks the same offers after shifting weight
// towards quality.
func ExampleEngine_UpdateWeights() {
	eng, _ := promethee.New(
		[]string{"A", "B", "C"},
		[]promethee.Criterion{
			{Name: "price", Weight: 0.6, Goal: promethee.Minimize, Curve: curve.NewUsual()},
			{Name: "quality", Weight: 0.4, Goal: promethee.Maximize, Curve: curve.NewUsual()},
		},
	)
	if err := eng.UpdateWeights([]float64{0.1, 0.9}); err != nil {
		fmt.Println(err)
		return
	}
	out, _ := eng.Prioritize([][]float64{{10, 20, 15}, {3, 5, 4}})
	fmt.Println(out.Ranking())

	fmt.Println(eng.UpdateWeights([]float64{1}))
	// Output:
	// [B C A]
	// UpdateWeights: got 1, want 2: promethee: number of weights does not match number of criteria
}
