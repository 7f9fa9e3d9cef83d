// Package minknapsack_test provides runnable examples for the covering
// knapsack solvers, showing both code and expected output.
package minknapsack_test

import (
	"fmt"

	"github.com/katalvlaran/coverpack/minknapsack"
	"github.com/katalvlaran/coverpack/model"
)

// ExampleGreedy demonstrates the trimmed ratio fill: items of cost
// 3, 4, 1 and weight 4, 5, 2 must jointly weigh at least 5. The fill
// takes items 2 and 0 (best cost per unit first) for total cost 4.
// Complexity: O(n log n).
func ExampleGreedy() {
	// 1) Build and validate the instance.
	m, err := model.NewMinKnapsack([]float64{3, 4, 1}, []float64{4, 5, 2}, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run the 2-approximation. Here it happens to hit the optimum.
	s := minknapsack.Greedy(m)

	fmt.Printf("selected=%v cost=%.0f status=%s\n", s.Selected, s.Objective, s.Status)
	// Output: selected=[0 2] cost=4 status=approximate
}

// ExampleGRASP demonstrates the randomized multi-restart search.
// Seeds fix every random draw, so runs are reproducible.
// Complexity: O(Restarts·n²).
func ExampleGRASP() {
	// 1) Same instance as ExampleGreedy.
	m, err := model.NewMinKnapsack([]float64{3, 4, 1}, []float64{4, 5, 2}, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run with the default configuration (16 restarts, α = 0.8,
	//    default seed). The instance optimum is cost 4.
	s, err := minknapsack.GRASP(m, minknapsack.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%.0f\n", s.Objective)
	// Output: cost=4
}
