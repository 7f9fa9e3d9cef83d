package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/coverpack/knapsack"
	"github.com/katalvlaran/coverpack/model"
)

// benchInstance builds a reproducible n-item instance with capacity at
// half the total weight, the regime where the DP frontier is widest.
func benchInstance(b *testing.B, n int) *model.Knapsack {
	r := rand.New(rand.NewSource(int64(n)))
	values := make([]float64, n)
	weights := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		values[i] = float64(1 + r.Intn(100))
		weights[i] = float64(1 + r.Intn(100))
		total += weights[i]
	}
	m, err := model.NewKnapsack(values, weights, total/2)
	if err != nil {
		b.Fatalf("NewKnapsack failed: %v", err)
	}

	return m
}

func BenchmarkGreedy_1000(b *testing.B) {
	m := benchInstance(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		knapsack.Greedy(m)
	}
}

func BenchmarkExact_100(b *testing.B) {
	m := benchInstance(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		knapsack.Exact(m)
	}
}

func BenchmarkFPTAS_1000_Eps10(b *testing.B) {
	m := benchInstance(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := knapsack.FPTAS(m, 0.1); err != nil {
			b.Fatalf("FPTAS failed: %v", err)
		}
	}
}

func BenchmarkFractional_1000(b *testing.B) {
	m := benchInstance(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		knapsack.Fractional(m)
	}
}
