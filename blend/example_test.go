package blend_test

import (
	"fmt"

	"github.com/cwbudde/algo-blend/blend"
)

func ExampleScreen() {
	fmt.Printf("%.4f\n", blend.Screen(10, 5))
	fmt.Println(blend.Screen(0, 42), blend.Screen(255, 42))
	// Output:
	// 14.8039
	// 42 255
}

func ExampleExecute() {
	src1 := []float64{10, 20, 30, 40, 50}
	src2 := []float64{5, 15, 25, 35, 45}
	dst := make([]float64, len(src1))

	// One packet of four lanes plus a one-sample tail.
	if err := blend.Execute(blend.StrategyVectorized, dst, src1, src2, 4); err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range dst {
		fmt.Printf("%.2f ", v)
	}
	fmt.Println()
	// Output:
	// 14.80 33.82 52.06 69.51 86.18
}
