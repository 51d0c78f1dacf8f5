package differentiate_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scijo/differentiate"
)

// ExampleDerivative differentiates sin at 1 with the eighth-order stencil.
func ExampleDerivative() {
	res, err := differentiate.Derivative(math.Sin, 1, differentiate.WithOrder(8))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.10f %v %d\n", res.Df, res.Converged, res.NFev)
	// Output:
	// 0.5403023059 true 32
}

// ExampleGradient differentiates sampled x².
func ExampleGradient() {
	d, _ := differentiate.Gradient([]float64{0, 1, 4, 9, 16}, 1)
	fmt.Println(d)
	// Output:
	// [0 2 4 6 8]
}
