package constants_test

import (
	"fmt"

	"github.com/katalvlaran/scijo/constants"
)

func ExampleLookup() {
	c, err := constants.Lookup("elementary charge")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output:
	// elementary charge = 1.602176634e-19 C (exact)
}
