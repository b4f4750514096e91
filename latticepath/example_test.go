package latticepath_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkit/latticepath"
)

// ExampleCountDP counts paths around a single obstacle.
//
//	. . .
//	. X .
//	. . .
//
// Only the two paths hugging the border avoid the centre.
func ExampleCountDP() {
	f := latticepath.Field{
		"...",
		".X.",
		"...",
	}
	n, err := latticepath.CountDP(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(n)
	// Output:
	// 2
}

// ExampleCountExhaustive shows the oracle agreeing with CountDP.
func ExampleCountExhaustive() {
	f := latticepath.Field{
		"....",
		"..X.",
		"....",
	}
	ex, _ := latticepath.CountExhaustive(f)
	dp, _ := latticepath.CountDP(f)
	fmt.Println(ex, dp)
	// Output:
	// 4 4
}
