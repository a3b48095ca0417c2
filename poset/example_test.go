package poset_test

import (
	"fmt"

	"github.com/katalvlaran/adelith/poset"
)

// ExampleDAG_Generations peels the diamond into its three layers.
func ExampleDAG_Generations() {
	d := poset.NewDiamond()

	fmt.Println("acyclic:", d.Validate())

	gens, err := d.Generations()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, layer := range gens {
		fmt.Printf("generation %d: %v\n", i, layer)
	}
	// Output:
	// acyclic: true
	// generation 0: [x0]
	// generation 1: [x1 x2]
	// generation 2: [x3]
}
