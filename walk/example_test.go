package walk_test

import (
	"fmt"

	"github.com/katalvlaran/knotwalk/walk"
)

// ExampleSampler draws one reproducible closed lattice walk.
func ExampleSampler() {
	s := walk.NewSampler(16)
	w, _, err := s.Sample(walk.RNGFromSeed(2024))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("edges:", w.Edges())
	fmt.Println("closed:", w[0] == w[len(w)-1])
	// Output:
	// edges: 16
	// closed: true
}
