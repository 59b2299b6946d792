package terms_test

import (
	"fmt"

	"github.com/cwbudde/algo-epicycle/epicycle"
	"github.com/cwbudde/algo-epicycle/path"
	"github.com/cwbudde/algo-epicycle/stats/terms"
)

func ExampleCoverageCount() {
	g := path.NewGenerator(path.WithSamples(64))
	samples, err := g.Circle(1)
	if err != nil {
		panic(err)
	}

	p, err := path.New(samples)
	if err != nil {
		panic(err)
	}

	m := epicycle.FromPath(p)

	// Two terms carry all the energy of a circle.
	count, err := terms.CoverageCount(m, 0.99)
	if err != nil {
		panic(err)
	}
	fmt.Printf("terms for 99%% energy: %d\n", count)
	// Output:
	// terms for 99% energy: 2
}
