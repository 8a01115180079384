package daily_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/daily"
	"github.com/katalvlaran/wordladder/ladder"
)

// ExampleSelector_Select picks a pair 6–9 steps apart on a straight chain.
func ExampleSelector_Select() {
	words := chain(10)
	g := ladder.MustBuild(words...)

	p, _, err := daily.New(g, daily.WithSeed(7)).Select(context.Background(), words, daily.DefaultRange())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := g.Distance(p.Start, p.End)
	fmt.Println(d == p.Steps, p.Steps >= 6 && p.Steps <= 9)
	// Output:
	// true true
}
