// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/sdengine/sdecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	count := 20
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

// run queries four component types over a population where only every
// other entity matches.
func run(rounds, iters, numEntities int) {
	for range rounds {
		m := sdecs.NewEntityManager(sdecs.WithInitialCapacity(numEntities))
		both := sdecs.NewBuilder2[comp1, comp2](m).NewEntities(numEntities, comp1{}, comp2{V: 1, W: 1})
		for i, e := range both {
			if i%2 == 0 {
				_ = sdecs.AddComponent(m, e, comp3{})
				_ = sdecs.AddComponent(m, e, comp4{})
			}
		}
		query := m.Query(sdecs.MaskOf4[comp1, comp2, comp3, comp4]())
		c1 := sdecs.Store[comp1](m)
		c2 := sdecs.Store[comp2](m)

		for range iters {
			query.Reset()
			for query.Next() {
				index := query.Entity().Index
				a, _ := c1.Get(index)
				b, _ := c2.Get(index)
				a.V += b.V
				a.W += b.W
			}
		}
	}
}
