// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

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

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

// run churns entities: every iteration creates a batch, walks it with a
// query and destroys it again, so freed slots are recycled.
func run(rounds, iters, numEntities int) {
	for range rounds {
		m := sdecs.NewEntityManager(sdecs.WithInitialCapacity(numEntities))
		query := m.Query(sdecs.MaskOf2[comp1, comp2]())
		batch := sdecs.NewBuilder2[comp1, comp2](m)
		entities := make([]sdecs.Entity, 0, numEntities)

		for range iters {
			batch.NewEntities(numEntities, comp1{}, comp2{V: 1, W: 2})
			c1 := sdecs.Store[comp1](m)
			c2 := sdecs.Store[comp2](m)
			entities = entities[:0]
			query.Reset()
			for query.Next() {
				e := query.Entity()
				entities = append(entities, e)
				a, _ := c1.Get(e.Index)
				b, _ := c2.Get(e.Index)
				a.V += b.V
				a.W += b.W
			}
			for _, e := range entities {
				_ = m.Destroy(e)
			}
		}
	}
}
