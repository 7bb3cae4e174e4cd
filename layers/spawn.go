// Package layers holds the stock layers of the engine.
package layers

import (
	"math/rand/v2"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/sdengine/sdecs"
	"github.com/sdengine/sdecs/layer"
	"github.com/sdengine/sdecs/render"
)

// SpawnLayer creates and destroys renderable entities in response to input.
//
//   - Space spawns Count moving quads.
//   - Delete destroys the oldest entity still alive.
//   - A left click spawns one quad at the last cursor position.
type SpawnLayer struct {
	layer.Base

	Count    int
	Mesh     *render.Mesh
	Material *render.Material

	manager *sdecs.EntityManager
	logger  zerolog.Logger
	rng     *rand.Rand
	spawned []sdecs.Entity
	cursor  mgl32.Vec3
}

// NewSpawnLayer returns a layer that spawns count entities per key press.
// seed makes the initial velocities reproducible.
func NewSpawnLayer(m *sdecs.EntityManager, count int, seed uint64) *SpawnLayer {
	return &SpawnLayer{
		Count:    count,
		Mesh:     render.Quad(),
		Material: &render.Material{Name: "sprite", Shader: "textured"},
		manager:  m,
		logger:   m.Logger().With().Str("layer", "spawn").Logger(),
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Spawned returns the entities spawned by the layer that are not destroyed
// yet, oldest first.
func (s *SpawnLayer) Spawned() []sdecs.Entity {
	return s.spawned
}

func (s *SpawnLayer) OnEvent(ev layer.InputEvent) {
	switch ev := ev.(type) {
	case *layer.KeyPressed:
		switch ev.Key {
		case layer.KeySpace:
			for range s.Count {
				pos := mgl32.Vec3{s.rng.Float32()*20 - 10, s.rng.Float32()*20 - 10, 0}
				s.Spawn(pos, mgl32.Vec3{s.rng.Float32()*2 - 1, s.rng.Float32()*2 - 1, 0})
			}
			s.logger.Debug().Int("count", s.Count).Int("alive", s.manager.Len()).Msg("spawned")
			ev.SetHandled()
		case layer.KeyDelete:
			s.destroyOldest()
			ev.SetHandled()
		}
	case *layer.CursorPos:
		s.cursor = mgl32.Vec3{float32(ev.X), float32(ev.Y), 0}
	case *layer.MousePressed:
		if ev.Button == layer.MouseButtonLeft {
			s.Spawn(s.cursor, mgl32.Vec3{})
			ev.SetHandled()
		}
	}
}

// Spawn creates one renderable entity at pos moving with velocity.
func (s *SpawnLayer) Spawn(pos, velocity mgl32.Vec3) sdecs.Entity {
	e := s.manager.Create()
	// Adds on a fresh entity cannot fail.
	_ = sdecs.AddComponent(s.manager, e, render.NewTransform(pos))
	_ = sdecs.AddComponent(s.manager, e, render.StaticMesh{Mesh: s.Mesh})
	_ = sdecs.AddComponent(s.manager, e, render.Renderable{Material: s.Material})
	_ = sdecs.AddComponent(s.manager, e, render.RigidBody{Velocity: velocity})
	s.spawned = append(s.spawned, e)
	return e
}

func (s *SpawnLayer) destroyOldest() {
	for len(s.spawned) > 0 {
		e := s.spawned[0]
		s.spawned = slices.Delete(s.spawned, 0, 1)
		// Entities destroyed elsewhere are skipped.
		if s.manager.IsAlive(e) {
			_ = s.manager.Destroy(e)
			s.logger.Debug().Stringer("entity", e).Msg("destroyed oldest")
			return
		}
	}
}

func (s *SpawnLayer) OnDetach() {
	s.spawned = nil
}
