package layers

import (
	"github.com/sdengine/sdecs"
	"github.com/sdengine/sdecs/layer"
	"github.com/sdengine/sdecs/render"
)

// MotionLayer integrates rigid bodies. Every update adds Acceleration*dt to
// the velocity and moves the transform by Velocity*dt.
type MotionLayer struct {
	layer.Base

	manager *sdecs.EntityManager
	query   *sdecs.Query
}

func NewMotionLayer(m *sdecs.EntityManager) *MotionLayer {
	return &MotionLayer{
		manager: m,
		query:   m.Query(sdecs.MaskOf2[render.Transform, render.RigidBody]()),
	}
}

func (l *MotionLayer) OnUpdate(dt float64) {
	transforms := sdecs.Store[render.Transform](l.manager)
	bodies := sdecs.Store[render.RigidBody](l.manager)
	if transforms == nil || bodies == nil {
		return
	}
	step := float32(dt)
	l.query.Reset()
	for l.query.Next() {
		index := l.query.Entity().Index
		body, _ := bodies.Get(index)
		t, _ := transforms.Get(index)
		body.Velocity = body.Velocity.Add(body.Acceleration.Mul(step))
		t.Translate(body.Velocity.Mul(step))
	}
}
