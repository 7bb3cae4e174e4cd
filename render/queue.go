package render

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdengine/sdecs"
)

// DrawCommand is one entity's draw call for the current frame.
type DrawCommand struct {
	Entity   sdecs.Entity
	Mesh     *Mesh
	Material *Material
	Model    mgl32.Mat4
}

// Queue holds the draw commands of a frame. Its backing array is reused
// between frames.
type Queue struct {
	Commands []DrawCommand
}

// Reset empties the queue and keeps its capacity.
func (q *Queue) Reset() {
	clear(q.Commands)
	q.Commands = q.Commands[:0]
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	return len(q.Commands)
}

// Sort orders the commands by material and then by mesh so backends can
// batch state changes.
func (q *Queue) Sort() {
	slices.SortStableFunc(q.Commands, func(a, b DrawCommand) int {
		if c := cmp.Compare(a.Material.Name, b.Material.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Mesh.Name, b.Mesh.Name)
	})
}

// Collector fills a Queue from every entity matching RenderableMask.
type Collector struct {
	manager    *sdecs.EntityManager
	query      *sdecs.Query
	transforms *sdecs.SparseEntitySet[Transform]
	meshes     *sdecs.SparseEntitySet[StaticMesh]
	materials  *sdecs.SparseEntitySet[Renderable]
}

// NewCollector creates a collector bound to m.
func NewCollector(m *sdecs.EntityManager) *Collector {
	return &Collector{
		manager: m,
		query:   m.Query(RenderableMask()),
	}
}

// Collect resets q and appends one command per renderable entity. Entities
// whose mesh or material pointer is nil are skipped.
func (c *Collector) Collect(q *Queue) {
	q.Reset()
	c.bind()
	if c.transforms == nil || c.meshes == nil || c.materials == nil {
		return
	}
	c.query.Reset()
	for c.query.Next() {
		e := c.query.Entity()
		mesh, _ := c.meshes.Get(e.Index)
		mat, _ := c.materials.Get(e.Index)
		if mesh.Mesh == nil || mat.Material == nil {
			continue
		}
		t, _ := c.transforms.Get(e.Index)
		q.Commands = append(q.Commands, DrawCommand{
			Entity:   e,
			Mesh:     mesh.Mesh,
			Material: mat.Material,
			Model:    t.Matrix,
		})
	}
	q.Sort()
}

// bind looks up the stores that do not exist yet. Stores are created lazily
// by the manager on the first add of their type.
func (c *Collector) bind() {
	if c.transforms == nil {
		c.transforms = sdecs.Store[Transform](c.manager)
	}
	if c.meshes == nil {
		c.meshes = sdecs.Store[StaticMesh](c.manager)
	}
	if c.materials == nil {
		c.materials = sdecs.Store[Renderable](c.manager)
	}
}
