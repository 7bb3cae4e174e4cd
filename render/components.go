// Package render is the boundary between the entity manager and a rendering
// backend. It defines the renderable components, collects them into a draw
// queue once per frame and hands the queue to a Renderer.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdengine/sdecs"
)

// Vertex is one vertex of a mesh.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Mesh is CPU-side geometry. Backends upload it on first use.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Material names the shader and textures a mesh is drawn with.
type Material struct {
	Name     string
	Shader   string
	Textures map[string]string
}

// Transform places an entity in the world.
type Transform struct {
	Matrix mgl32.Mat4
}

// StaticMesh attaches shared geometry to an entity.
type StaticMesh struct {
	Mesh *Mesh
}

// Renderable attaches a shared material to an entity.
type Renderable struct {
	Material *Material
}

// RigidBody holds the linear motion state of an entity.
type RigidBody struct {
	Velocity     mgl32.Vec3
	Acceleration mgl32.Vec3
	Force        mgl32.Vec3
	Moment       mgl32.Vec3
}

// NewTransform returns a transform translated to pos.
func NewTransform(pos mgl32.Vec3) Transform {
	return Transform{Matrix: mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())}
}

// Translation returns the translation part of the transform.
func (t Transform) Translation() mgl32.Vec3 {
	return t.Matrix.Col(3).Vec3()
}

// Translate moves the transform by d in world space.
func (t *Transform) Translate(d mgl32.Vec3) {
	t.Matrix = mgl32.Translate3D(d.X(), d.Y(), d.Z()).Mul4(t.Matrix)
}

// RenderableMask is the mask an entity needs to be drawn.
func RenderableMask() sdecs.ComponentMask {
	return sdecs.MaskOf3[Transform, StaticMesh, Renderable]()
}

// Quad returns a unit quad in the XY plane, centered on the origin.
func Quad() *Mesh {
	return &Mesh{
		Name: "quad",
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-0.5, -0.5, 0}, TexCoord: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{0.5, -0.5, 0}, TexCoord: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{0.5, 0.5, 0}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-0.5, 0.5, 0}, TexCoord: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}
}
