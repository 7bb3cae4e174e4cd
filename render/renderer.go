package render

import (
	"github.com/rs/zerolog"
)

// Renderer draws a collected frame. Implementations wrap a graphics backend.
type Renderer interface {
	Draw(q *Queue) error
}

// Recorder is a headless Renderer. It keeps the statistics of every frame
// it was handed and the commands of the last one.
type Recorder struct {
	Logger   zerolog.Logger
	Frames   int
	Draws    int
	Batches  int
	Last     []DrawCommand
	Vertices int
}

// Draw records q. A batch is a run of commands sharing material and mesh.
func (r *Recorder) Draw(q *Queue) error {
	r.Frames++
	r.Last = append(r.Last[:0], q.Commands...)

	batches := 0
	var prev *DrawCommand
	for i := range q.Commands {
		cmd := &q.Commands[i]
		if prev == nil || prev.Material != cmd.Material || prev.Mesh != cmd.Mesh {
			batches++
		}
		r.Vertices += len(cmd.Mesh.Vertices)
		prev = cmd
	}
	r.Draws += len(q.Commands)
	r.Batches += batches

	r.Logger.Trace().
		Int("frame", r.Frames).
		Int("draws", len(q.Commands)).
		Int("batches", batches).
		Msg("frame recorded")
	return nil
}
