package layers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/sdengine/sdecs/layer"
)

// FrameStats summarizes one reporting window. AvgWallMS is the measured time
// between updates, which differs from AvgFrameMS when the loop runs on a
// fixed step.
type FrameStats struct {
	Frames     int
	FPS        float64
	AvgFrameMS float64
	AvgWallMS  float64
}

// PerformanceLayer reports frame statistics at Debug level once the
// accumulated frame time reaches Interval.
type PerformanceLayer struct {
	layer.Base

	Interval time.Duration

	logger  zerolog.Logger
	now     func() time.Time
	frames  int
	elapsed float64
	wall    time.Duration
	last    time.Time
	total   int
	report  FrameStats
}

// NewPerformanceLayer reports through logger every second of frame time.
func NewPerformanceLayer(logger zerolog.Logger) *PerformanceLayer {
	return &PerformanceLayer{
		Interval: time.Second,
		logger:   logger.With().Str("layer", "performance").Logger(),
		now:      time.Now,
	}
}

func (p *PerformanceLayer) OnUpdate(dt float64) {
	now := p.now()
	if !p.last.IsZero() {
		p.wall += now.Sub(p.last)
	}
	p.last = now
	p.frames++
	p.total++
	p.elapsed += dt

	if p.elapsed < p.Interval.Seconds() {
		return
	}
	p.report = FrameStats{
		Frames:     p.frames,
		FPS:        float64(p.frames) / p.elapsed,
		AvgFrameMS: p.elapsed * 1000 / float64(p.frames),
		AvgWallMS:  float64(p.wall.Microseconds()) / 1000 / float64(p.frames),
	}
	p.logger.Debug().
		Int("frames", p.report.Frames).
		Float64("fps", p.report.FPS).
		Float64("avg_ms", p.report.AvgFrameMS).
		Float64("avg_wall_ms", p.report.AvgWallMS).
		Msg("frame stats")
	p.frames = 0
	p.elapsed = 0
	p.wall = 0
}

// Last returns the most recent report. It is zero until the first interval
// has elapsed.
func (p *PerformanceLayer) Last() FrameStats {
	return p.report
}

// TotalFrames returns the number of updates seen since the layer was created.
func (p *PerformanceLayer) TotalFrames() int {
	return p.total
}

func (p *PerformanceLayer) OnActivate() {
	p.last = time.Time{}
}
