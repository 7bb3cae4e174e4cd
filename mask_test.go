package sdecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdengine/sdecs"
)

// go test -run ^TestMaskSetClear$ . -count 1
func TestMaskSetClear(t *testing.T) {
	var m sdecs.ComponentMask
	assert.True(t, m.Empty())
	assert.False(t, m.Has(3))

	m.Set(3).Set(70)
	assert.True(t, m.Has(3))
	assert.True(t, m.Has(70))
	assert.Equal(t, []sdecs.ComponentID{3, 70}, m.IDs())
	assert.Equal(t, 2, m.Count())

	m.Clear(3)
	assert.False(t, m.Has(3))
	m.Reset()
	assert.True(t, m.Empty())
}

// go test -run ^TestMaskContains$ . -count 1
func TestMaskContains(t *testing.T) {
	full := sdecs.NewMask(1, 2, 5)
	assert.True(t, full.Contains(sdecs.NewMask(1, 5)))
	assert.True(t, full.Contains(sdecs.NewMask()))
	assert.True(t, full.Contains(sdecs.ComponentMask{}))
	assert.False(t, full.Contains(sdecs.NewMask(1, 3)))
	assert.False(t, full.Contains(sdecs.NewMask(200)), "wider required mask")
	assert.False(t, sdecs.ComponentMask{}.Contains(sdecs.NewMask(0)))

	assert.True(t, full.Intersects(sdecs.NewMask(5, 9)))
	assert.False(t, full.Intersects(sdecs.NewMask(9)))
}

// go test -run ^TestMaskEqualAcrossWidths$ . -count 1
func TestMaskEqualAcrossWidths(t *testing.T) {
	narrow := sdecs.NewMask(1)
	wide := sdecs.NewMask(1, 150)
	wide.Clear(150)
	assert.True(t, narrow.Equal(wide))
	assert.False(t, narrow.Equal(sdecs.NewMask(2)))
}

// go test -run ^TestMaskClone$ . -count 1
func TestMaskClone(t *testing.T) {
	orig := sdecs.NewMask(1)
	cp := orig.Clone()
	cp.Set(2)
	assert.False(t, orig.Has(2))
	assert.True(t, cp.Has(2))
}

// go test -run ^TestMaskString$ . -count 1
func TestMaskString(t *testing.T) {
	m := sdecs.MaskOf2[Position, Velocity]()
	s := m.String()
	assert.Contains(t, s, "sdecs_test.Position")
	assert.Contains(t, s, "sdecs_test.Velocity")
	assert.Equal(t, "{}", sdecs.ComponentMask{}.String())
}
