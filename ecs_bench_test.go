package sdecs

import (
	"fmt"
	"testing"
)

type benchPosition struct{ X, Y float32 }
type benchVelocity struct{ VX, VY float32 }

var benchSizes = []int{1000, 10000, 100000}

func sizeName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

// Entity Creation Benchmarks
func BenchmarkCreateEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				m := NewEntityManager(WithInitialCapacity(size))
				b.StartTimer()
				for range size {
					m.Create()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkCreateDestroyRecycle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := NewEntityManager(WithInitialCapacity(size))
			ents := make([]Entity, size)
			for b.Loop() {
				for i := range ents {
					ents[i] = m.Create()
				}
				for _, e := range ents {
					_ = m.Destroy(e)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkAddComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				m := NewEntityManager(WithInitialCapacity(size))
				ents := make([]Entity, size)
				for i := range ents {
					ents[i] = m.Create()
				}
				b.StartTimer()
				for _, e := range ents {
					_ = AddComponent(m, e, benchPosition{X: 1})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkGetComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := NewEntityManager(WithInitialCapacity(size))
			ents := NewBuilder[benchPosition](m).NewEntities(size, benchPosition{X: 1})
			b.ResetTimer()
			for b.Loop() {
				for _, e := range ents {
					p, _ := GetComponent[benchPosition](m, e)
					p.X++
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkRemoveComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				m := NewEntityManager(WithInitialCapacity(size))
				ents := NewBuilder[benchPosition](m).NewEntities(size, benchPosition{})
				b.StartTimer()
				for _, e := range ents {
					_ = RemoveComponent[benchPosition](m, e)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkQueryIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := NewEntityManager(WithInitialCapacity(size))
			NewBuilder2[benchPosition, benchVelocity](m).NewEntities(size/2, benchPosition{}, benchVelocity{VX: 1})
			NewBuilder[benchPosition](m).NewEntities(size/2, benchPosition{})
			q := m.Query(MaskOf2[benchPosition, benchVelocity]())
			positions := Store[benchPosition](m)
			b.ResetTimer()
			for b.Loop() {
				q.Reset()
				for q.Next() {
					p, _ := positions.Get(q.Entity().Index)
					p.X++
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkFilterIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := NewEntityManager(WithInitialCapacity(size))
			NewBuilder[benchPosition](m).NewEntities(size, benchPosition{})
			f := NewFilter[benchPosition](m)
			b.ResetTimer()
			for b.Loop() {
				f.Reset()
				for f.Next() {
					f.Get().X++
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkDenseIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := NewEntityManager(WithInitialCapacity(size))
			NewBuilder[benchPosition](m).NewEntities(size, benchPosition{})
			store := Store[benchPosition](m)
			b.ResetTimer()
			for b.Loop() {
				dense := store.Dense()
				for i := range dense {
					dense[i].X++
				}
			}
			b.ReportAllocs()
		})
	}
}
