package vents_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2021/vents"
)

// benchField builds n axis-aligned or diagonal lines on a 1000×1000 grid.
func benchField(n int) *vents.Field {
	rng := rand.New(rand.NewSource(1))
	lines := make([]vents.Line, n)
	for i := range lines {
		x, y, d := rng.Intn(900), rng.Intn(900), rng.Intn(99)+1
		switch i % 3 {
		case 0:
			lines[i] = vents.Line{Start: vents.Point{X: x, Y: y}, End: vents.Point{X: x + d, Y: y}}
		case 1:
			lines[i] = vents.Line{Start: vents.Point{X: x, Y: y}, End: vents.Point{X: x, Y: y + d}}
		default:
			lines[i] = vents.Line{Start: vents.Point{X: x, Y: y}, End: vents.Point{X: x + d, Y: y + d}}
		}
	}
	return vents.NewDiagonalField(lines)
}

func BenchmarkField_Overlaps(b *testing.B) {
	f := benchField(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Overlaps()
	}
}
