// Package scene builds the point cloud drawn behind the home page hero.
package scene

import (
	"math"
	"math/rand"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Segment struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Mesh is a shell of points joined to their near neighbours, plus loose
// ambient particles around it.
type Mesh struct {
	Seed      int64     `json:"seed"`
	Points    []Point   `json:"points"`
	Segments  []Segment `json:"segments"`
	Particles []Point   `json:"particles"`
}

type Options struct {
	Points       int
	MinRadius    float64
	RadiusSpread float64
	LinkDistance float64
	MaxSegments  int
	Particles    int
	Box          Point
}

// DefaultOptions mirrors the look of the hero: 100 points, links under 1.0
// and at most 84 segments.
func DefaultOptions() Options {
	return Options{
		Points:       100,
		MinRadius:    1.8,
		RadiusSpread: 0.8,
		LinkDistance: 1.0,
		MaxSegments:  84,
		Particles:    50,
		Box:          Point{X: 10, Y: 6, Z: 5},
	}
}

// Generate builds a mesh. The same seed and options always give the same mesh.
func Generate(seed int64, opts Options) Mesh {
	rng := rand.New(rand.NewSource(seed))

	m := Mesh{
		Seed:      seed,
		Points:    make([]Point, opts.Points),
		Particles: make([]Point, opts.Particles),
	}

	for i := range m.Points {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		r := opts.MinRadius + rng.Float64()*opts.RadiusSpread

		m.Points[i] = Point{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Sin(phi) * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
	}

	// brute force is fine at this size
	for i := 0; i < len(m.Points) && len(m.Segments) < opts.MaxSegments; i++ {
		for j := i + 1; j < len(m.Points) && len(m.Segments) < opts.MaxSegments; j++ {
			if Distance(m.Points[i], m.Points[j]) < opts.LinkDistance {
				m.Segments = append(m.Segments, Segment{From: i, To: j})
			}
		}
	}

	for i := range m.Particles {
		m.Particles[i] = Point{
			X: (rng.Float64() - 0.5) * opts.Box.X,
			Y: (rng.Float64() - 0.5) * opts.Box.Y,
			Z: (rng.Float64() - 0.5) * opts.Box.Z,
		}
	}

	return m
}

func Distance(a, b Point) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
