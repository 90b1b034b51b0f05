package scene

import (
	"math"
	"testing"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(42, DefaultOptions())
	b := Generate(42, DefaultOptions())

	if len(a.Points) != len(b.Points) || len(a.Segments) != len(b.Segments) {
		t.Fatal("Expected identical meshes for the same seed")
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("Point %d differs: %+v vs %+v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestGenerateShape(t *testing.T) {
	opts := DefaultOptions()
	m := Generate(7, opts)

	if len(m.Points) != opts.Points {
		t.Errorf("Expected %d points, got %d", opts.Points, len(m.Points))
	}
	if len(m.Particles) != opts.Particles {
		t.Errorf("Expected %d particles, got %d", opts.Particles, len(m.Particles))
	}
	if len(m.Segments) > opts.MaxSegments {
		t.Errorf("Expected at most %d segments, got %d", opts.MaxSegments, len(m.Segments))
	}

	origin := Point{}
	for i, p := range m.Points {
		r := Distance(origin, p)
		if r < opts.MinRadius-1e-9 || r > opts.MinRadius+opts.RadiusSpread+1e-9 {
			t.Errorf("Point %d radius %.3f outside shell", i, r)
		}
	}

	for _, s := range m.Segments {
		if s.From >= s.To {
			t.Errorf("Segment %+v not ordered", s)
		}
		if d := Distance(m.Points[s.From], m.Points[s.To]); d >= opts.LinkDistance {
			t.Errorf("Segment %+v spans %.3f", s, d)
		}
	}

	for i, p := range m.Particles {
		if math.Abs(p.X) > opts.Box.X/2 || math.Abs(p.Y) > opts.Box.Y/2 || math.Abs(p.Z) > opts.Box.Z/2 {
			t.Errorf("Particle %d outside box: %+v", i, p)
		}
	}
}

func TestGenerateLinksEveryClosePairUnderCap(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxSegments = 1 << 20
	m := Generate(3, opts)

	want := 0
	for i := range m.Points {
		for j := i + 1; j < len(m.Points); j++ {
			if Distance(m.Points[i], m.Points[j]) < opts.LinkDistance {
				want++
			}
		}
	}
	if len(m.Segments) != want {
		t.Errorf("Expected %d segments, got %d", want, len(m.Segments))
	}
}

func TestDefaultCapStopsAtFiveHundredCoordinates(t *testing.T) {
	opts := DefaultOptions()
	m := Generate(7, opts)

	// the cap is checked before each segment adds its 6 coordinates
	want := (500 + 5) / 6
	if opts.MaxSegments != want {
		t.Errorf("Expected a cap of %d segments, got %d", want, opts.MaxSegments)
	}
	if len(m.Segments) != want {
		t.Errorf("Expected seed 7 to fill the cap with %d segments, got %d", want, len(m.Segments))
	}
	if coords := 6 * len(m.Segments); coords < 500 || coords-6 >= 500 {
		t.Errorf("Expected the last segment to cross 500 coordinates, got %d", coords)
	}
}
