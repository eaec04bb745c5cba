package layout

import "testing"

func TestEdges(t *testing.T) {
	e := EdgeLTRB(1, 2, 3, 4)

	if e.Horizontal() != 4 {
		t.Errorf("Horizontal() = %d, want 4", e.Horizontal())
	}
	if e.Vertical() != 6 {
		t.Errorf("Vertical() = %d, want 6", e.Vertical())
	}
	if e.IsZero() {
		t.Error("IsZero() = true for non-zero edges")
	}
	if !(Edges{}).IsZero() {
		t.Error("IsZero() = false for zero edges")
	}
	if EdgeAll(2) != EdgeSymmetric(2, 2) {
		t.Errorf("EdgeAll(2) = %+v, EdgeSymmetric(2, 2) = %+v", EdgeAll(2), EdgeSymmetric(2, 2))
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 20, 20)
	b := NewRect(10, 5, 20, 20)

	if got := a.Intersect(b); got != NewRect(10, 5, 10, 15) {
		t.Errorf("Intersect() = %+v, want {10 5 10 15}", got)
	}
	if got := a.Intersect(NewRect(30, 30, 5, 5)); got != (Rect{}) {
		t.Errorf("Intersect() of disjoint = %+v, want empty", got)
	}
}

func TestRect_Intersects(t *testing.T) {
	type tc struct {
		a, b       Rect
		intersects bool
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:          NewRect(0, 0, 20, 20),
			b:          NewRect(10, 10, 20, 20),
			intersects: true,
		},
		"same rect": {
			a:          NewRect(10, 10, 20, 20),
			b:          NewRect(10, 10, 20, 20),
			intersects: true,
		},
		"one inside other": {
			a:          NewRect(0, 0, 100, 100),
			b:          NewRect(20, 20, 30, 30),
			intersects: true,
		},
		"adjacent horizontal (touching edges)": {
			a:          NewRect(0, 0, 10, 10),
			b:          NewRect(10, 0, 10, 10),
			intersects: false,
		},
		"adjacent vertical (touching edges)": {
			a:          NewRect(0, 0, 10, 10),
			b:          NewRect(0, 10, 10, 10),
			intersects: false,
		},
		"disjoint": {
			a:          NewRect(0, 0, 10, 10),
			b:          NewRect(50, 50, 10, 10),
			intersects: false,
		},
		"empty rect": {
			a:          NewRect(0, 0, 10, 10),
			b:          Rect{},
			intersects: false,
		},
		"zero width inside other": {
			a:          NewRect(0, 0, 10, 10),
			b:          NewRect(5, 5, 0, 3),
			intersects: false,
		},
		"both empty": {
			a:          Rect{},
			b:          Rect{},
			intersects: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.a.Intersects(tt.b)
			if got != tt.intersects {
				t.Errorf("Intersects() = %v, want %v", got, tt.intersects)
			}
			// Test commutativity
			got2 := tt.b.Intersects(tt.a)
			if got2 != tt.intersects {
				t.Errorf("Intersects() (reversed) = %v, want %v", got2, tt.intersects)
			}
		})
	}
}

func TestPoint(t *testing.T) {
	p1 := Point{X: 10, Y: 20}
	p2 := Point{X: 5, Y: 15}

	if sum := p1.Add(p2); sum != (Point{X: 15, Y: 35}) {
		t.Errorf("Add() = %+v, want {15 35}", sum)
	}
	if diff := p1.Sub(p2); diff != (Point{X: 5, Y: 5}) {
		t.Errorf("Sub() = %+v, want {5 5}", diff)
	}
	if !p1.In(NewRect(0, 0, 50, 50)) {
		t.Error("Point should be inside rect")
	}
	if p1.In(NewRect(0, 0, 10, 50)) {
		t.Error("Point on the right edge should be outside")
	}
}
