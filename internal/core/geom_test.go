package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{"positive", Pt(1, 2), Pt(3, 4), Pt(4, 6)},
		{"negative offset", Pt(5, 5), Pt(-2, -1), Pt(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
			// Addition is commutative
			if got := tc.b.Add(tc.a); got != tc.expected {
				t.Errorf("Add() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointDown(t *testing.T) {
	p := Pt(3, 7)
	if got := p.Down(2); got != Pt(3, 9) {
		t.Errorf("Down(2) = %v, expected (3, 9)", got)
	}
	if got := p.Down(0); got != p {
		t.Errorf("Down(0) = %v, expected %v", got, p)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}
