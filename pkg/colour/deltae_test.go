package colour

import (
	"math"
	"testing"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// Reference pairs from Sharma, Wu & Dalal, "The CIEDE2000 Color-Difference
// Formula: Implementation Notes, Supplementary Test Data, and Mathematical
// Observations" (2005). These exercise the blue region where the hue
// rotation term dominates.
func TestDeltaE_ReferencePairs(t *testing.T) {
	tests := []struct {
		name string
		lab1 Lab
		lab2 Lab
		want float64
	}{
		{
			name: "sharma pair 1",
			lab1: Lab{L: 50.0000, A: 2.6772, B: -79.7751},
			lab2: Lab{L: 50.0000, A: 0.0000, B: -82.7485},
			want: 2.0425,
		},
		{
			name: "sharma pair 2",
			lab1: Lab{L: 50.0000, A: 3.1571, B: -77.2803},
			lab2: Lab{L: 50.0000, A: 0.0000, B: -82.7485},
			want: 2.8615,
		},
		{
			name: "sharma pair 3",
			lab1: Lab{L: 50.0000, A: 2.8361, B: -74.0200},
			lab2: Lab{L: 50.0000, A: 0.0000, B: -82.7485},
			want: 3.4412,
		},
		{
			name: "black to white",
			lab1: Lab{L: 0, A: 0, B: 0},
			lab2: Lab{L: 100, A: 0, B: 0},
			want: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaE(tt.lab1, tt.lab2)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("DeltaE = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestDeltaE_Identity(t *testing.T) {
	points := []Lab{
		{L: 0, A: 0, B: 0},
		{L: 100, A: 0, B: 0},
		{L: 50, A: 2.5, B: 0},
		{L: 53.241, A: 80.092, B: 67.203},
		{L: 32.297, A: 79.188, B: -107.860},
		{L: 61.2, A: -34.7, B: 12.9},
	}

	for _, p := range points {
		if d := DeltaE(p, p); d > 1e-6 {
			t.Errorf("DeltaE(%+v, itself) = %g, want 0", p, d)
		}
	}
}

func TestDeltaE_Symmetry(t *testing.T) {
	pairs := [][2]Lab{
		{{L: 50, A: 2.6772, B: -79.7751}, {L: 50, A: 0, B: -82.7485}},
		{{L: 87.735, A: -86.183, B: 83.179}, {L: 32.297, A: 79.188, B: -107.860}},
		{{L: 10, A: 5, B: -3}, {L: 90, A: -40, B: 60}},
		{{L: 50, A: 0, B: 0}, {L: 50, A: -1, B: 2}},
	}

	for _, pair := range pairs {
		ab := DeltaE(pair[0], pair[1])
		ba := DeltaE(pair[1], pair[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("DeltaE not symmetric: %g vs %g for %+v", ab, ba, pair)
		}
		if ab < 0 {
			t.Errorf("DeltaE negative: %g for %+v", ab, pair)
		}
	}
}

// Cross-check against an independent CIEDE2000 implementation over a spread
// of Lab points, including neutral-axis and hue-wrap cases.
func TestDeltaE_AgreesWithChromath(t *testing.T) {
	points := []Lab{
		{L: 0, A: 0, B: 0},
		{L: 100, A: 0, B: 0},
		{L: 50, A: 2.5, B: 0},
		{L: 50, A: -1, B: 2},
		{L: 53.241, A: 80.092, B: 67.203},
		{L: 87.735, A: -86.183, B: 83.179},
		{L: 32.297, A: 79.188, B: -107.860},
		{L: 75.3, A: 12.4, B: -40.0},
		{L: 22.7, A: -18.3, B: 5.5},
	}

	for i, p1 := range points {
		for j, p2 := range points {
			if i == j {
				continue
			}
			got := DeltaE(p1, p2)
			want := deltae.CIE2000(
				chromath.Lab{p1.L, p1.A, p1.B},
				chromath.Lab{p2.L, p2.A, p2.B},
				&deltae.KLChDefault,
			)
			if math.Abs(got-want) > 1e-4 {
				t.Errorf("DeltaE(%+v, %+v) = %.6f, chromath says %.6f", p1, p2, got, want)
			}
		}
	}
}
