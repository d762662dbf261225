package colour

import "math"

// Parametric weighting factors. The reference implementation of CIEDE2000
// sets all three to unity, and every gating threshold in the classifier is
// tuned against that reference metric.
const (
	kL = 1.0
	kC = 1.0
	kH = 1.0
)

// pow25To7 is 25^7, a constant appearing in the chroma rotation terms.
const pow25To7 = 6103515625.0

// DeltaE returns the CIEDE2000 colour difference between two Lab points.
// The result is non-negative and symmetric in its arguments; identical
// points yield 0. Larger values mean more visually distinct colours.
func DeltaE(lab1, lab2 Lab) float64 {
	deg360 := degToRad(360)
	deg180 := degToRad(180)

	// Step 1: chroma-dependent rescaling of the a axis.
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	barC := (c1 + c2) / 2.0
	g := 0.5 * (1 - math.Sqrt(math.Pow(barC, 7)/(math.Pow(barC, 7)+pow25To7)))

	a1Prime := (1 + g) * lab1.A
	a2Prime := (1 + g) * lab2.A
	c1Prime := math.Hypot(a1Prime, lab1.B)
	c2Prime := math.Hypot(a2Prime, lab2.B)
	h1Prime := hueAngle(lab1.B, a1Prime)
	h2Prime := hueAngle(lab2.B, a2Prime)

	// Step 2: lightness, chroma and hue deltas. The hue delta needs its own
	// branch rules so the shorter way around the hue circle is always taken.
	deltaLPrime := lab2.L - lab1.L
	deltaCPrime := c2Prime - c1Prime

	var deltahPrime float64
	cPrimeProduct := c1Prime * c2Prime
	if cPrimeProduct != 0 {
		deltahPrime = h2Prime - h1Prime
		if deltahPrime < -deg180 {
			deltahPrime += deg360
		} else if deltahPrime > deg180 {
			deltahPrime -= deg360
		}
	}
	deltaHPrime := 2.0 * math.Sqrt(cPrimeProduct) * math.Sin(deltahPrime/2.0)

	// Step 3: arithmetic means, with the hue mean folded back into a single
	// revolution. When either chroma is zero the hue mean degenerates to the
	// plain sum, matching the published definition.
	barLPrime := (lab1.L + lab2.L) / 2.0
	barCPrime := (c1Prime + c2Prime) / 2.0

	hPrimeSum := h1Prime + h2Prime
	barhPrime := hPrimeSum
	if cPrimeProduct != 0 {
		switch {
		case math.Abs(h1Prime-h2Prime) <= deg180:
			barhPrime = hPrimeSum / 2.0
		case hPrimeSum < deg360:
			barhPrime = (hPrimeSum + deg360) / 2.0
		default:
			barhPrime = (hPrimeSum - deg360) / 2.0
		}
	}

	t := 1.0 -
		0.17*math.Cos(barhPrime-degToRad(30)) +
		0.24*math.Cos(2*barhPrime) +
		0.32*math.Cos(3*barhPrime+degToRad(6)) -
		0.20*math.Cos(4*barhPrime-degToRad(63))

	deltaTheta := degToRad(30) * math.Exp(-math.Pow((barhPrime-degToRad(275))/degToRad(25), 2))
	rc := 2.0 * math.Sqrt(math.Pow(barCPrime, 7)/(math.Pow(barCPrime, 7)+pow25To7))
	sl := 1 + (0.015*math.Pow(barLPrime-50, 2))/math.Sqrt(20+math.Pow(barLPrime-50, 2))
	sc := 1 + 0.045*barCPrime
	sh := 1 + 0.015*barCPrime*t
	rt := -math.Sin(2*deltaTheta) * rc

	return math.Sqrt(
		math.Pow(deltaLPrime/(kL*sl), 2) +
			math.Pow(deltaCPrime/(kC*sc), 2) +
			math.Pow(deltaHPrime/(kH*sh), 2) +
			rt*(deltaCPrime/(kC*sc))*(deltaHPrime/(kH*sh)))
}

// hueAngle returns atan2(b, aPrime) normalised to [0, 2pi). The angle of a
// neutral axis point (both components zero) is defined as 0.
func hueAngle(b, aPrime float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}
	h := math.Atan2(b, aPrime)
	if h < 0 {
		h += degToRad(360)
	}
	return h
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
