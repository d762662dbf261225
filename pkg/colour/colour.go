// Package colour provides colour space conversion and perceptual colour
// difference primitives. All distance comparisons in drapely happen in CIE
// Lab space, which these functions derive from device sRGB values.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents a device colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// XYZ represents CIE tristimulus values scaled to 0-100.
// It is a transient intermediate between sRGB and Lab.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// Lab represents a colour in CIE L*a*b* space: L is lightness (0-100),
// a and b are the green-red and blue-yellow chroma axes.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// HexToRGB parses a hex colour string into RGB. It accepts "#RRGGBB" or the
// three-digit shorthand "#RGB" (case-insensitive, leading "#" optional);
// shorthand digits are expanded by doubling each nibble. The second return
// value is false if the string is not a valid hex colour.
func HexToRGB(hex string) (RGB, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand "abc" to "aabbcc".
	if len(s) == 3 {
		var b strings.Builder
		for _, c := range s {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		s = b.String()
	}

	if len(s) != 6 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// D65 reference white point used for Lab normalisation.
const (
	refWhiteX = 95.047
	refWhiteY = 100.0
	refWhiteZ = 108.883
)

// RGBToXYZ converts an sRGB colour to CIE XYZ (D65, 0-100 scale) by
// linearising each channel with the sRGB inverse gamma curve and applying
// the standard sRGB-to-XYZ matrix.
func RGBToXYZ(rgb RGB) XYZ {
	r := linearise(float64(rgb.R) / 255.0)
	g := linearise(float64(rgb.G) / 255.0)
	b := linearise(float64(rgb.B) / 255.0)

	return XYZ{
		X: (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100,
		Y: (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100,
		Z: (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100,
	}
}

// linearise applies the sRGB inverse gamma curve to a channel in [0, 1].
func linearise(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// XYZToLab converts CIE XYZ (0-100 scale) to Lab using the D65 white point.
func XYZToLab(xyz XYZ) Lab {
	fx := labF(xyz.X / refWhiteX)
	fy := labF(xyz.Y / refWhiteY)
	fz := labF(xyz.Z / refWhiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// labF is the Lab transfer function: a cube root above (6/29)^3 and a
// linear segment below it.
func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// HexToLab converts a hex colour string directly to Lab. The second return
// value is false if the hex string is malformed.
func HexToLab(hex string) (Lab, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return Lab{}, false
	}
	return XYZToLab(RGBToXYZ(rgb)), true
}
