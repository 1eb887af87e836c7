package matrix

import (
	"math"

	"github.com/mmuldo/colormatrix/colorsystem"
)

// Epsilon is the smallest magnitude accepted for a y coordinate or a
// determinant before the input is treated as degenerate.
const Epsilon = 1e-10

// Result holds the matrices derived for one color system.
type Result struct {
	System  colorsystem.ColorSystem
	Forward Matrix3x3 // RGB -> XYZ
	Inverse Matrix3x3 // XYZ -> RGB
}

// Compute derives the RGB to XYZ matrix of cs and its inverse.
//
// The forward matrix maps RGB = (1, 1, 1) to the white point's (x, y, z)
// rather than to Y = 1; see Result.Normalized for the unit-luminance form.
func Compute(cs colorsystem.ColorSystem) (*Result, error) {
	if err := validate(cs); err != nil {
		return nil, err
	}

	xr, yr := cs.Red.X, cs.Red.Y
	zr := 1.0 - (xr + yr)
	xg, yg := cs.Green.X, cs.Green.Y
	zg := 1.0 - (xg + yg)
	xb, yb := cs.Blue.X, cs.Blue.Y
	zb := 1.0 - (xb + yb)

	xw, yw := cs.White.X, cs.White.Y
	zw := 1.0 - xw - yw

	// X/Y and Z/Y of each primary, Y taken as 1
	Xr, Xg, Xb := xr/yr, xg/yg, xb/yb
	Zr, Zg, Zb := zr/yr, zg/yg, zb/yb

	detN := Xr*(Zb-Zg) - Xg*(Zb-Zr) + Xb*(Zg-Zr)
	if math.Abs(detN) < Epsilon {
		return nil, &DegenerateInputError{StagePrimaries, "primaries are collinear", detN}
	}
	detNrecip := 1.0 / detN

	n := Matrix3x3{
		detNrecip * (Zb - Zg), detNrecip * (Xb*Zg - Xg*Zb), detNrecip * (Xg - Xb),
		detNrecip * (Zr - Zb), detNrecip * (Xr*Zb - Xb*Zr), detNrecip * (Xb - Xr),
		detNrecip * (Zg - Zr), detNrecip * (Xg*Zr - Xr*Zg), detNrecip * (Xr - Xg),
	}

	s := n.Apply(Vector3{xw, yw, zw})
	sr, sg, sb := s[0], s[1], s[2]

	fwd := Matrix3x3{
		sr * Xr, sg * Xg, sb * Xb,
		sr, sg, sb,
		sr * Zr, sg * Zg, sb * Zb,
	}

	sMul := sr * sg * sb
	detM := sMul*Xr*(Zb-Zg) - sMul*Xg*(Zb-Zr) + sMul*Xb*(Zg-Zr)
	if math.Abs(detM) < Epsilon || math.IsNaN(detM) {
		return nil, &DegenerateInputError{StageForward, "forward matrix is singular", detM}
	}
	detMrecip := 1.0 / detM

	inv := Matrix3x3{
		detMrecip * sg * sb * (Zb - Zg),
		detMrecip * sg * sb * (Xb*Zg - Xg*Zb),
		detMrecip * sg * sb * (Xg - Xb),

		detMrecip * sb * sr * (Zr - Zb),
		detMrecip * sb * sr * (Xr*Zb - Xb*Zr),
		detMrecip * sb * sr * (Xb - Xr),

		detMrecip * sg * sr * (Zg - Zr),
		detMrecip * sg * sr * (Xg*Zr - Xr*Zg),
		detMrecip * sg * sr * (Xr - Xg),
	}

	if !fwd.IsFinite() || !inv.IsFinite() {
		return nil, &DegenerateInputError{StageForward, "derived matrix is not finite", detM}
	}

	return &Result{System: cs, Forward: fwd, Inverse: inv}, nil
}

// Normalized returns a copy of r scaled so that RGB = (1, 1, 1) maps to a
// white of luminance Y = 1, the form found in published RGB/XYZ tables.
func (r *Result) Normalized() *Result {
	yw := r.System.White.Y
	return &Result{
		System:  r.System,
		Forward: r.Forward.Scale(1.0 / yw),
		Inverse: r.Inverse.Scale(yw),
	}
}

// RoundTrip returns Forward * Inverse, which is the identity for any
// successfully computed result.
func (r *Result) RoundTrip() Matrix3x3 {
	return r.Forward.Multiply(r.Inverse)
}

func validate(cs colorsystem.ColorSystem) error {
	points := []struct {
		name string
		c    colorsystem.Chromaticity
	}{
		{"red", cs.Red},
		{"green", cs.Green},
		{"blue", cs.Blue},
		{"white", cs.White},
	}

	for _, p := range points {
		for _, v := range []float64{p.c.X, p.c.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &DegenerateInputError{StageChromaticity, p.name + " coordinate is not finite", v}
			}
		}
		if math.Abs(p.c.Y) < Epsilon {
			return &DegenerateInputError{StageChromaticity, p.name + " y coordinate is zero", p.c.Y}
		}
	}

	return nil
}
