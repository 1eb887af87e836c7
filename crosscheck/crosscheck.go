// Package crosscheck compares derived matrices with independent sRGB
// (Rec. 709 primaries, D65 white) implementations.
package crosscheck

import (
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mmuldo/colormatrix/matrix"
)

var (
	rgb2Xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	klch    = &deltae.KLChDefault
)

// probes are the primaries and white, in linear RGB.
var probes = []matrix.Vector3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
}

// Report holds the deviations of one derived result from the references.
// Matrix deviations are the largest absolute coefficient difference.
type Report struct {
	System string

	// go-colorful
	ColorfulForward float64
	ColorfulInverse float64

	// go-chromath
	ChromathForward float64
	// DeltaE is the largest CIEDE2000 difference over the probes.
	DeltaE float64
}

// Within reports whether every matrix deviation is at most tol.
func (r Report) Within(tol float64) bool {
	return r.ColorfulForward <= tol && r.ColorfulInverse <= tol && r.ChromathForward <= tol
}

// Against compares res, normalized to unit white luminance, with the sRGB
// matrices of go-colorful and go-chromath.
func Against(res *matrix.Result) Report {
	n := res.Normalized()
	return Report{
		System:          res.System.Name,
		ColorfulForward: n.Forward.MaxAbsDiff(ColorfulForward()),
		ColorfulInverse: n.Inverse.MaxAbsDiff(ColorfulInverse()),
		ChromathForward: n.Forward.MaxAbsDiff(ChromathForward()),
		DeltaE:          deltaE(n.Forward),
	}
}

// ColorfulForward returns go-colorful's linear sRGB to XYZ matrix.
func ColorfulForward() matrix.Matrix3x3 {
	return columns(func(v matrix.Vector3) matrix.Vector3 {
		x, y, z := colorful.LinearRgbToXyz(v[0], v[1], v[2])
		return matrix.Vector3{x, y, z}
	})
}

// ColorfulInverse returns go-colorful's XYZ to linear sRGB matrix.
func ColorfulInverse() matrix.Matrix3x3 {
	return columns(func(v matrix.Vector3) matrix.Vector3 {
		r, g, b := colorful.XyzToLinearRgb(v[0], v[1], v[2])
		return matrix.Vector3{r, g, b}
	})
}

// ChromathForward returns go-chromath's sRGB to XYZ matrix. Unit inputs
// are fixed points of the sRGB companding curve, so the columns are linear.
func ChromathForward() matrix.Matrix3x3 {
	return columns(func(v matrix.Vector3) matrix.Vector3 {
		xyz := rgb2Xyz.Convert(chromath.RGB{v[0], v[1], v[2]})
		return matrix.Vector3{xyz[0], xyz[1], xyz[2]}
	})
}

// columns builds a matrix from a linear map by probing the unit vectors.
func columns(f func(matrix.Vector3) matrix.Vector3) matrix.Matrix3x3 {
	var m matrix.Matrix3x3
	for j := 0; j < 3; j++ {
		var e matrix.Vector3
		e[j] = 1
		c := f(e)
		m[j], m[3+j], m[6+j] = c[0], c[1], c[2]
	}
	return m
}

func deltaE(fwd matrix.Matrix3x3) float64 {
	d := 0.0
	for _, p := range probes {
		got := fwd.Apply(p)
		want := rgb2Xyz.Convert(chromath.RGB{p[0], p[1], p[2]})
		d = math.Max(d, deltae.CIE2000(lab2Xyz.Invert(chromath.XYZ{got[0], got[1], got[2]}), lab2Xyz.Invert(want), klch))
	}
	return d
}
