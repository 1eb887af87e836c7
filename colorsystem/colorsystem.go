package colorsystem

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrUnknownPreset     = errors.New("colorsystem: unknown preset")
	ErrUnknownIlluminant = errors.New("colorsystem: unknown illuminant")
	ErrBadChromaticity   = errors.New("colorsystem: malformed chromaticity pair")
)

// Chromaticity is a point (x, y) on the CIE 1931 chromaticity diagram.
type Chromaticity struct {
	X float64
	Y float64
}

// Z returns 1 - x - y.
func (c Chromaticity) Z() float64 {
	return 1.0 - c.X - c.Y
}

func (c Chromaticity) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// ColorSystem represents an RGB system by its primaries and reference white.
// Gamma is carried along for reference only; the matrix math ignores it.
type ColorSystem struct {
	Name  string
	Red   Chromaticity
	Green Chromaticity
	Blue  Chromaticity
	White Chromaticity
	Gamma float64
}

// GammaRec709 is the gamma recorded for every preset.
const GammaRec709 = 0.0

var (
	IlluminantC   = Chromaticity{0.3101, 0.3162}
	IlluminantD65 = Chromaticity{0.3127, 0.3291}
	IlluminantE   = Chromaticity{1.0 / 3.0, 1.0 / 3.0}
)

var (
	NTSC = ColorSystem{
		Name:  "NTSC",
		Red:   Chromaticity{0.67, 0.33},
		Green: Chromaticity{0.21, 0.71},
		Blue:  Chromaticity{0.14, 0.08},
		White: IlluminantC,
		Gamma: GammaRec709,
	}
	EBU = ColorSystem{
		Name:  "EBU",
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.29, 0.60},
		Blue:  Chromaticity{0.15, 0.06},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}
	SMPTE = ColorSystem{
		Name:  "SMPTE",
		Red:   Chromaticity{0.630, 0.340},
		Green: Chromaticity{0.310, 0.595},
		Blue:  Chromaticity{0.155, 0.070},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}
	HDTV = ColorSystem{
		Name:  "HDTV",
		Red:   Chromaticity{0.670, 0.330},
		Green: Chromaticity{0.210, 0.710},
		Blue:  Chromaticity{0.150, 0.060},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}
	CIE = ColorSystem{
		Name:  "CIE",
		Red:   Chromaticity{0.7355, 0.2645},
		Green: Chromaticity{0.2658, 0.7243},
		Blue:  Chromaticity{0.1669, 0.0085},
		White: IlluminantE,
		Gamma: GammaRec709,
	}
	Rec709 = ColorSystem{
		Name:  "Rec709",
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.30, 0.60},
		Blue:  Chromaticity{0.15, 0.06},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}
)

var presets = map[string]ColorSystem{
	"ntsc":   NTSC,
	"ebu":    EBU,
	"smpte":  SMPTE,
	"hdtv":   HDTV,
	"cie":    CIE,
	"rec709": Rec709,
}

var illuminants = map[string]Chromaticity{
	"c":   IlluminantC,
	"d65": IlluminantD65,
	"e":   IlluminantE,
}

type byName []ColorSystem

func (cs byName) Len() int           { return len(cs) }
func (cs byName) Less(i, j int) bool { return cs[i].Name < cs[j].Name }
func (cs byName) Swap(i, j int)      { cs[i], cs[j] = cs[j], cs[i] }

// Presets returns every predefined color system sorted by name.
func Presets() []ColorSystem {
	cs := make([]ColorSystem, 0, len(presets))
	for _, v := range presets {
		cs = append(cs, v)
	}
	sort.Sort(byName(cs))
	return cs
}

// Preset looks up a predefined color system by name, ignoring case.
func Preset(name string) (ColorSystem, error) {
	cs, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorSystem{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return cs, nil
}

// Illuminant looks up a named white point (C, D65 or E), ignoring case.
func Illuminant(name string) (Chromaticity, error) {
	c, ok := illuminants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Chromaticity{}, fmt.Errorf("%w: %q", ErrUnknownIlluminant, name)
	}
	return c, nil
}

// ParseChromaticity parses an "x,y" pair such as "0.3127,0.3291".
func ParseChromaticity(s string) (Chromaticity, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Chromaticity{}, fmt.Errorf("%w: %q", ErrBadChromaticity, s)
	}

	x, e := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if e != nil {
		return Chromaticity{}, fmt.Errorf("%w: %q: %v", ErrBadChromaticity, s, e)
	}
	y, e := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if e != nil {
		return Chromaticity{}, fmt.Errorf("%w: %q: %v", ErrBadChromaticity, s, e)
	}

	return Chromaticity{x, y}, nil
}

// Override describes replacements for parts of a color system. Nil fields
// keep the base value.
type Override struct {
	Name  string
	Red   *Chromaticity
	Green *Chromaticity
	Blue  *Chromaticity
	White *Chromaticity
	Gamma *float64
}

// Apply returns a copy of cs with the override applied.
func (o Override) Apply(cs ColorSystem) ColorSystem {
	out := cs
	if o.Name != "" {
		out.Name = o.Name
	}
	if o.Red != nil {
		out.Red = *o.Red
	}
	if o.Green != nil {
		out.Green = *o.Green
	}
	if o.Blue != nil {
		out.Blue = *o.Blue
	}
	if o.White != nil {
		out.White = *o.White
	}
	if o.Gamma != nil {
		out.Gamma = *o.Gamma
	}

	setDefaults(&out, cs)

	return out
}

// a system whose primaries were edited is no longer the named preset
func setDefaults(out *ColorSystem, base ColorSystem) {
	if out.Name == base.Name && *out != base {
		out.Name = base.Name + "*"
	}
}
