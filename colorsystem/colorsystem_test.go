package colorsystem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetLookup(t *testing.T) {
	for _, name := range []string{"NTSC", "ebu", "Smpte", "HDTV", "cie", "REC709", " rec709 "} {
		cs, err := Preset(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, cs.Name)
	}

	cs, err := Preset("rec709")
	require.NoError(t, err)
	require.Equal(t, Rec709, cs)

	_, err = Preset("sRGB")
	require.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestPresetsSorted(t *testing.T) {
	var names []string
	for _, cs := range Presets() {
		names = append(names, cs.Name)
	}
	require.Equal(t, []string{"CIE", "EBU", "HDTV", "NTSC", "Rec709", "SMPTE"}, names)
}

func TestPresetWhitePoints(t *testing.T) {
	assert.Equal(t, IlluminantC, NTSC.White)
	assert.Equal(t, IlluminantE, CIE.White)
	for _, cs := range []ColorSystem{EBU, SMPTE, HDTV, Rec709} {
		assert.Equal(t, IlluminantD65, cs.White, cs.Name)
	}
	for _, cs := range Presets() {
		assert.Equal(t, GammaRec709, cs.Gamma, cs.Name)
	}
}

func TestChromaticityZ(t *testing.T) {
	assert.InDelta(t, 0.3582, IlluminantD65.Z(), 1e-12)
	assert.InDelta(t, 1.0/3.0, IlluminantE.Z(), 1e-12)
}

func TestIlluminant(t *testing.T) {
	c, err := Illuminant("d65")
	require.NoError(t, err)
	require.Equal(t, IlluminantD65, c)

	c, err = Illuminant("C")
	require.NoError(t, err)
	require.Equal(t, IlluminantC, c)

	_, err = Illuminant("D50")
	require.True(t, errors.Is(err, ErrUnknownIlluminant))
}

func TestParseChromaticity(t *testing.T) {
	c, err := ParseChromaticity("0.3127, 0.3291")
	require.NoError(t, err)
	require.Equal(t, Chromaticity{0.3127, 0.3291}, c)

	for _, bad := range []string{"", "0.3", "0.3,0.3,0.3", "a,0.3", "0.3,b"} {
		_, err := ParseChromaticity(bad)
		require.True(t, errors.Is(err, ErrBadChromaticity), "%q", bad)
	}
}

func TestOverrideApply(t *testing.T) {
	white := IlluminantD65
	out := Override{White: &white}.Apply(NTSC)
	assert.Equal(t, "NTSC*", out.Name)
	assert.Equal(t, IlluminantD65, out.White)
	assert.Equal(t, NTSC.Red, out.Red)

	// unchanged values keep the preset name
	same := NTSC.White
	assert.Equal(t, NTSC, Override{White: &same}.Apply(NTSC))

	gamma := 2.2
	named := Override{Name: "studio", Gamma: &gamma}.Apply(EBU)
	assert.Equal(t, "studio", named.Name)
	assert.Equal(t, 2.2, named.Gamma)
}
