package cmd

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/colormatrix/colorsystem"
	"github.com/mmuldo/colormatrix/matrix"
	"github.com/mmuldo/colormatrix/render"
)

const testConfig = `
preset: studio
precision: 4
systems:
  studio:
    red: 0.68,0.32
    green: 0.265,0.69
    blue: 0.15,0.06
    illuminant: D65
    gamma: 2.6
  bt2020:
    red: 0.708,0.292
    green: 0.170,0.797
    blue: 0.131,0.046
    white: 0.3127,0.3291
`

const brokenConfig = `
systems:
  broken:
    red: "0.68"
    green: 0.265,0.69
    blue: 0.15,0.06
    white: 0.3127,0.3291
`

func TestMain(m *testing.M) {
	logger.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

func loadConfig(t *testing.T, cfg string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	if cfg == "" {
		return
	}
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(cfg)))
}

func TestRunCompute_DefaultsToCIE(t *testing.T) {
	loadConfig(t, "")

	var buf bytes.Buffer
	require.NoError(t, runCompute(&buf, &options{}))

	want := "6.863515 -2.500103 -1.363412\n" +
		"-1.534954 4.268275 0.266679\n" +
		"0.017161 -0.047721 3.030559\n"
	require.Equal(t, want, buf.String())
}

func TestRunCompute_PresetAndOverrides(t *testing.T) {
	loadConfig(t, "")

	var buf bytes.Buffer
	require.NoError(t, runCompute(&buf, &options{preset: "rec709"}))
	assert.True(t, strings.HasPrefix(buf.String(), "9.854084 -4.674373 -1.516013\n"))

	// EBU with the green primary of Rec709 is Rec709
	buf.Reset()
	require.NoError(t, runCompute(&buf, &options{preset: "EBU", green: "0.30,0.60"}))
	assert.True(t, strings.HasPrefix(buf.String(), "9.854084 -4.674373 -1.516013\n"))

	// --white wins over --illuminant
	cs, err := resolveSystem(&options{preset: "ntsc", illuminant: "E", white: "0.3127,0.3291"})
	require.NoError(t, err)
	assert.Equal(t, colorsystem.IlluminantD65, cs.White)
	assert.Equal(t, "NTSC*", cs.Name)

	cs, err = resolveSystem(&options{preset: "ntsc", illuminant: "E"})
	require.NoError(t, err)
	assert.Equal(t, colorsystem.IlluminantE, cs.White)
}

func TestRunCompute_Normalized(t *testing.T) {
	loadConfig(t, "")

	var buf bytes.Buffer
	require.NoError(t, runCompute(&buf, &options{preset: "Rec709", normalize: true, precision: 3}))
	assert.True(t, strings.HasPrefix(buf.String(), "3.243 -1.538 -0.499\n"), buf.String())
}

func TestRunCompute_Errors(t *testing.T) {
	loadConfig(t, "")

	err := runCompute(&bytes.Buffer{}, &options{preset: "sRGB"})
	assert.True(t, errors.Is(err, colorsystem.ErrUnknownPreset))

	err = runCompute(&bytes.Buffer{}, &options{red: "0.64"})
	assert.True(t, errors.Is(err, colorsystem.ErrBadChromaticity))

	err = runCompute(&bytes.Buffer{}, &options{illuminant: "D50"})
	assert.True(t, errors.Is(err, colorsystem.ErrUnknownIlluminant))

	err = runCompute(&bytes.Buffer{}, &options{preset: "HDTV", green: "0.67,0.33"})
	assert.True(t, errors.Is(err, matrix.ErrDegenerateInput))

	err = runCompute(&bytes.Buffer{}, &options{format: "yaml"})
	assert.True(t, errors.Is(err, render.ErrUnknownFormat))
}

func TestRunCompute_ConfiguredSystem(t *testing.T) {
	loadConfig(t, testConfig)

	o := &options{}
	setDefaults(o)
	cs, err := resolveSystem(o)
	require.NoError(t, err)
	assert.Equal(t, "studio", cs.Name)
	assert.Equal(t, colorsystem.IlluminantD65, cs.White)
	assert.Equal(t, 2.6, cs.Gamma)
	assert.Equal(t, 4, o.precision)

	var buf bytes.Buffer
	require.NoError(t, runCompute(&buf, &options{}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		for _, f := range strings.Fields(l) {
			// four decimal places from the config file
			assert.Len(t, f[strings.Index(f, ".")+1:], 4, l)
		}
	}
}

func TestConfiguredSystems_Malformed(t *testing.T) {
	loadConfig(t, brokenConfig)

	_, err := configuredSystems()
	require.True(t, errors.Is(err, colorsystem.ErrBadChromaticity))

	loadConfig(t, "systems:\n  nowhite:\n    red: 0.6,0.3\n    green: 0.3,0.6\n    blue: 0.15,0.06\n")
	_, err = configuredSystems()
	require.True(t, errors.Is(err, colorsystem.ErrBadChromaticity))
}

func TestListPresets(t *testing.T) {
	loadConfig(t, testConfig)

	var buf bytes.Buffer
	require.NoError(t, listPresets(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+6+2)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "CIE "))
	assert.True(t, strings.HasPrefix(lines[7], "bt2020 "))
	assert.True(t, strings.HasPrefix(lines[8], "studio "))
	assert.Contains(t, lines[8], "2.6")
}

func TestRunCheck(t *testing.T) {
	loadConfig(t, "")

	var buf bytes.Buffer
	require.NoError(t, runCheck(&buf, &options{preset: "Rec709", tolerance: defaultTolerance, strict: true}))
	assert.Contains(t, buf.String(), "system: Rec709\n")
	assert.Contains(t, buf.String(), "within tolerance")

	buf.Reset()
	require.NoError(t, runCheck(&buf, &options{preset: "NTSC", tolerance: defaultTolerance}))
	assert.Contains(t, buf.String(), "exceeds tolerance")

	err := runCheck(&bytes.Buffer{}, &options{preset: "NTSC", tolerance: defaultTolerance, strict: true})
	require.Error(t, err)
}
