package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmuldo/colormatrix/colorsystem"
)

const defaultPreset = "CIE"

// options collects every flag; unset values fall back to viper.
type options struct {
	preset     string
	red        string
	green      string
	blue       string
	white      string
	illuminant string

	format    string
	precision int
	normalize bool
	forward   bool

	tolerance float64
	strict    bool
}

var opts options

// systemConfig is one entry of the "systems" config key, e.g.
//
//	systems:
//	  studio:
//	    red: 0.68,0.32
//	    green: 0.265,0.69
//	    blue: 0.15,0.06
//	    illuminant: D65
type systemConfig struct {
	Red        string  `mapstructure:"red"`
	Green      string  `mapstructure:"green"`
	Blue       string  `mapstructure:"blue"`
	White      string  `mapstructure:"white"`
	Illuminant string  `mapstructure:"illuminant"`
	Gamma      float64 `mapstructure:"gamma"`
}

func setDefaults(o *options) {
	if o.preset == "" {
		o.preset = viper.GetString("preset")
	}
	if o.preset == "" {
		o.preset = defaultPreset
	}

	if o.illuminant == "" {
		o.illuminant = viper.GetString("illuminant")
	}

	if o.format == "" {
		o.format = viper.GetString("format")
	}

	if o.precision == 0 {
		o.precision = viper.GetInt("precision")
	}

	if !o.normalize {
		o.normalize = viper.GetBool("normalize")
	}
}

// configuredSystems reads the "systems" key of the config file.
func configuredSystems() (map[string]colorsystem.ColorSystem, error) {
	raw := make(map[string]systemConfig)
	if err := viper.UnmarshalKey("systems", &raw); err != nil {
		return nil, fmt.Errorf("config key systems: %w", err)
	}

	systems := make(map[string]colorsystem.ColorSystem, len(raw))
	for name, sc := range raw {
		cs, err := sc.system(name)
		if err != nil {
			return nil, fmt.Errorf("config system %q: %w", name, err)
		}
		systems[strings.ToLower(name)] = cs
	}

	return systems, nil
}

func (sc systemConfig) system(name string) (colorsystem.ColorSystem, error) {
	cs := colorsystem.ColorSystem{Name: name, Gamma: sc.Gamma}

	for _, f := range []struct {
		text string
		dst  *colorsystem.Chromaticity
	}{
		{sc.Red, &cs.Red},
		{sc.Green, &cs.Green},
		{sc.Blue, &cs.Blue},
	} {
		c, err := colorsystem.ParseChromaticity(f.text)
		if err != nil {
			return cs, err
		}
		*f.dst = c
	}

	switch {
	case sc.White != "":
		c, err := colorsystem.ParseChromaticity(sc.White)
		if err != nil {
			return cs, err
		}
		cs.White = c
	case sc.Illuminant != "":
		c, err := colorsystem.Illuminant(sc.Illuminant)
		if err != nil {
			return cs, err
		}
		cs.White = c
	default:
		return cs, fmt.Errorf("%w: white point or illuminant required", colorsystem.ErrBadChromaticity)
	}

	return cs, nil
}

// allSystems returns the presets followed by configured systems, by name.
func allSystems() ([]colorsystem.ColorSystem, error) {
	configured, err := configuredSystems()
	if err != nil {
		return nil, err
	}

	all := colorsystem.Presets()
	var names []string
	for k := range configured {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		all = append(all, configured[k])
	}

	return all, nil
}

// resolveSystem picks the base system named by o.preset and applies the
// per-coordinate overrides.
func resolveSystem(o *options) (colorsystem.ColorSystem, error) {
	configured, err := configuredSystems()
	if err != nil {
		return colorsystem.ColorSystem{}, err
	}

	base, ok := configured[strings.ToLower(o.preset)]
	if !ok {
		base, err = colorsystem.Preset(o.preset)
		if err != nil {
			return base, err
		}
	}

	var ov colorsystem.Override
	for _, f := range []struct {
		flag string
		text string
		dst  **colorsystem.Chromaticity
	}{
		{"red", o.red, &ov.Red},
		{"green", o.green, &ov.Green},
		{"blue", o.blue, &ov.Blue},
		{"white", o.white, &ov.White},
	} {
		if f.text == "" {
			continue
		}
		c, err := colorsystem.ParseChromaticity(f.text)
		if err != nil {
			return base, fmt.Errorf("--%s: %w", f.flag, err)
		}
		*f.dst = &c
	}

	if o.illuminant != "" && ov.White == nil {
		c, err := colorsystem.Illuminant(o.illuminant)
		if err != nil {
			return base, fmt.Errorf("--illuminant: %w", err)
		}
		ov.White = &c
	}

	return ov.Apply(base), nil
}
