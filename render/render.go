// Package render writes derived matrices as text: plain rows, GLSL and C
// declarations, or JSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colormatrix/matrix"
)

var ErrUnknownFormat = errors.New("render: unknown output format")

// DefaultPrecision matches the six decimal places of "%f".
const DefaultPrecision = 6

// Options controls how a result is written.
type Options struct {
	Format    string
	Precision int
	// Forward also writes the RGB to XYZ matrix ahead of the inverse.
	Forward bool
}

// block is one matrix as seen by the templates.
type block struct {
	Title   string
	Ident   string
	Rows    []string
	Columns []string
}

var templates = map[string]*pongo2.Template{
	"plain": pongo2.Must(pongo2.FromString(
		`{% for b in blocks %}{% if not forloop.First %}
{% endif %}{% for row in b.Rows %}{{ row|safe }}
{% endfor %}{% endfor %}`)),
	"glsl": pongo2.Must(pongo2.FromString(
		`{% for b in blocks %}// {{ b.Title|safe }}
const mat3 {{ b.Ident|safe }} = mat3(
{% for c in b.Columns %}    {{ c|safe }}{% if not forloop.Last %},{% endif %}
{% endfor %});
{% endfor %}`)),
	"c": pongo2.Must(pongo2.FromString(
		`{% for b in blocks %}/* {{ b.Title|safe }}, row-major */
static const float {{ b.Ident|safe }}[9] = {
{% for row in b.Rows %}    {{ row|safe }}{% if not forloop.Last %},{% endif %}
{% endfor %}};
{% endfor %}`)),
}

// Formats lists the accepted values of Options.Format.
func Formats() []string {
	f := []string{"json"}
	for k := range templates {
		f = append(f, k)
	}
	sort.Strings(f)
	return f
}

// Write renders res to w.
func Write(w io.Writer, res *matrix.Result, opts Options) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = "plain"
	}
	prec := opts.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}

	if format == "json" {
		return writeJSON(w, res, prec)
	}

	tpl, ok := templates[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	name := ident(res.System.Name)
	var blocks []block
	if opts.Forward {
		blocks = append(blocks, newBlock(
			res.System.Name+": RGB to XYZ", "RGB_TO_XYZ_"+name, res.Forward, format, prec))
	}
	blocks = append(blocks, newBlock(
		res.System.Name+": XYZ to RGB", "XYZ_TO_RGB_"+name, res.Inverse, format, prec))

	return tpl.ExecuteWriter(pongo2.Context{"blocks": blocks}, w)
}

func newBlock(title, id string, m matrix.Matrix3x3, format string, prec int) block {
	sep := " "
	if format != "plain" {
		sep = ", "
	}

	b := block{Title: title, Ident: id}
	for i := 0; i < 3; i++ {
		b.Rows = append(b.Rows, join(m.Row(i), sep, prec))
		b.Columns = append(b.Columns, "vec3("+join(m.Column(i), ", ", prec)+")")
	}
	return b
}

func join(v matrix.Vector3, sep string, prec int) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = formatFloat(f, prec)
	}
	return strings.Join(s, sep)
}

func formatFloat(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// ident turns a system name into an upper-case C identifier fragment.
func ident(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

type jsonChromaticity [2]float64

type jsonSystem struct {
	Name  string           `json:"name"`
	Red   jsonChromaticity `json:"red"`
	Green jsonChromaticity `json:"green"`
	Blue  jsonChromaticity `json:"blue"`
	White jsonChromaticity `json:"white"`
	Gamma float64          `json:"gamma"`
}

type jsonResult struct {
	System  jsonSystem        `json:"system"`
	Forward [3][3]json.Number `json:"forward"`
	Inverse [3][3]json.Number `json:"inverse"`
}

func writeJSON(w io.Writer, res *matrix.Result, prec int) error {
	cs := res.System
	out := jsonResult{
		System: jsonSystem{
			Name:  cs.Name,
			Red:   jsonChromaticity{cs.Red.X, cs.Red.Y},
			Green: jsonChromaticity{cs.Green.X, cs.Green.Y},
			Blue:  jsonChromaticity{cs.Blue.X, cs.Blue.Y},
			White: jsonChromaticity{cs.White.X, cs.White.Y},
			Gamma: cs.Gamma,
		},
		Forward: rows(res.Forward, prec),
		Inverse: rows(res.Inverse, prec),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func rows(m matrix.Matrix3x3, prec int) [3][3]json.Number {
	var r [3][3]json.Number
	for i := 0; i < 9; i++ {
		r[i/3][i%3] = json.Number(formatFloat(m[i], prec))
	}
	return r
}
