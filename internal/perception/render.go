package perception

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/go-realm/internal/display"
	"github.com/pixil98/go-realm/internal/geom"
)

// Subject describes the thing an event is about at decreasing levels of detail.
type Subject struct {
	// Name fully identifies the subject, e.g. "Joe".
	Name string
	// Distant is what can still be made out from afar, e.g. "a man".
	Distant string
	// VeryDistant is all that is left at the edge of perception, e.g. "someone".
	VeryDistant string
}

// Verb holds the two forms a movement is phrased with.
type Verb struct {
	Present    string
	Continuous string
}

// DefaultVerb is used by movement events without an explicit verb.
var DefaultVerb = Verb{Present: "walks", Continuous: "walking"}

var templateFuncs = func() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["capitalize"] = display.Capitalize
	fm["compass"] = compass
	fm["heading"] = heading
	fm["whence"] = whence
	return fm
}()

// compass names the direction of v, e.g. "north" or "up".
func compass(v geom.Vector) string {
	return geom.DirectionForVector(v)
}

// heading phrases the direction of v as a destination, e.g. "to the north".
func heading(v geom.Vector) string {
	if v.Length() == 0 {
		return "nearby"
	}
	d := geom.DirectionForVector(v)
	if d == geom.Up || d == geom.Down {
		return d
	}
	return "to the " + d
}

// whence phrases where v points to as seen by a listener, e.g. "above you".
func whence(v geom.Vector) string {
	if v.Length() == 0 {
		return "nearby"
	}
	switch d := geom.DirectionForVector(v); d {
	case geom.Up:
		return "above you"
	case geom.Down:
		return "below you"
	default:
		return "to the " + d
	}
}

// band pairs a strength threshold with the template used above it.
type band struct {
	above float64
	tmpl  *template.Template
}

// bands is an ordered table of templates. The first band whose threshold the
// strength strictly exceeds is rendered.
type bands []band

type bandDef struct {
	above float64
	text  string
}

// floor matches any strength.
var floor = math.Inf(-1)

func mustBands(name string, defs ...bandDef) bands {
	bs := make(bands, 0, len(defs))
	for i, d := range defs {
		tmpl := template.Must(template.New(fmt.Sprintf("%s-%d", name, i)).Funcs(templateFuncs).Parse(d.text))
		bs = append(bs, band{above: d.above, tmpl: tmpl})
	}
	return bs
}

func (bs bands) render(strength float64, data any) string {
	for _, b := range bs {
		if strength > b.above {
			return execute(b.tmpl, data)
		}
	}
	return ""
}

func mustTemplate(name string, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

func execute(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Warn("rendering event description", "template", tmpl.Name(), "error", err)
		return ""
	}
	return buf.String()
}
