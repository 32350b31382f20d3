package script

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/go-realm/internal/storage"
)

// Call carries the arguments a trigger is invoked with.
type Call struct {
	// Owner is the entity the trigger is bound to.
	Owner storage.Key
	// Name is the trigger name, e.g. "onentry".
	Name string
	// Subject is the entity causing the trigger to fire.
	Subject any
	// Objects holds optional extra arguments, e.g. the portal being used.
	Objects []any
}

// Trigger is game logic attached to an entity. Invoke returns false to abort
// the action that fired it.
type Trigger interface {
	Invoke(Call) bool
}

// TriggerFunc adapts a function to a Trigger.
type TriggerFunc func(Call) bool

func (f TriggerFunc) Invoke(c Call) bool {
	return f(c)
}

var templateFuncs = sprig.TxtFuncMap()

// TemplateTrigger renders a template against the Call. An output of "false",
// "no" or "0" aborts; anything else proceeds.
type TemplateTrigger struct {
	tmpl *template.Template
}

func ParseTemplateTrigger(source string) (*TemplateTrigger, error) {
	tmpl, err := template.New("trigger").Funcs(templateFuncs).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &TemplateTrigger{tmpl: tmpl}, nil
}

func (t *TemplateTrigger) Invoke(c Call) bool {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, c); err != nil {
		slog.Warn("executing trigger", "owner", c.Owner.String(), "trigger", c.Name, "error", err)
		return true
	}

	switch strings.ToLower(strings.TrimSpace(buf.String())) {
	case "false", "no", "0":
		return false
	default:
		return true
	}
}

// ParseDeclaration splits a stored "<name>:<source>" trigger declaration.
func ParseDeclaration(decl string) (name string, source string, err error) {
	name, source, ok := strings.Cut(decl, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDeclaration, decl)
	}
	return name, source, nil
}
