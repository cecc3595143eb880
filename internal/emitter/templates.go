package emitter

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"
)

const (
	classDeclT       = "class_decl"
	containerDeclT   = "container_decl"
	handlerTypedT    = "handler_typed"
	handlerUntypedT  = "handler_untyped"
	pointerHandlerT  = "pointer_handler"
	polyDispatchT    = "poly_dispatch"
	topLevelWrapperT = "top_level_wrapper"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templates reads named templates from an embedded filesystem and renders
// them against a data value: Read + MustRender over a go:embed'd directory
// of *.tmpl files.
type templates struct {
	FS fs.FS
}

var emitterTemplates = &templates{FS: templateFS}

// Read returns the raw template source for name.
func (t *templates) Read(name string) string {
	content, err := fs.ReadFile(t.FS, path.Join("templates", name+".tmpl"))
	if err != nil {
		panic(fmt.Sprintf("emitter: failed to load template %s: %v", name, err))
	}
	return string(content)
}

// Render parses and executes the named template against data.
func (t *templates) Render(name string, data any) (string, error) {
	content := t.Read(name)
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(content)
	if err != nil {
		return "", fmt.Errorf("emitter: parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("emitter: execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

var templateFuncs = template.FuncMap{
	"join": func(sep string, items []string) string {
		out := ""
		for i, s := range items {
			if i > 0 {
				out += sep
			}
			out += s
		}
		return out
	},
}
