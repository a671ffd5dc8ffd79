// Package render serializes a link plan into the textual directive stream
// consumed by the invoking build tool. Rendering never reorders directives.
package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/linkplan/internal/emitter"
	"github.com/eugenenazirov/linkplan/internal/translator"
)

// Format names a supported plan rendering.
type Format string

const (
	// FormatCargo renders cargo build-script directives, one per line.
	FormatCargo Format = "cargo"
	// FormatYAML renders the directive sequence as a YAML list.
	FormatYAML Format = "yaml"
)

// Write renders plan to w in the requested format.
func Write(w io.Writer, plan emitter.Plan, format Format) error {
	switch format {
	case FormatCargo:
		return writeCargo(w, plan)
	case FormatYAML:
		return writeYAML(w, plan)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeCargo(w io.Writer, plan emitter.Plan) error {
	for _, d := range plan {
		var line string
		switch {
		case d.Kind == translator.KindSearchPath:
			line = fmt.Sprintf("cargo:rustc-link-search=native=%s", d.Path)
		case d.Linkage == translator.Static:
			line = fmt.Sprintf("cargo:rustc-link-lib=static=%s", d.Name)
		default:
			line = fmt.Sprintf("cargo:rustc-link-lib=%s", d.Name)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// yamlDirective is the YAML shape of one directive: exactly one of
// search_path or library is set.
type yamlDirective struct {
	SearchPath string `yaml:"search_path,omitempty"`
	Library    string `yaml:"library,omitempty"`
	Linkage    string `yaml:"linkage,omitempty"`
}

func writeYAML(w io.Writer, plan emitter.Plan) error {
	docs := make([]yamlDirective, 0, len(plan))
	for _, d := range plan {
		if d.Kind == translator.KindSearchPath {
			docs = append(docs, yamlDirective{SearchPath: d.Path})
			continue
		}
		docs = append(docs, yamlDirective{Library: d.Name, Linkage: d.Linkage.String()})
	}

	out, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshal link plan: %w", err)
	}
	_, err = w.Write(out)
	return err
}
