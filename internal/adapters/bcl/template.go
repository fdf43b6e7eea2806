package bcl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/zerr"
)

// templates returns the generator templates below docs/.
func (m *Measure) templates() []string {
	var out []string
	docs := filepath.Join(m.dir, domain.DocsDirName)
	for path := range m.walker.WalkFiles(docs, nil) {
		if filepath.Ext(path) == domain.TemplateExt {
			out = append(out, path)
		}
	}
	return out
}

// generatedPath maps docs/README.md.tmpl to README.md in the measure directory.
func (m *Measure) generatedPath(tmpl string) string {
	name := strings.TrimSuffix(filepath.Base(tmpl), domain.TemplateExt)
	return filepath.Join(m.dir, name)
}

// renderTemplates renders every generator template with the current metadata.
func (m *Measure) renderTemplates() error {
	for _, path := range m.templates() {
		tmpl, err := template.ParseFiles(path)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrValidation, "failed to parse template"), "path", path)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, m.metadata); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to render template"), "path", path)
		}
		out := m.generatedPath(path)
		//nolint:gosec // Output lives inside the measure directory
		if err := os.WriteFile(out, buf.Bytes(), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write generated file"), "path", out)
		}
	}
	return nil
}
