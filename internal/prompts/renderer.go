package prompts

import (
	"bytes"
	"fmt"
	"text/template"
)

var funcs = template.FuncMap{
	"formatTime": FormatTime,
	"summary":    AvailabilitySummary,
}

// Catalog renders prompts from parsed templates.
type Catalog struct {
	templates map[ID]*template.Template
}

// NewCatalog parses the built-in wording, replaced by any overrides.
func NewCatalog(overrides map[ID]string) (*Catalog, error) {
	texts := make(map[ID]string, len(defaultTemplates))
	for id, text := range defaultTemplates {
		texts[id] = text
	}
	for id, text := range overrides {
		texts[id] = text
	}

	c := &Catalog{templates: make(map[ID]*template.Template, len(texts))}
	for id, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("prompts: template text required for %s", id)
		}
		t, err := template.New(string(id)).Funcs(funcs).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("prompts: parse %s: %w", id, err)
		}
		c.templates[id] = t
	}
	return c, nil
}

// MustCatalog returns the default catalog.
func MustCatalog() *Catalog {
	c, err := NewCatalog(nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Render produces the message text for p.
func (c *Catalog) Render(p Prompt) (string, error) {
	t, ok := c.templates[p.ID]
	if !ok {
		return "", fmt.Errorf("prompts: unknown prompt %q", p.ID)
	}
	data := p.Data
	if data == nil {
		data = map[string]any{}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("prompts: execute %s: %w", p.ID, err)
	}
	return buf.String(), nil
}
