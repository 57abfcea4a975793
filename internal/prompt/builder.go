// Package prompt formats the instruction text sent to the language model.
//
// A Builder wraps a text/template. The template receives the example posts
// joined by line breaks together with the marker label and the number of
// posts requested, so the instructions always agree with what the extractor
// looks for. text/template is used rather than html/template because ticker
// symbols and ampersands in the examples must reach the model verbatim.
package prompt

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed default.tmpl
var defaultTemplate string

var fallback = template.Must(template.New("default").Parse(defaultTemplate))

func init() {
	// The built-in template only references Data fields; check it once here.
	if _, err := execute(fallback, Data{Examples: "example", Count: defaultCount, Label: defaultLabel}); err != nil {
		panic(fmt.Sprintf("prompt: built-in template failed: %v", err))
	}
}

const (
	defaultLabel = "Tweet"
	defaultCount = 10
)

// ErrInvalidTemplate is returned when a prompt template cannot be parsed or executed.
var ErrInvalidTemplate = errors.New("invalid prompt template")

// Data is passed to the prompt template.
type Data struct {
	// Examples holds the example posts joined by "\n".
	Examples string

	// Count is the number of posts the model is asked for.
	Count int

	// Label is the marker label, e.g. "Tweet" for "Tweet 1:".
	Label string
}

// Builder renders prompts from a fixed template. It is immutable and safe for
// concurrent use.
type Builder struct {
	tmpl  *template.Template
	label string
	count int
}

// NewBuilder parses text as the prompt template. An empty text selects the
// built-in template; an empty label or non-positive count selects "Tweet"
// and 10. The template is executed once with sample data so that
// references to unknown fields are rejected here rather than per request.
func NewBuilder(text, label string, count int) (*Builder, error) {
	if strings.TrimSpace(text) == "" {
		text = defaultTemplate
	}

	tmpl, err := template.New("prompt").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	if label = strings.TrimSpace(label); label == "" {
		label = defaultLabel
	}
	if count <= 0 {
		count = defaultCount
	}

	b := &Builder{tmpl: tmpl, label: label, count: count}
	if _, err := b.render([]string{"example"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	return b, nil
}

// LoadBuilder reads the prompt template from path. An empty path selects the
// built-in template.
func LoadBuilder(path, label string, count int) (*Builder, error) {
	if path == "" {
		return NewBuilder("", label, count)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v", ErrInvalidTemplate, path, err)
	}

	return NewBuilder(string(content), label, count)
}

// Render returns the prompt for the given examples using the configured
// template. An empty example list renders an empty example section.
func (b *Builder) Render(examples []string) (string, error) {
	prompt, err := b.render(examples)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return prompt, nil
}

// Build is Render for callers that need a prompt in every case. When the
// configured template fails on these examples the built-in template is used.
func (b *Builder) Build(examples []string) string {
	prompt, err := b.render(examples)
	if err == nil {
		return prompt
	}

	prompt, err = execute(fallback, b.data(examples))
	if err != nil {
		panic(fmt.Sprintf("prompt: built-in template failed: %v", err))
	}
	return prompt
}

// Label returns the marker label the prompt asks the model to use.
func (b *Builder) Label() string { return b.label }

// Count returns the number of posts the prompt asks for.
func (b *Builder) Count() int { return b.count }

func (b *Builder) data(examples []string) Data {
	return Data{
		Examples: strings.Join(examples, "\n"),
		Count:    b.count,
		Label:    b.label,
	}
}

func (b *Builder) render(examples []string) (string, error) {
	return execute(b.tmpl, b.data(examples))
}

func execute(tmpl *template.Template, data Data) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
