package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-accountform/pkg/schema"
)

// OutputFormat controls how a payload is serialised.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatYAML emits a YAML document in schema field order.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
	// OutputFormatHTML emits an HTML definition list summary.
	OutputFormatHTML OutputFormat = "html"
)

const secretMask = "********"

// ParseOutputFormat resolves a format name, defaulting to JSON for blank input.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case "":
		return OutputFormatJSON, nil
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatYAML, OutputFormatPrettyText, OutputFormatHTML:
		return format, nil
	default:
		return "", fmt.Errorf("render: unknown output format %q", raw)
	}
}

// ContentType reports the media type of format.
func ContentType(format OutputFormat) string {
	switch format {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatYAML:
		return "application/yaml"
	case OutputFormatPrettyText:
		return "text/plain"
	case OutputFormatHTML:
		return "text/html"
	default:
		return "application/json"
	}
}

const prettyTemplate = `{% autoescape off %}{% for entry in entries %}{{ entry.Label }}: {{ entry.Value }}
{% endfor %}{% endautoescape %}`

const htmlTemplate = `<dl class="account-summary">
{% for entry in entries %}  <dt>{{ entry.Label }}</dt><dd>{{ entry.Value|safe }}</dd>
{% endfor %}</dl>
`

var (
	templatesOnce sync.Once
	prettyTpl     *pongo2.Template
	htmlTpl       *pongo2.Template
	templatesErr  error

	htmlPolicy = bluemonday.StrictPolicy()
)

func summaryTemplates() (*pongo2.Template, *pongo2.Template, error) {
	templatesOnce.Do(func() {
		prettyTpl, templatesErr = pongo2.FromString(prettyTemplate)
		if templatesErr != nil {
			templatesErr = fmt.Errorf("render: parse pretty template: %w", templatesErr)
			return
		}
		htmlTpl, templatesErr = pongo2.FromString(htmlTemplate)
		if templatesErr != nil {
			templatesErr = fmt.Errorf("render: parse html template: %w", templatesErr)
		}
	})
	return prettyTpl, htmlTpl, templatesErr
}

// summaryEntry is one line of a text or HTML summary.
type summaryEntry struct {
	Label string
	Value string
}

// Serializer encodes payloads for a schema, using hints for labels and
// masking in the summary formats.
type Serializer struct {
	schema *schema.Schema
	hints  Hints
}

// NewSerializer constructs a Serializer.
func NewSerializer(s *schema.Schema, hints Hints) *Serializer {
	return &Serializer{schema: s, hints: hints}
}

// Serialize encodes payload using format.
func (z *Serializer) Serialize(payload map[string]any, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(z.formEncode(payload)), nil
	case OutputFormatYAML:
		return z.yamlEncode(payload)
	case OutputFormatPrettyText:
		return z.summary(payload, false)
	case OutputFormatHTML:
		return z.summary(payload, true)
	case OutputFormatJSON, "":
		out, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("render: encode json: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("render: unknown output format %q", format)
	}
}

func (z *Serializer) formEncode(payload map[string]any) string {
	form := url.Values{}
	for _, field := range z.schema.AllFields() {
		if v, ok := payload[string(field)]; ok {
			form.Set(string(field), fmt.Sprint(v))
		}
	}
	return form.Encode()
}

func (z *Serializer) yamlEncode(payload map[string]any) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range z.schema.AllFields() {
		v, ok := payload[string(field)]
		if !ok {
			continue
		}
		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return nil, fmt.Errorf("render: encode yaml field %q: %w", field, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(field)},
			&value,
		)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render: encode yaml: %w", err)
	}
	return out, nil
}

func (z *Serializer) summary(payload map[string]any, html bool) ([]byte, error) {
	pretty, markup, err := summaryTemplates()
	if err != nil {
		return nil, err
	}

	entries := make([]summaryEntry, 0, len(payload))
	for _, field := range z.schema.AllFields() {
		v, ok := payload[string(field)]
		if !ok {
			continue
		}
		value := fmt.Sprint(v)
		if z.hints.Secret(field) {
			value = secretMask
		}
		if html {
			value = htmlPolicy.Sanitize(value)
		}
		entries = append(entries, summaryEntry{Label: z.hints.Label(field), Value: value})
	}

	tpl := pretty
	if html {
		tpl = markup
	}
	out, err := tpl.Execute(pongo2.Context{"entries": entries})
	if err != nil {
		return nil, fmt.Errorf("render: execute summary template: %w", err)
	}
	return []byte(out), nil
}
