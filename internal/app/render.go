package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samvad-hq/ckan-client/internal/config"
	"github.com/samvad-hq/ckan-client/pkg/ckan"
	"gopkg.in/yaml.v3"
)

// Document is the printable form of one action response.
type Document struct {
	Action  string `json:"action" yaml:"action"`
	Kind    string `json:"kind" yaml:"kind"`
	Help    string `json:"help,omitempty" yaml:"help,omitempty"`
	Result  any    `json:"result,omitempty" yaml:"result,omitempty"`
	Error   any    `json:"error,omitempty" yaml:"error,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewDocument flattens a response into a Document.
func NewDocument(action ckan.Action, resp ckan.Response[any]) Document {
	doc := Document{Action: action.Name}
	switch r := resp.(type) {
	case ckan.Result[any]:
		doc.Kind, doc.Help, doc.Result = r.Kind(), r.Help, r.Result
	case ckan.Error:
		doc.Kind, doc.Help, doc.Error = r.Kind(), r.Help, r.Error
	case ckan.StringError:
		doc.Kind, doc.Message = r.Kind(), r.Message
	case ckan.TransportError:
		doc.Kind, doc.Message = r.Kind(), r.Message
	case ckan.DecodeError:
		doc.Kind, doc.Message = r.Kind(), r.Message
	default:
		doc.Kind, doc.Message = "unknown", fmt.Sprintf("unexpected response %T", resp)
	}
	return doc
}

type encoder interface {
	Encode(v any) error
}

// Renderer writes documents to an output stream in a fixed format.
type Renderer struct {
	format string
	enc    encoder
}

// NewRenderer returns a renderer for the json or yaml format.
func NewRenderer(format string, out io.Writer) (*Renderer, error) {
	switch format {
	case config.OutputJSON, "":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return &Renderer{format: config.OutputJSON, enc: enc}, nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		return &Renderer{format: config.OutputYAML, enc: enc}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// Render writes a single document.
func (r *Renderer) Render(doc Document) error {
	if r.format == config.OutputYAML {
		doc.Result = plainNumbers(doc.Result)
		doc.Error = plainNumbers(doc.Error)
	}
	if err := r.enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s document: %w", r.format, err)
	}
	return nil
}

// plainNumbers replaces json.Number values so YAML emits them unquoted.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainNumbers(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plainNumbers(val)
		}
		return out
	default:
		return v
	}
}
