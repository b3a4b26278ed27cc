package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samvad-hq/ckan-client/pkg/ckan"
)

func TestNewDocumentVariants(t *testing.T) {
	action := ckan.NewAction("status_show")
	cases := []struct {
		resp ckan.Response[any]
		kind string
	}{
		{ckan.Result[any]{Success: ckan.Success[any]{Help: "h", Result: "ok"}}, ckan.KindResult},
		{ckan.Error{Fail: ckan.Fail{Help: "h", Error: "bad"}}, ckan.KindError},
		{ckan.StringError{Message: "s"}, ckan.KindStringError},
		{ckan.TransportError{Message: "t"}, ckan.KindTransportError},
		{ckan.DecodeError{Message: "d"}, ckan.KindDecodeError},
	}
	for _, tc := range cases {
		doc := NewDocument(action, tc.resp)
		if doc.Kind != tc.kind || doc.Action != "status_show" {
			t.Fatalf("unexpected document %+v for %T", doc, tc.resp)
		}
	}
}

func TestRenderYAMLUnquotesNumbers(t *testing.T) {
	var out bytes.Buffer
	r, err := NewRenderer("yaml", &out)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	doc := Document{
		Action: "package_show",
		Kind:   ckan.KindError,
		Error:  map[string]any{"count": json.Number("12")},
	}
	if err := r.Render(doc); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "count: 12") {
		t.Fatalf("expected unquoted number, got:\n%s", out.String())
	}
}

func TestNewRendererRejectsUnknownFormat(t *testing.T) {
	if _, err := NewRenderer("xml", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for xml format")
	}
}
