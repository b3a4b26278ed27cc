package actions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samvad-hq/ckan-client/pkg/ckan"
	"gopkg.in/yaml.v3"
)

// Package actions loads lists of CKAN actions to invoke from YAML/JSON files.

// Entry is a single action declared in an actions file.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Action converts the entry into a ckan.Action.
func (e Entry) Action() ckan.Action { return ckan.NewAction(e.Name) }

type fileRegistry struct {
	Actions []Entry `json:"actions" yaml:"actions"`
}

// Registry is an ordered, validated set of action entries.
type Registry struct {
	entries []Entry
	idx     map[string]Entry
}

// Load reads the actions registry from path.
func Load(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("actions file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open actions file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read actions file: %w", err)
	}

	fileReg, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return FromEntries(fileReg.Actions...)
}

// FromEntries builds a registry from in-memory entries, applying the same
// validation as Load.
func FromEntries(entries ...Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.New("actions registry contains no entries")
	}

	reg := &Registry{
		entries: make([]Entry, len(entries)),
		idx:     make(map[string]Entry, len(entries)),
	}
	for i := range entries {
		e := sanitizeEntry(entries[i])
		if e.Name == "" {
			return nil, fmt.Errorf("actions[%d]: name is required", i)
		}
		if _, exists := reg.idx[e.Name]; exists {
			return nil, fmt.Errorf("duplicate action %q", e.Name)
		}
		reg.entries[i] = e
		reg.idx[e.Name] = e
	}
	return reg, nil
}

// FromNames builds a registry from bare action names.
func FromNames(names ...string) (*Registry, error) {
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, Entry{Name: n})
	}
	return FromEntries(entries...)
}

// All returns a copy of the entries in declaration order.
func (r *Registry) All() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByName returns the entry with the given name, if present.
func (r *Registry) ByName(name string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.idx[strings.TrimSpace(name)]
	return e, ok
}

// Len reports the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

func parseRegistry(data []byte, ext string) (fileRegistry, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	var lastErr error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg fileRegistry
		if err := d.fn(data, &reg); err != nil {
			lastErr = fmt.Errorf("decode %s actions: %w", d.name, err)
			continue
		}
		return reg, nil
	}
	if lastErr != nil {
		return fileRegistry{}, lastErr
	}
	return fileRegistry{}, errors.New("actions file format not recognized (expected YAML or JSON)")
}

func sanitizeEntry(e Entry) Entry {
	e.Name = strings.TrimSpace(e.Name)
	e.Description = strings.TrimSpace(e.Description)
	return e
}
