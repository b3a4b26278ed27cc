package actions

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "actions.yaml", `
actions:
  - name: " status_show "
    description: instance status
  - name: package_list
`)
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	all := reg.All()
	if len(all) != 2 || all[0].Name != "status_show" || all[1].Name != "package_list" {
		t.Fatalf("unexpected entries %+v", all)
	}
	e, ok := reg.ByName("status_show")
	if !ok || e.Description != "instance status" {
		t.Fatalf("ByName: got %+v ok=%v", e, ok)
	}
	if got := e.Action().Name; got != "status_show" {
		t.Fatalf("unexpected action name %q", got)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "actions.json", `{"actions":[{"name":"organization_list"}]}`)
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected one entry, got %d", reg.Len())
	}
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	cases := map[string]string{
		"empty.yaml":  "actions: []\n",
		"noname.yaml": "actions:\n  - description: x\n",
		"dup.yaml":    "actions:\n  - name: a\n  - name: a\n",
		"broken.json": `{"actions": [`,
	}
	for name, content := range cases {
		if _, err := Load(writeFile(t, name, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromNames(t *testing.T) {
	reg, err := FromNames("status_show", "package_list")
	if err != nil {
		t.Fatalf("FromNames: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected two entries, got %d", reg.Len())
	}
	if _, err := FromNames(); err == nil {
		t.Fatalf("expected error for no names")
	}
}
