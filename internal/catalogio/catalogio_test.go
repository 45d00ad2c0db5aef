package catalogio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp catalog: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "catalog.json", `[
		{"name": "export_csv", "description": "Export data to CSV format", "keywords": ["export", "csv"]}
	]`)
	tools, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "export_csv" {
		t.Errorf("tools = %+v, want one tool named export_csv", tools)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "catalog.yaml", `
- name: send_email
  description: Send email notifications
  keywords: [email, send]
`)
	tools, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "send_email" {
		t.Errorf("tools = %+v, want one tool named send_email", tools)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "catalog.txt", "irrelevant")
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/catalog.json"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
