package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"threads-cli/internal/drafts"
)

// WriteRaw writes content verbatim to path, creating parent directories. Use
// it for malformed or legacy drafts files.
func WriteRaw(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteDrafts seeds a drafts file with the given records.
func WriteDrafts(t testing.TB, path string, items ...drafts.Draft) {
	t.Helper()

	if items == nil {
		items = []drafts.Draft{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		t.Fatalf("marshal drafts: %v", err)
	}
	WriteRaw(t, path, string(data)+"\n")
}

// ReadDrafts decodes the drafts file at path, failing the test when it is not
// a JSON array.
func ReadDrafts(t testing.TB, path string) []drafts.Draft {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var items []drafts.Draft
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("decode %s: %v (content %q)", path, err, data)
	}
	return items
}
