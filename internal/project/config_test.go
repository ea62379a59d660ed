package project

import (
	"os"
	"path/filepath"
	"testing"

	"declc/internal/dialect"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "declc.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[check]\nlang = \"c++17\"\nmax-diagnostics = 5\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Discover(nested)
	if err != nil || !ok {
		t.Fatalf("Discover = %v, %v", ok, err)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
	lang, err := m.Lang(dialect.C23)
	if err != nil {
		t.Fatal(err)
	}
	if lang != dialect.CPP17 {
		t.Errorf("lang = %s, want c++17", dialect.Name(lang))
	}
	if got := m.MaxDiagnostics(); got != 5 {
		t.Errorf("max diagnostics = %d, want 5", got)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	m, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok || m != nil {
		t.Fatalf("found a config in an empty tree: %+v", m)
	}

	// A nil manifest still answers with defaults.
	lang, err := m.Lang(dialect.C23)
	if err != nil || lang != dialect.C23 {
		t.Errorf("default lang = %s, %v", dialect.Name(lang), err)
	}
	if got := m.MaxDiagnostics(); got != DefaultMaxDiagnostics {
		t.Errorf("default cap = %d, want %d", got, DefaultMaxDiagnostics)
	}
}

func TestManifestDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[typedefs]\nsnapshot = \"types.snap\"\n")

	m, ok, err := Discover(root)
	if err != nil || !ok {
		t.Fatalf("Discover = %v, %v", ok, err)
	}
	if got := m.MaxDiagnostics(); got != DefaultMaxDiagnostics {
		t.Errorf("cap = %d, want default %d", got, DefaultMaxDiagnostics)
	}
	want := filepath.Join(root, "types.snap")
	if got := m.SnapshotPath(); got != want {
		t.Errorf("snapshot = %q, want %q", got, want)
	}
}

func TestLoadRejectsBadToml(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[check\nlang=")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed TOML accepted")
	}
}

func TestBadLangReported(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[check]\nlang = \"c42\"\n")
	m, _, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Lang(dialect.C23); err == nil {
		t.Fatal("unknown dialect name accepted")
	}
}
