package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eugenenazirov/linkplan/internal/layout"
)

func TestParse(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"# leading comment",
		"BUILDDIR=/x",
		"TOR_LDFLAGS_zlib=-L/lib -lz",
		"no equals sign here",
		"",
		"QUOTED=a=\"b=c\"",
		"DUPLICATE=first",
		"DUPLICATE=second",
		"EMPTY=",
	}, "\n")

	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"BUILDDIR", "/x"},
		{"TOR_LDFLAGS_zlib", "-L/lib -lz"},
		{"QUOTED", "a=\"b=c\""},
		{"DUPLICATE", "second"},
		{"EMPTY", ""},
	}
	for _, tc := range tests {
		got, ok := m.Lookup(tc.key)
		if !ok {
			t.Fatalf("expected key %q to be present", tc.key)
		}
		if got != tc.want {
			t.Fatalf("key %q: expected %q, got %q", tc.key, tc.want, got)
		}
	}

	if len(m) != len(tests) {
		t.Fatalf("expected %d entries, got %d: %v", len(tests), len(m), m)
	}
	if _, ok := m.Lookup("# leading comment"); ok {
		t.Fatalf("comment line should not contribute an entry")
	}
}

func TestParseKeepsWhitespaceVerbatim(t *testing.T) {
	t.Parallel()

	m, err := Parse(strings.NewReader("KEY = value \n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	// No trimming beyond the split itself.
	got, ok := m.Lookup("KEY ")
	if !ok {
		t.Fatalf("expected verbatim key \"KEY \" to be present: %v", m)
	}
	if got != " value " {
		t.Fatalf("expected verbatim value \" value \", got %q", got)
	}
}

func TestPathDerivation(t *testing.T) {
	t.Parallel()

	loader := NewLoader("/build/out/debug/build/pkg-hash/out/extra/deep")
	want := filepath.Join("/build", layout.SettingsFileName)
	if got := loader.Path(); got != want {
		t.Fatalf("expected derived path %s, got %s", want, got)
	}
}

func TestPathExplicitOverride(t *testing.T) {
	t.Parallel()

	loader := NewLoader("/ignored", WithSettingsFile("/tmp/settings.cargo"))
	if got := loader.Path(); got != "/tmp/settings.cargo" {
		t.Fatalf("expected override path, got %s", got)
	}
}

func TestLoadFromDerivedPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildOutput := filepath.Join(root, "a", "b", "c", "d", "e", "f", "g")
	if err := os.MkdirAll(buildOutput, 0o755); err != nil {
		t.Fatalf("mkdir build output: %v", err)
	}

	contents := "BUILDDIR=/x\nLIBS=-lfoo\n"
	if err := os.WriteFile(filepath.Join(root, layout.SettingsFileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	m, err := NewLoader(buildOutput).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got, _ := m.Lookup("BUILDDIR"); got != "/x" {
		t.Fatalf("expected BUILDDIR=/x, got %q", got)
	}
	if got, _ := m.Lookup("LIBS"); got != "-lfoo" {
		t.Fatalf("expected LIBS=-lfoo, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	loader := NewLoader("", WithSettingsFile(filepath.Join(t.TempDir(), "absent.cargo")))
	if _, err := loader.Load(); err == nil {
		t.Fatalf("expected error for missing settings file")
	}
}
