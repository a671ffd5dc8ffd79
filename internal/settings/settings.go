package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eugenenazirov/linkplan/internal/layout"
)

// Map holds the parsed settings keyed by name. When the file repeats a key,
// the last occurrence wins.
type Map map[string]string

// Lookup returns the value for name and whether it was present.
func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// Loader locates and reads the settings file written by the configure stage.
type Loader struct {
	buildOutputDir string
	settingsFile   string
}

// LoaderOption configures Loader behaviour.
type LoaderOption func(*Loader)

// WithSettingsFile points the loader at an explicit settings file instead of
// deriving the path from the build output directory.
func WithSettingsFile(path string) LoaderOption {
	return func(l *Loader) {
		l.settingsFile = path
	}
}

// NewLoader constructs a Loader rooted at the given build output directory.
func NewLoader(buildOutputDir string, opts ...LoaderOption) *Loader {
	l := &Loader{buildOutputDir: buildOutputDir}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the settings file the loader will read: either the explicit
// override, or the fixed ascent from the build output directory to the file
// the configure stage leaves at the tree root.
func (l *Loader) Path() string {
	if l.settingsFile != "" {
		return l.settingsFile
	}

	parts := make([]string, 0, layout.SettingsParentLevels+2)
	parts = append(parts, l.buildOutputDir)
	for i := 0; i < layout.SettingsParentLevels; i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, layout.SettingsFileName)
	return filepath.Join(parts...)
}

// Load opens, parses, and closes the settings file. A file that cannot be
// opened is fatal: no directive downstream can be trusted without the
// configuration it carries.
func (l *Loader) Load() (Map, error) {
	path := l.Path()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open settings file %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}
	return m, nil
}

// Parse reads KEY=VALUE lines from r. Lines starting with # and lines
// without = are skipped. The split happens at the first = only; keys and
// values are taken verbatim, so values may themselves contain = characters.
func Parse(r io.Reader) (Map, error) {
	m := make(Map)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		m[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
