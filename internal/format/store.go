package format

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Store persists format definitions as one TOML file per definition in a
// directory. Definitions are validated on load so the engine only ever sees
// well-formed ones.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on first
// Save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadAll reads every *.toml file in the store directory, sorted by file
// name. A missing directory yields an empty set, not an error.
func (s *Store) LoadAll() ([]*Definition, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading formats directory %s: %w", s.dir, err)
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Strings(names)

	defs := make([]*Definition, 0, len(names))

	for _, name := range names {
		path := filepath.Join(s.dir, name)

		def, err := s.load(path)
		if err != nil {
			return nil, err
		}

		defs = append(defs, def)
	}

	return defs, nil
}

// Load reads a single definition by name.
func (s *Store) Load(name string) (*Definition, error) {
	return s.load(filepath.Join(s.dir, fileName(name)))
}

func (s *Store) load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading format file %s: %w", path, err)
	}

	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing format file %s: %w", path, err)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid format file %s: %w", path, err)
	}

	return &def, nil
}

// Save validates the definition and writes it to <dir>/<name>.toml,
// overwriting any previous version.
func (s *Store) Save(def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating formats directory %s: %w", s.dir, err)
	}

	data, err := toml.Marshal(def)
	if err != nil {
		return fmt.Errorf("encoding format %q: %w", def.Name, err)
	}

	path := filepath.Join(s.dir, fileName(def.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing format file %s: %w", path, err)
	}

	return nil
}

// fileName maps a definition name to a safe file name.
func fileName(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	return safe + ".toml"
}
