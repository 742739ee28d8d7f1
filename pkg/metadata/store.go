package metadata

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/filesystem"
	"github.com/arthur-debert/hyprpier/pkg/types"
)

// Store persists the binding record at a fixed path
type Store struct {
	fs   types.FS
	path string
}

// NewStore creates a binding store for the record at path
func NewStore(fsys types.FS, path string) *Store {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Store{fs: fsys, path: path}
}

// Path returns the record location
func (s *Store) Path() string {
	return s.path
}

// Load reads the record; a missing file yields an empty record (first run)
func (s *Store) Load() (*Metadata, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return withDefaults(&Metadata{}), nil
		}
		return nil, errors.Wrap(err, errors.ErrIO, "Failed to read metadata").
			WithDetail("path", s.path)
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "Failed to parse metadata").
			WithDetail("path", s.path)
	}
	return withDefaults(&m), nil
}

// Save writes the record atomically. A nil dock map is written as {}, since
// readers of the file treat dock_profiles as a required object.
func (s *Store) Save(m *Metadata) error {
	out := *m
	data, err := json.MarshalIndent(withDefaults(&out), "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "Failed to serialize metadata")
	}

	tmp := strings.TrimSuffix(s.path, ".json") + ".tmp"
	if err := filesystem.WriteFileAtomic(s.fs, s.path, tmp, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrIO, "Failed to save metadata").
			WithDetail("path", s.path)
	}
	return nil
}

// Update loads the record, applies fn and saves it back
func (s *Store) Update(fn func(m *Metadata) error) error {
	m, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return s.Save(m)
}

func withDefaults(m *Metadata) *Metadata {
	if m.DockProfiles == nil {
		m.DockProfiles = map[string]string{}
	}
	return m
}
