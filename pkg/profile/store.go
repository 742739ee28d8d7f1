package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/filesystem"
	"github.com/arthur-debert/hyprpier/pkg/types"
)

const (
	fileExt    = ".json"
	tmpFileExt = ".json.tmp"
)

// Store keeps one JSON file per profile in a directory
type Store struct {
	fs  types.FS
	dir string
}

// NewStore creates a profile store rooted at dir
func NewStore(fsys types.FS, dir string) *Store {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Store{fs: fsys, dir: dir}
}

// Dir returns the directory profiles are stored in
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file a profile is stored in
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Exists reports whether a profile file is present
func (s *Store) Exists(name string) bool {
	_, err := s.fs.Stat(s.Path(name))
	return err == nil
}

// Load reads a profile by name
func (s *Store) Load(name string) (*Profile, error) {
	path := s.Path(name)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "Profile not found: %s", name).
				WithDetail("profile", name)
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "Failed to read profile: %s", name).
			WithDetail("path", path)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "Failed to parse profile: %s", name).
			WithDetail("path", path)
	}
	return withEmptyLists(&p), nil
}

// Save writes a profile atomically. Name validation is the caller's job.
// Missing monitor and workspace lists are written as [], never null.
func (s *Store) Save(p *Profile) error {
	out := *p
	data, err := json.MarshalIndent(withEmptyLists(&out), "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "Failed to serialize profile")
	}

	path := s.Path(p.Name)
	if err := filesystem.WriteFileAtomic(s.fs, path, filepath.Join(s.dir, p.Name+tmpFileExt), data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "Failed to save profile: %s", p.Name).
			WithDetail("path", path)
	}
	return nil
}

// Delete removes a profile; deleting a missing profile is not an error
func (s *Store) Delete(name string) error {
	err := s.fs.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrIO, "Failed to delete profile: %s", name)
	}
	return nil
}

// List returns the sorted names of all stored profiles
func (s *Store) List() ([]string, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "Failed to list profiles in %s", s.dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if filepath.Ext(fileName) != fileExt {
			continue
		}
		name := strings.TrimSuffix(fileName, fileExt)
		if strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func withEmptyLists(p *Profile) *Profile {
	if p.Monitors == nil {
		p.Monitors = []Monitor{}
	}
	if p.Workspaces == nil {
		p.Workspaces = []Workspace{}
	}
	return p
}
