package skill

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// IndexFileName is the installed-skill index inside the install root.
const IndexFileName = "installed.json"

// IndexFile is the on-disk form of the index.
type IndexFile struct {
	Skills map[string]InstalledSkill `json:"skills"`
}

// InstalledSkill tracks one installed skill.
type InstalledSkill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Status      string    `json:"status,omitempty"`
	Path        string    `json:"path"`
	Files       int       `json:"files"`
	InstalledAt time.Time `json:"installed_at"`
}

// Index manages <install root>/installed.json.
type Index struct {
	path string
}

// NewIndex creates an index inside installRoot.
func NewIndex(installRoot string) *Index {
	return &Index{path: filepath.Join(installRoot, IndexFileName)}
}

// Path returns the index file location.
func (s *Index) Path() string {
	return s.path
}

// Load reads the index, returning an empty one if the file does not exist.
func (s *Index) Load() (*IndexFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &IndexFile{Skills: make(map[string]InstalledSkill)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading installed index: %w", err)
	}

	var f IndexFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing installed index: %w", err)
	}

	if f.Skills == nil {
		f.Skills = make(map[string]InstalledSkill)
	}

	return &f, nil
}

// Save writes the index.
func (s *Index) Save(f *IndexFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating install dir: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling installed index: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing installed index: %w", err)
	}

	return nil
}

// Add records an installed skill, replacing any previous entry.
func (s *Index) Add(info InstalledSkill) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	info.InstalledAt = time.Now()
	f.Skills[info.ID] = info

	return s.Save(f)
}

// Remove drops an entry. Removing an unknown id is not an error.
func (s *Index) Remove(id string) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	if _, exists := f.Skills[id]; !exists {
		return nil
	}

	delete(f.Skills, id)
	return s.Save(f)
}

// Get returns the entry for id, or nil when it is not installed.
func (s *Index) Get(id string) (*InstalledSkill, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}

	info, exists := f.Skills[id]
	if !exists {
		return nil, nil
	}

	return &info, nil
}

// List returns all entries sorted by id.
func (s *Index) List() ([]InstalledSkill, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}
	list := make([]InstalledSkill, 0, len(f.Skills))
	for _, info := range f.Skills {
		list = append(list, info)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
