package goalplan

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists the plan document to a single file. Synchronization across
// independent writers is last-write-wins: a save fully replaces the stored
// document, with no field-level merge.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the plan document. A missing file yields the default document
// (with a logged warning), so a fresh setup needs no explicit init step.
func (s *Store) Load() (*PlanDocument, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, plan file %q does not exist, starting an empty plan instead", s.path)
		return DefaultPlan(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open plan file %q: %w", s.path, err)
	}
	defer f.Close()
	return DecodePlan(f)
}

// Save writes the document back, replacing the stored one wholesale. The
// write goes through a temporary file and a rename so a crash mid-write
// cannot destroy the previous document.
func (s *Store) Save(doc *PlanDocument) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create plan directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".plan-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary plan file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodePlan(tmp, doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary plan file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace plan file %q: %w", s.path, err)
	}
	return nil
}

// GenerateID returns a unique identifier for a new goal, holding or income.
func (s *Store) GenerateID() string { return uuid.NewString() }

// FindPlan locates the plan file at or under path and returns its store.
// If path names a file (existing or not), it is used as is. If it names a
// directory, the directory is scanned for a plan document:
// exactly one .json file is used, none falls back to "plan.json" inside the
// directory, and several is an error since a store holds exactly one plan.
func FindPlan(path string) (*Store, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not inspect plan path %q: %w", path, err)
	}
	if !info.IsDir() {
		return NewStore(path), nil
	}

	plans, err := findPlanPaths(path)
	if err != nil {
		return nil, err
	}
	switch len(plans) {
	case 0:
		return NewStore(filepath.Join(path, "plan.json")), nil
	case 1:
		return NewStore(plans[0]), nil
	default:
		return nil, fmt.Errorf("multiple plan files found in %q: %s", path, strings.Join(plans, ", "))
	}
}

// findPlanPaths scans a directory tree for plan documents. Dotfiles are
// skipped so a leftover temporary file never counts as a plan.
func findPlanPaths(dir string) ([]string, error) {
	var plans []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".json") {
			plans = append(plans, p)
		}
		return nil
	})
	return plans, err
}
