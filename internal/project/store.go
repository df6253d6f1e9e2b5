// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/cloud-exit/stackforge/internal/config"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Get when no record exists for the name.
var ErrNotFound = errors.New("project not found")

// Store reads and writes project records under a directory, one yaml file
// per project.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore creates a store rooted at the standard projects directory.
func DefaultStore() *Store {
	return NewStore(config.ProjectsDir())
}

// Slugify converts a project name to a safe file-name slug.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// FileName returns the record file name for a project name (slug + CRC32
// hash, so distinct names that slugify identically stay distinct).
func FileName(name string) string {
	return fmt.Sprintf("%s_%08x.yaml", Slugify(name), POSIXCksumString(name))
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, FileName(name))
}

// Get loads the record for name. Returns ErrNotFound when no record exists.
func (s *Store) Get(name string) (*Record, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing record %s: %w", name, err)
	}
	return &rec, nil
}

// Exists reports whether a record exists for name.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Save writes the record, stamping CreatedAt on first save and UpdatedAt
// always.
func (s *Store) Save(rec *Record) error {
	if strings.TrimSpace(rec.Name) == "" {
		return errors.New("project name is empty")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	if rec.Version == 0 {
		rec.Version = 1
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(rec.Name), data, 0644)
}

// Delete removes the record for name. Returns ErrNotFound when no record
// exists.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

// List loads all records, sorted by name. A missing projects directory is
// an empty list, not an error.
func (s *Store) List() ([]*Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var records []*Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := yaml.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}
