// ABOUTME: Handles reading and writing ranking documents in TOML
// ABOUTME: Validates ids on load and keeps a .bak of the previous file on save

// Package ranking holds the disciplines ranking document: the Discipline
// record, the TOML file it is persisted in, and plain-text import and export.
package ranking

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"discipline-ranker/reorder"
)

// Sentinel errors for ranking documents
var (
	ErrDuplicateID  = errors.New("duplicate discipline id")
	ErrMissingID    = errors.New("discipline without id")
	ErrEmptyRanking = errors.New("ranking has no disciplines")
	ErrNotFound     = errors.New("discipline not found")
)

// Ranking is the persisted document: a title and the ordered disciplines
type Ranking struct {
	Title       string       `toml:"title" yaml:"title" json:"title"`
	Disciplines []Discipline `toml:"discipline" yaml:"disciplines" json:"disciplines"`
}

// Find returns the discipline with id
func (r Ranking) Find(id string) (Discipline, error) {
	idx := reorder.IndexOf(r.Disciplines, id)
	if idx < 0 {
		return Discipline{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return r.Disciplines[idx], nil
}

// Validate checks that every discipline has a unique, non-empty id
func (r Ranking) Validate() error {
	seen := make(map[string]struct{}, len(r.Disciplines))

	for i, d := range r.Disciplines {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return fmt.Errorf("%w: entry %d (%q)", ErrMissingID, i+1, d.Name)
		}

		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}

		seen[id] = struct{}{}
	}

	return nil
}

// Normalize orders disciplines by stored priority (file order breaks ties)
// and renumbers them 1..N
func (r Ranking) Normalize() Ranking {
	sorted := slices.Clone(r.Disciplines)
	slices.SortStableFunc(sorted, func(a, b Discipline) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	r.Disciplines = reorder.Renumber(sorted)

	return r
}

// ReadRanking loads and validates a ranking file. The result is normalized so
// priorities are dense regardless of what the file contained.
func ReadRanking(path string) (Ranking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ranking{}, fmt.Errorf("failed to read ranking: %w", err)
	}

	var r Ranking
	if err := toml.Unmarshal(data, &r); err != nil {
		return Ranking{}, fmt.Errorf("failed to parse ranking: %w", err)
	}

	if len(r.Disciplines) == 0 {
		return Ranking{}, ErrEmptyRanking
	}

	if err := r.Validate(); err != nil {
		return Ranking{}, err
	}

	return r.Normalize(), nil
}

// WriteRanking writes the ranking to path.
// The document is written to path+".tmp" first; only once that succeeded is
// the existing file moved to path+".bak" and the new one renamed into place,
// so a failed write never leaves path missing or truncated.
func WriteRanking(path string, r Ranking) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create ranking directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := writeRankingFile(tmpPath, r); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		if err := os.Rename(path, path+".bak"); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace ranking: %w", err)
	}

	return nil
}

func writeRankingFile(path string, r Ranking) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ranking: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close ranking file: %w", closeErr)
		}
	}()

	if err := toml.NewEncoder(file).Encode(r); err != nil {
		return fmt.Errorf("failed to write ranking: %w", err)
	}

	return nil
}
