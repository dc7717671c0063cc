// ABOUTME: Defines the Discipline record ranked by the user
// ABOUTME: Implements the reorder engine's Sortable contract with value semantics

package ranking

import "fmt"

// Discipline is one rankable course in a student's disciplines ranking
type Discipline struct {
	ID       string `toml:"id" yaml:"id" json:"id"`
	Name     string `toml:"name" yaml:"name" json:"name"`
	Code     string `toml:"code,omitempty" yaml:"code,omitempty" json:"code,omitempty"`
	Credits  int    `toml:"credits,omitempty" yaml:"credits,omitempty" json:"credits,omitempty"`
	Priority int    `toml:"priority" yaml:"priority" json:"priority"`
}

// SortID returns the stable identity used by the reorder engine
func (d Discipline) SortID() string {
	return d.ID
}

// SortPriority returns the discipline's 1-based rank
func (d Discipline) SortPriority() int {
	return d.Priority
}

// WithPriority returns a copy of d with the given priority
func (d Discipline) WithPriority(priority int) Discipline {
	d.Priority = priority

	return d
}

// String returns a formatted one-line representation of the discipline
func (d Discipline) String() string {
	code := d.Code
	if code == "" {
		code = "-"
	}

	return fmt.Sprintf("%2d. %-10s %-40s %d cr", d.Priority, code, d.Name, d.Credits)
}
