// ABOUTME: Imports a plain-text list of disciplines into a ranking
// ABOUTME: One discipline per line, file order becomes the initial ranking

package ranking

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"discipline-ranker/reorder"
)

// ImportList reads a plain-text discipline list from path.
// See ParseList for the line format.
func ImportList(path string) (Ranking, error) {
	file, err := os.Open(path)
	if err != nil {
		return Ranking{}, fmt.Errorf("failed to open list: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	return ParseList(file)
}

// ParseList reads one discipline per line. Empty lines and lines starting
// with "#" are skipped. A line is either a bare name or "CODE | Name | credits"
// (credits optional). Every discipline gets a fresh UUID.
func ParseList(r io.Reader) (Ranking, error) {
	var disciplines []Discipline

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d, err := parseListLine(line)
		if err != nil {
			return Ranking{}, fmt.Errorf("line %d: %w", lineNo, err)
		}

		d.ID = uuid.NewString()
		disciplines = append(disciplines, d)
	}

	if err := scanner.Err(); err != nil {
		return Ranking{}, fmt.Errorf("error reading list: %w", err)
	}

	if len(disciplines) == 0 {
		return Ranking{}, ErrEmptyRanking
	}

	return Ranking{Disciplines: reorder.Renumber(disciplines)}, nil
}

func parseListLine(line string) (Discipline, error) {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 1:
		return Discipline{Name: parts[0]}, nil
	case 2, 3:
		d := Discipline{Code: parts[0], Name: parts[1]}
		if d.Name == "" {
			return Discipline{}, fmt.Errorf("missing name in %q", line)
		}

		if len(parts) == 3 && parts[2] != "" {
			credits, err := strconv.Atoi(parts[2])
			if err != nil || credits < 0 {
				return Discipline{}, fmt.Errorf("invalid credits %q", parts[2])
			}

			d.Credits = credits
		}

		return d, nil
	default:
		return Discipline{}, fmt.Errorf("too many fields in %q", line)
	}
}
