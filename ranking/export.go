// ABOUTME: Exports a ranking as YAML, JSON or TOML
// ABOUTME: Used by the export command to hand rankings to other tools

package ranking

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Export writes r to w in the given format
func Export(w io.Writer, r Ranking, format string) error {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unsupported export format %q (want yaml, json or toml)", format)
	}
}
