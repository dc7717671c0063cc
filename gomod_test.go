// ABOUTME: Checks the developer tools declared in go.mod
// ABOUTME: Lint, format and test runners must stay pinned alongside the code they check

package main

import (
	"os"
	"testing"

	"golang.org/x/mod/modfile"
)

func TestGoModDeclaresDevTools(t *testing.T) {
	data, err := os.ReadFile("go.mod")
	if err != nil {
		t.Fatalf("failed to read go.mod: %v", err)
	}

	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		t.Fatalf("failed to parse go.mod: %v", err)
	}

	declared := map[string]bool{}
	for _, tool := range f.Tool {
		declared[tool.Path] = true
	}

	// golangci-lint backs the nolint directives in the source
	tools := []struct {
		path   string
		module string
	}{
		{"github.com/golangci/golangci-lint/cmd/golangci-lint", "github.com/golangci/golangci-lint"},
		{"golang.org/x/tools/cmd/deadcode", "golang.org/x/tools"},
		{"golang.org/x/tools/cmd/goimports", "golang.org/x/tools"},
		{"golang.org/x/vuln/cmd/govulncheck", "golang.org/x/vuln"},
		{"gotest.tools/gotestsum", "gotest.tools/gotestsum"},
		{"mvdan.cc/gofumpt", "mvdan.cc/gofumpt"},
	}

	required := map[string]bool{}
	for _, req := range f.Require {
		required[req.Mod.Path] = true
	}

	for _, tool := range tools {
		if !declared[tool.path] {
			t.Errorf("tool %s not declared", tool.path)
		}

		if !required[tool.module] {
			t.Errorf("module %s for tool %s not required", tool.module, tool.path)
		}
	}
}
