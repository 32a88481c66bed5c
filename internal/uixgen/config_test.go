package uixgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uix.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tags := cfg.NativeTagSet()
	for _, tag := range []string{"div", "svg", "img", "canvas", "anchored"} {
		if !tags[tag] {
			t.Errorf("default allow-list missing %q", tag)
		}
	}
	if cfg.ConstructorPrefix != "New" {
		t.Errorf("ConstructorPrefix = %q, want New", cfg.ConstructorPrefix)
	}
	if cfg.ChildMethod != "Child" || cfg.ChildrenMethod != "Children" {
		t.Errorf("attach methods = %q/%q, want Child/Children", cfg.ChildMethod, cfg.ChildrenMethod)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
nativeTags: [stack, row]
constructorPrefix: Make
nodeType: Node
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.NativeTags) != 2 || cfg.NativeTags[0] != "stack" {
		t.Errorf("NativeTags = %v, want [stack row]", cfg.NativeTags)
	}
	if cfg.ConstructorPrefix != "Make" {
		t.Errorf("ConstructorPrefix = %q, want Make", cfg.ConstructorPrefix)
	}
	if cfg.NodeType != "Node" {
		t.Errorf("NodeType = %q, want Node", cfg.NodeType)
	}

	// Unset fields fall back to defaults.
	if cfg.ChildMethod != "Child" {
		t.Errorf("ChildMethod = %q, want default Child", cfg.ChildMethod)
	}
	if cfg.ToolkitImport != "github.com/uixlang/toolkit" {
		t.Errorf("ToolkitImport = %q, want default", cfg.ToolkitImport)
	}
}

func TestLoadConfig_Requires(t *testing.T) {
	type tc struct {
		requires string
		wantErr  bool
	}

	tests := map[string]tc{
		"satisfied":       {requires: ">= 0.3.0"},
		"satisfied range": {requires: ">= 0.1.0, < 1.0.0"},
		"unsatisfied":     {requires: ">= 9.0.0", wantErr: true},
		"invalid":         {requires: "not-a-constraint", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, "requires: \""+tt.requires+"\"\n")
			_, err := LoadConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "nativeTags: [unclosed\n")
		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "parsing") {
			t.Errorf("error = %q, want a parsing error", err)
		}
	})
}
