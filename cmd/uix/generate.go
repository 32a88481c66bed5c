package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uixlang/uix/internal/uixgen"
)

var (
	flagVerbose bool
	flagWatch   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [paths|./...]",
	Short: "Compile .uix files into Go source files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}

		files, err := collectUixFiles(paths)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no .uix files found")
		}

		err = generateAll(files, cfg)
		if flagWatch {
			// Watch mode keeps running after an initial failure; the
			// diagnostics were already printed per file.
			return watchAndGenerate(files, cfg)
		}
		return err
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print each processed file")
	generateCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "recompile when source files change")
}

// generateAll compiles every file, printing diagnostics as it goes.
// Failures in one file never stop its siblings.
func generateAll(files []string, cfg *uixgen.Config) error {
	var errorCount int
	for _, inputPath := range files {
		if err := generateFile(inputPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, renderFileError(inputPath, err))
			errorCount++
			continue
		}
		if flagVerbose {
			fmt.Printf("%s -> %s\n", inputPath, outputFileName(inputPath))
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

// generateFile compiles one .uix file to its _uix.go sibling.
func generateFile(inputPath string, cfg *uixgen.Config) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	output, err := uixgen.ParseAndGenerate(inputPath, string(source), cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(outputFileName(inputPath), output, 0o644)
}

// collectUixFiles finds all .uix files from the given paths.
// Supports:
//   - Direct file paths: "header.uix"
//   - Directory paths: "./components"
//   - Recursive pattern: "./..."
func collectUixFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		// Handle ./... recursive pattern
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ".uix") {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Collect all .uix files in directory (non-recursive)
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".uix") {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ".uix") {
			files = append(files, path)
		}
	}

	return files, nil
}

// outputFileName converts a .uix filename to its output .go filename.
// Examples:
//
//	header.uix -> header_uix.go
//	my-app.uix -> my_app_uix.go
func outputFileName(inputPath string) string {
	dir := filepath.Dir(inputPath)
	name := strings.TrimSuffix(filepath.Base(inputPath), ".uix")

	// Go tooling dislikes hyphens in filenames
	name = strings.ReplaceAll(name, "-", "_")

	return filepath.Join(dir, name+"_uix.go")
}
