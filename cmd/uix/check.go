package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uixlang/uix/internal/uixgen"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths|./...]",
	Short: "Parse .uix files and report diagnostics without writing output",
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

		var errorCount int
		for _, path := range files {
			if err := checkFile(path, cfg); err != nil {
				fmt.Fprintln(os.Stderr, renderFileError(path, err))
				errorCount++
			}
		}

		if errorCount > 0 {
			return fmt.Errorf("%d of %d file(s) had errors", errorCount, len(files))
		}
		fmt.Println(renderOK(fmt.Sprintf("%d file(s) ok", len(files))))
		return nil
	},
}

// checkFile parses one file, discarding the tree.
func checkFile(path string, cfg *uixgen.Config) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lexer := uixgen.NewLexer(path, string(source))
	parser := uixgen.NewParserWithConfig(lexer, cfg)
	_, err = parser.ParseFile()
	return err
}
