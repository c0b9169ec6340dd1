// Package main generates CLI reference documentation from the emag-catalog
// command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/emag-catalog/cmd/emag-catalog/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	man := flag.Bool("man", false, "also generate man pages under <output>/man")
	flag.Parse()

	if err := generate(*output, *man); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(output string, man bool) error {
	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	// Relative links keep the tree browsable on any forge.
	linkHandler := func(name string) string {
		return "./" + strings.ToLower(name)
	}
	if err := doc.GenMarkdownTreeCustom(root, output, func(string) string { return "" }, linkHandler); err != nil {
		return fmt.Errorf("generating markdown: %w", err)
	}

	if !man {
		return nil
	}
	manDir := filepath.Join(output, "man")
	if err := os.MkdirAll(manDir, 0o750); err != nil {
		return fmt.Errorf("creating man directory: %w", err)
	}
	header := &doc.GenManHeader{Title: "EMAG-CATALOG", Section: "1"}
	if err := doc.GenManTree(root, header, manDir); err != nil {
		return fmt.Errorf("generating man pages: %w", err)
	}
	return nil
}
