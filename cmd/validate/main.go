package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/language-rpg/pkg/catalog"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [catalog.json]\n", os.Args[0])
		os.Exit(1)
	}

	var filename string
	if len(os.Args) == 2 {
		filename = os.Args[1]
	}

	if err := run(filename, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog is valid!")
}

// run validates the catalog at filename, or the embedded one when filename is empty.
// Warnings are printed to w; any error-level problem fails the run.
func run(filename string, w io.Writer) error {
	c, err := load(filename, w)
	if err != nil {
		return err
	}

	problems := catalog.Validate(c)
	var errs []string
	for _, p := range problems {
		if p.Severity == catalog.SeverityError {
			errs = append(errs, p.String())
			continue
		}
		fmt.Fprintln(w, p.String())
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}

func load(filename string, w io.Writer) (*catalog.Catalog, error) {
	if filename == "" {
		fmt.Fprintln(w, "Validating embedded catalog...")
		return catalog.LoadEmbedded()
	}

	fmt.Fprintf(w, "Validating %s...\n", filename)
	if !strings.HasSuffix(filepath.Base(filename), ".json") {
		return nil, fmt.Errorf("catalog file must have .json extension: %s", filepath.Base(filename))
	}
	return catalog.LoadFile(filename)
}
