// doublegen generates test doubles for Go interfaces, backed by the mocks in
// github.com/DonaldWhyte/double. Install it with
// `go install github.com/DonaldWhyte/double/doublegen@latest` and add a
// `//go:generate doublegen <interface>` comment next to the interface you
// want doubled. The generated struct is named <interface>Double unless a
// `--name <name>` flag overrides it, and lands in generated_<name>.go (or
// generated_<name>_test.go when generating from a test file or test package).
//
// Every method of the generated double delegates to its own Mock, keyed by a
// comparable packing of the method's arguments, so argument types must be
// comparable: methods with slice, map, func, interface, or variadic
// parameters are rejected.
package main

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"github.com/DonaldWhyte/double/doublegen/run"
	"github.com/dave/dst"
)

// main is the entry point of the doublegen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using the os package.
type realFileSystem struct{}

// Glob returns the names of all files matching pattern.
func (fs *realFileSystem) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob failed for pattern %s: %w", pattern, err)
	}

	return matches, nil
}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load loads a package by import path and returns its DST files and FileSet.
// Parsing is syntax only; doubles are generated without type checking.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, *token.FileSet, error) {
	files, fset, err := run.PackageDST(importPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, fset, nil
}
