package run

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// PackageDST loads a package by import path and returns its DST files and
// FileSet. This is the shared implementation used by all PackageLoader
// implementations. Parsing is fast syntax-only work with no type checking.
//
//nolint:cyclop // Package loading and file parsing require multiple steps
func PackageDST(importPath string) ([]*dst.File, *token.FileSet, error) {
	dir, err := resolvePackageDir(importPath)
	if err != nil {
		return nil, nil, err
	}

	// For the local package, include test files: the interface being doubled
	// may be declared in a _test.go file. For everything else, skip them to
	// avoid parse errors from external test packages.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	includeTests := importPath == "."

	goFiles := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			continue
		}

		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		goFiles = append(goFiles, filepath.Join(dir, name))
	}

	if len(goFiles) == 0 {
		return nil, nil, fmt.Errorf("%w: no .go files in %s", errNoPackagesFound, dir)
	}

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	allFiles := make([]*dst.File, 0, len(goFiles))

	for _, goFile := range goFiles {
		dstFile, err := dec.ParseFile(goFile, nil, 0)
		if err != nil {
			// Skip files with parse errors
			continue
		}

		allFiles = append(allFiles, dstFile)
	}

	if len(allFiles) == 0 {
		return nil, nil, fmt.Errorf(
			"%w: failed to parse any .go files in %s",
			errNoPackagesFound,
			dir,
		)
	}

	return allFiles, fset, nil
}

// resolvePackageDir maps an import path to the directory holding its source.
func resolvePackageDir(importPath string) (string, error) {
	if importPath == "." {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}

		return dir, nil
	}

	// A simple name may be a local subdirectory package (e.g. "./store")
	// shadowing anything else by the same name.
	if resolved := resolveLocalPackagePath(importPath); resolved != importPath {
		return resolved, nil
	}

	srcDir, _ := os.Getwd()

	pkg, err := build.Import(importPath, srcDir, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("failed to find package %q: %w", importPath, err)
	}

	return pkg.Dir, nil
}

// resolveLocalPackagePath checks if importPath refers to a local subdirectory
// package. For simple package names (no slashes), it checks for a local
// subdirectory with that name containing .go files. Returns the absolute path
// to the local package directory if found, or the original importPath if it
// should be resolved normally.
func resolveLocalPackagePath(importPath string) string {
	if importPath == "." || strings.HasPrefix(importPath, "/") ||
		strings.Contains(importPath, "/") {
		return importPath
	}

	srcDir, err := os.Getwd()
	if err != nil {
		return importPath
	}

	localDir := filepath.Join(srcDir, importPath)

	info, err := os.Stat(localDir)
	if err != nil || !info.IsDir() {
		return importPath
	}

	entries, err := os.ReadDir(localDir)
	if err != nil {
		return importPath
	}

	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".go") && !e.IsDir() {
			return localDir
		}
	}

	return importPath
}

// unexported variables.
var (
	errNoPackagesFound = errors.New("no packages found")
)
