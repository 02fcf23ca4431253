//nolint:testpackage // Helpers for tests of internal functions
package run

import (
	"go/token"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// stubLoader implements PackageLoader with canned files or a canned error.
type stubLoader struct {
	files []*dst.File
	fset  *token.FileSet
	err   error
}

func (l *stubLoader) Load(string) ([]*dst.File, *token.FileSet, error) {
	if l.err != nil {
		return nil, nil, l.err
	}

	return l.files, l.fset, nil
}

// parseFixture parses Go source text into a single-file package.
func parseFixture(t *testing.T, src string) []*dst.File {
	t.Helper()

	dec := decorator.NewDecorator(token.NewFileSet())

	file, err := dec.Parse(src)
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}

	return []*dst.File{file}
}

// fixtureInterface parses the fixture and returns the named interface from
// it.
func fixtureInterface(t *testing.T, src, name string) (ifaceWithDetails, []*dst.File) {
	t.Helper()

	files := parseFixture(t, src)

	iface, err := findInterface(files, name, ".")
	if err != nil {
		t.Fatalf("failed to find fixture interface %s: %v", name, err)
	}

	return iface, files
}
