package run

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/dave/dst"
)

// Vars.
var (
	errEmbeddedExternal  = errors.New("embedded interface from another package is not supported")
	errEmbeddedNotFound  = errors.New("embedded interface not found in package")
	errGenericInterface  = errors.New("generic interfaces are not supported")
	errInterfaceNotFound = errors.New("interface not found")
	errPackageNotFound   = errors.New("package not found in imports")
)

// ifaceWithDetails holds an interface type along with its type parameters.
type ifaceWithDetails struct {
	iface      *dst.InterfaceType
	typeParams *dst.FieldList
}

// localName extracts the local interface name from a possibly qualified name
// (e.g. "Store" from "pkg.Store").
func localName(name string) string {
	if _, after, ok := strings.Cut(name, "."); ok {
		return after
	}

	return name
}

// isLocalInterface checks if the interface name is local (no package
// qualifier).
func isLocalInterface(qualifiedName string) bool {
	return !strings.Contains(qualifiedName, ".")
}

// getInterfacePackagePath determines the import path for the interface.
// Returns "." for local interfaces, or resolves the full import path for
// qualified names like "pkg.Store" by inspecting the local package's imports.
func getInterfacePackagePath(qualifiedName string, pkgLoader PackageLoader) (string, error) {
	if isLocalInterface(qualifiedName) {
		return ".", nil
	}

	targetPkg, _, _ := strings.Cut(qualifiedName, ".")

	astFiles, _, err := pkgLoader.Load(".")
	if err != nil {
		return "", fmt.Errorf("failed to load local package: %w", err)
	}

	return findImportPath(astFiles, targetPkg)
}

// findImportPath searches the files' imports for a package known by the given
// name, handling both aliased and path-suffix matches.
func findImportPath(astFiles []*dst.File, targetPkg string) (string, error) {
	for _, file := range astFiles {
		for _, imp := range file.Imports {
			importPath, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				return "", fmt.Errorf("failed to unquote import path %q: %w", imp.Path.Value, err)
			}

			if imp.Name != nil && imp.Name.Name == targetPkg {
				return importPath, nil
			}

			if importPathMatchesPackageName(importPath, targetPkg) {
				return importPath, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %q", errPackageNotFound, targetPkg)
}

// importPathMatchesPackageName checks if the last segment of an import path
// matches the target package name.
func importPathMatchesPackageName(importPath, targetPkg string) bool {
	parts := strings.Split(importPath, "/")
	return len(parts) > 0 && parts[len(parts)-1] == targetPkg
}

// findInterface finds the interface by name in the parsed files. Generic
// interfaces are rejected: the double's argument packing requires concrete
// comparable types.
func findInterface(astFiles []*dst.File, interfaceName, pkgImportPath string) (ifaceWithDetails, error) {
	for _, file := range astFiles {
		found := searchFileForInterface(file, interfaceName)
		if found == nil {
			continue
		}

		if found.typeParams != nil && len(found.typeParams.List) > 0 {
			return ifaceWithDetails{}, fmt.Errorf("%w: %q", errGenericInterface, interfaceName)
		}

		return *found, nil
	}

	return ifaceWithDetails{}, fmt.Errorf(
		"%w: named %q in package %q", errInterfaceNotFound, interfaceName, pkgImportPath,
	)
}

// searchFileForInterface searches a single file for an interface with the
// given name. Returns nil if not found.
func searchFileForInterface(file *dst.File, interfaceName string) *ifaceWithDetails {
	var found *ifaceWithDetails

	dst.Inspect(file, func(node dst.Node) bool {
		genDecl, ok := node.(*dst.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			return true
		}

		for _, spec := range genDecl.Specs {
			typeSpec, isTypeSpec := spec.(*dst.TypeSpec)
			if !isTypeSpec || typeSpec.Name.Name != interfaceName {
				continue
			}

			iface, isInterface := typeSpec.Type.(*dst.InterfaceType)
			if !isInterface {
				continue
			}

			found = &ifaceWithDetails{iface: iface, typeParams: typeSpec.TypeParams}

			return false
		}

		return true
	})

	return found
}

// collectMethods gathers the full method set of an interface, expanding
// interfaces embedded from the same package recursively. Explicitly declared
// methods win over promoted ones. Embedding an interface from another package
// is not supported and reported as an error.
func collectMethods(
	iface *dst.InterfaceType, astFiles []*dst.File, pkgImportPath string,
) (map[string]*dst.FuncType, error) {
	methods := make(map[string]*dst.FuncType)

	err := addMethods(iface, astFiles, pkgImportPath, methods, make(map[string]bool))
	if err != nil {
		return nil, err
	}

	return methods, nil
}

// addMethods merges one interface's methods into the accumulated set,
// recursing into embedded interfaces.
func addMethods(
	iface *dst.InterfaceType,
	astFiles []*dst.File,
	pkgImportPath string,
	methods map[string]*dst.FuncType,
	visited map[string]bool,
) error {
	if iface.Methods == nil {
		return nil
	}

	for _, field := range iface.Methods.List {
		if len(field.Names) > 0 {
			name := field.Names[0].Name

			ftype, ok := field.Type.(*dst.FuncType)
			if !ok {
				continue
			}

			if _, exists := methods[name]; !exists {
				methods[name] = ftype
			}

			continue
		}

		err := addEmbeddedMethods(field.Type, astFiles, pkgImportPath, methods, visited)
		if err != nil {
			return err
		}
	}

	return nil
}

// addEmbeddedMethods resolves an embedded interface reference and merges its
// methods.
func addEmbeddedMethods(
	expr dst.Expr,
	astFiles []*dst.File,
	pkgImportPath string,
	methods map[string]*dst.FuncType,
	visited map[string]bool,
) error {
	switch embedded := expr.(type) {
	case *dst.Ident:
		if visited[embedded.Name] {
			return nil
		}

		visited[embedded.Name] = true

		for _, file := range astFiles {
			if found := searchFileForInterface(file, embedded.Name); found != nil {
				return addMethods(found.iface, astFiles, pkgImportPath, methods, visited)
			}
		}

		return fmt.Errorf("%w: %q in package %q", errEmbeddedNotFound, embedded.Name, pkgImportPath)
	case *dst.SelectorExpr:
		return fmt.Errorf("%w: %q", errEmbeddedExternal, StringifyExpr(expr))
	default:
		// Type-set elements (unions, ~T terms) have no method to double.
		return nil
	}
}

// sortedMethodNames returns the method names in the deterministic order the
// generated file declares them.
func sortedMethodNames(methods map[string]*dst.FuncType) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
