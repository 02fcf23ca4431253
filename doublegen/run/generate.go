package run

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/dave/dst"
)

// Vars.
var (
	errNoMethods     = errors.New("interface has no methods to double")
	errNonComparable = errors.New("parameter type cannot key a mock (must be comparable)")
	errUnqualified   = errors.New("type from another package is not yet supported in doubled signatures")
	errVariadic      = errors.New("variadic methods are not supported")
)

// enginePkg is the import path of the mock engine every double delegates to.
const enginePkg = "github.com/DonaldWhyte/double"

// codeWriter provides buffer writing for the code generator.
type codeWriter struct {
	buf bytes.Buffer
}

// pf writes a formatted string to the buffer.
func (w *codeWriter) pf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

// bytes returns the buffer contents.
func (w *codeWriter) bytes() []byte {
	return w.buf.Bytes()
}

// retKind classifies how a generated method unpacks its mock's return value.
type retKind int

const (
	retNone   retKind = iota // no results; mock returns struct{}
	retBare                  // single result returned as-is
	retResult                // (T, error) via double.Result[T]
	retOption                // (T, bool) via double.Option[T]
	retStruct                // everything else via a generated Ret struct
)

// paramInfo describes one method parameter in the generated code.
type paramInfo struct {
	sigName   string // identifier used in the method signature and body
	fieldName string // exported field name in the Args struct
	typeStr   string
}

// methodPlan holds everything needed to emit one doubled method.
type methodPlan struct {
	name     string
	params   []paramInfo
	results  []string
	argsType string // comparable packing of the parameters
	retType  string // mock return type
	kind     retKind
}

// argsStructName returns the name of the generated Args struct, or "" when
// the parameters pack without one.
func (p *methodPlan) argsStructName(doubleName string) string {
	if len(p.params) < 2 {
		return ""
	}

	return doubleName + p.name + "Args"
}

// retStructName returns the name of the generated Ret struct, or "" when the
// results pack without one.
func (p *methodPlan) retStructName(doubleName string) string {
	if p.kind != retStruct {
		return ""
	}

	return doubleName + p.name + "Ret"
}

// generateDoubleCode renders the full generated file for the interface,
// gofmt-formatted and in the declaration order the rest of the project uses.
func generateDoubleCode(
	iface ifaceWithDetails, info generatorInfo, targetFiles []*dst.File, pkgImportPath string,
) (string, error) {
	methods, err := collectMethods(iface.iface, targetFiles, pkgImportPath)
	if err != nil {
		return "", err
	}

	if len(methods) == 0 {
		return "", fmt.Errorf("%w: %q", errNoMethods, info.interfaceName)
	}

	external := !isLocalInterface(info.interfaceName)

	ifaceRef := info.localInterfaceName
	if external {
		// Qualify by the target package's declared name, which the generated
		// file imports below.
		ifaceRef = targetFiles[0].Name.Name + "." + info.localInterfaceName
	}

	plans := make([]methodPlan, 0, len(methods))

	for _, name := range sortedMethodNames(methods) {
		plan, err := planMethod(info.doubleName, name, methods[name], external)
		if err != nil {
			return "", err
		}

		plans = append(plans, plan)
	}

	w := &codeWriter{}
	w.pf("// Code generated by doublegen. DO NOT EDIT.\n\n")
	w.pf("package %s\n\n", info.pkgName)
	writeImports(w, external, pkgImportPath)
	writeDoubleStruct(w, info.doubleName, ifaceRef, plans)
	writeConstructor(w, info.doubleName, plans)

	for _, plan := range plans {
		writeMethod(w, info.doubleName, plan)
	}

	for _, plan := range plans {
		writeArgsStruct(w, info.doubleName, plan)
		writeRetStruct(w, info.doubleName, plan)
	}

	w.pf("// unexported variables.\nvar (\n\t_ %s = (*%s)(nil)\n)\n", ifaceRef, info.doubleName)

	formatted, err := format.Source(w.bytes())
	if err != nil {
		return "", fmt.Errorf("error formatting generated code: %w", err)
	}

	return string(formatted), nil
}

// planMethod works out the argument and return packing for one method.
func planMethod(doubleName, name string, ftype *dst.FuncType, external bool) (methodPlan, error) {
	plan := methodPlan{name: name}

	params, err := planParams(name, ftype, external)
	if err != nil {
		return methodPlan{}, err
	}

	plan.params = params

	switch len(params) {
	case 0:
		plan.argsType = "struct{}"
	case 1:
		plan.argsType = params[0].typeStr
	default:
		plan.argsType = plan.argsStructName(doubleName)
	}

	results, err := planResults(name, ftype, external)
	if err != nil {
		return methodPlan{}, err
	}

	plan.results = results

	switch {
	case len(results) == 0:
		plan.kind = retNone
		plan.retType = "struct{}"
	case len(results) == 1:
		plan.kind = retBare
		plan.retType = results[0]
	case len(results) == 2 && results[1] == "error":
		plan.kind = retResult
		plan.retType = "double.Result[" + results[0] + "]"
	case len(results) == 2 && results[1] == "bool":
		plan.kind = retOption
		plan.retType = "double.Option[" + results[0] + "]"
	default:
		plan.kind = retStruct
		plan.retType = doubleName + name + "Ret"
	}

	return plan, nil
}

// planParams expands the parameter list, picking collision-free signature
// names and exported Args field names.
func planParams(methodName string, ftype *dst.FuncType, external bool) ([]paramInfo, error) {
	if ftype.Params == nil {
		return nil, nil
	}

	used := make(map[string]bool)

	for _, field := range ftype.Params.List {
		for _, ident := range field.Names {
			if usableParamName(ident.Name) {
				used[ident.Name] = true
			}
		}
	}

	var params []paramInfo

	for _, field := range ftype.Params.List {
		err := screenParamType(methodName, field.Type)
		if err != nil {
			return nil, err
		}

		if external {
			err = screenExternalType(methodName, field.Type)
			if err != nil {
				return nil, err
			}
		}

		typeStr := StringifyExpr(field.Type)

		count := len(field.Names)
		if count == 0 {
			count = 1
		}

		for i := range count {
			sigName := ""
			if i < len(field.Names) && usableParamName(field.Names[i].Name) {
				sigName = field.Names[i].Name
			} else {
				sigName = fallbackParamName(len(params)+1, used)
			}

			params = append(params, paramInfo{
				sigName:   sigName,
				fieldName: exportedFieldName(sigName),
				typeStr:   typeStr,
			})
		}
	}

	return params, nil
}

// planResults expands the result list into type strings.
func planResults(methodName string, ftype *dst.FuncType, external bool) ([]string, error) {
	if ftype.Results == nil {
		return nil, nil
	}

	if external {
		for _, field := range ftype.Results.List {
			err := screenExternalType(methodName, field.Type)
			if err != nil {
				return nil, err
			}
		}
	}

	return expandFieldListTypes(ftype.Results.List), nil
}

// usableParamName reports whether a declared parameter name can be used
// verbatim in the generated method. The blank identifier cannot be
// referenced, and "d" would shadow the receiver.
func usableParamName(name string) bool {
	return name != "" && name != "_" && name != "d"
}

// fallbackParamName returns a positional name like a1, avoiding any declared
// parameter names.
func fallbackParamName(pos int, used map[string]bool) string {
	name := fmt.Sprintf("a%d", pos)
	for used[name] {
		name = "a" + name
	}

	used[name] = true

	return name
}

// exportedFieldName capitalizes a parameter name for use as an Args struct
// field.
func exportedFieldName(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

// screenParamType rejects parameter types that cannot satisfy the mock's
// comparable key constraint: slices, maps, funcs, interfaces, and variadics.
// Named types are taken at their word; a named slice type will still fail to
// compile, which is the caller's signal to wrap the argument by hand.
func screenParamType(methodName string, expr dst.Expr) error {
	switch typed := expr.(type) {
	case *dst.Ellipsis:
		return fmt.Errorf("%w: method %s", errVariadic, methodName)
	case *dst.ArrayType:
		if typed.Len == nil {
			return rejectParam(methodName, expr)
		}

		return screenParamType(methodName, typed.Elt)
	case *dst.MapType, *dst.FuncType, *dst.InterfaceType:
		return rejectParam(methodName, expr)
	case *dst.Ident:
		if typed.Name == "any" || typed.Name == "error" {
			return rejectParam(methodName, expr)
		}

		return nil
	case *dst.StructType:
		if typed.Fields == nil {
			return nil
		}

		for _, field := range typed.Fields.List {
			err := screenParamType(methodName, field.Type)
			if err != nil {
				return err
			}
		}

		return nil
	case *dst.ParenExpr:
		return screenParamType(methodName, typed.X)
	default:
		// Pointers and channels are comparable regardless of what they
		// reference, and qualified or generic named types are assumed
		// comparable.
		return nil
	}
}

// rejectParam wraps errNonComparable with the offending method and type.
func rejectParam(methodName string, expr dst.Expr) error {
	return fmt.Errorf("%w: %s in method %s", errNonComparable, StringifyExpr(expr), methodName)
}

// screenExternalType rejects signature types that an interface from another
// package cannot carry into the generated file: anything named that is not a
// builtin would need import tracking the generator does not do yet.
func screenExternalType(methodName string, expr dst.Expr) error {
	switch typed := expr.(type) {
	case *dst.Ident:
		if builtinTypes[typed.Name] {
			return nil
		}

		return rejectExternal(methodName, expr)
	case *dst.SelectorExpr:
		return rejectExternal(methodName, expr)
	case *dst.StarExpr:
		return screenExternalType(methodName, typed.X)
	case *dst.ArrayType:
		return screenExternalType(methodName, typed.Elt)
	case *dst.MapType:
		err := screenExternalType(methodName, typed.Key)
		if err != nil {
			return err
		}

		return screenExternalType(methodName, typed.Value)
	case *dst.ChanType:
		return screenExternalType(methodName, typed.Value)
	case *dst.ParenExpr:
		return screenExternalType(methodName, typed.X)
	case *dst.Ellipsis:
		return screenExternalType(methodName, typed.Elt)
	default:
		return nil
	}
}

// rejectExternal wraps errUnqualified with the offending method and type.
func rejectExternal(methodName string, expr dst.Expr) error {
	return fmt.Errorf("%w: %s in method %s", errUnqualified, StringifyExpr(expr), methodName)
}

// writeImports emits the import block.
func writeImports(w *codeWriter, external bool, pkgImportPath string) {
	paths := []string{enginePkg}
	if external {
		paths = append(paths, pkgImportPath)
	}

	sort.Strings(paths)

	w.pf("import (\n")

	for _, path := range paths {
		w.pf("\t%q\n", path)
	}

	w.pf(")\n\n")
}

// writeDoubleStruct emits the double's struct type, one mock per method.
func writeDoubleStruct(w *codeWriter, doubleName, ifaceRef string, plans []methodPlan) {
	w.pf("// %s is a test double for %s. Each method delegates to its own mock.\n", doubleName, ifaceRef)
	w.pf("type %s struct {\n", doubleName)

	for _, plan := range plans {
		w.pf("\t%sMock *double.Mock[%s, %s]\n", plan.name, plan.argsType, plan.retType)
	}

	w.pf("}\n\n")
}

// writeConstructor emits the constructor, which wires a zero-value-defaulted
// mock per method.
func writeConstructor(w *codeWriter, doubleName string, plans []methodPlan) {
	w.pf("// New%s returns a %s whose method mocks all resolve to zero values until stubbed.\n", doubleName, doubleName)
	w.pf("func New%s() *%s {\n\treturn &%s{\n", doubleName, doubleName, doubleName)

	for _, plan := range plans {
		w.pf("\t\t%sMock: double.NewDefault[%s, %s](),\n", plan.name, plan.argsType, plan.retType)
	}

	w.pf("\t}\n}\n\n")
}

// writeMethod emits one interface method, packing arguments into the mock's
// key and unpacking its return value.
func writeMethod(w *codeWriter, doubleName string, plan methodPlan) {
	w.pf("// %s calls through to %sMock.\n", plan.name, plan.name)
	w.pf("func (d *%s) %s(%s)%s {\n", doubleName, plan.name, signatureParams(plan), signatureResults(plan))

	call := fmt.Sprintf("d.%sMock.Call(%s)", plan.name, callArgument(doubleName, plan))

	switch plan.kind {
	case retNone:
		w.pf("\t%s\n", call)
	case retBare:
		w.pf("\treturn %s\n", call)
	case retResult, retOption:
		w.pf("\treturn %s.Get()\n", call)
	case retStruct:
		w.pf("\tret := %s\n\n\treturn %s\n", call, retFieldList(plan))
	}

	w.pf("}\n\n")
}

// signatureParams renders the method's parameter list.
func signatureParams(plan methodPlan) string {
	parts := make([]string, len(plan.params))
	for i, param := range plan.params {
		parts[i] = param.sigName + " " + param.typeStr
	}

	return strings.Join(parts, ", ")
}

// signatureResults renders the method's result list, with a leading space
// when non-empty.
func signatureResults(plan methodPlan) string {
	switch len(plan.results) {
	case 0:
		return ""
	case 1:
		return " " + plan.results[0]
	default:
		return " (" + strings.Join(plan.results, ", ") + ")"
	}
}

// callArgument renders the expression passed to the mock's Call.
func callArgument(doubleName string, plan methodPlan) string {
	switch len(plan.params) {
	case 0:
		return "struct{}{}"
	case 1:
		return plan.params[0].sigName
	default:
		fields := make([]string, len(plan.params))
		for i, param := range plan.params {
			fields[i] = param.fieldName + ": " + param.sigName
		}

		return plan.argsStructName(doubleName) + "{" + strings.Join(fields, ", ") + "}"
	}
}

// retFieldList renders the return expression unpacking a Ret struct.
func retFieldList(plan methodPlan) string {
	parts := make([]string, len(plan.results))
	for i := range plan.results {
		parts[i] = fmt.Sprintf("ret.R%d", i+1)
	}

	return strings.Join(parts, ", ")
}

// writeArgsStruct emits the Args struct for methods with two or more
// parameters.
func writeArgsStruct(w *codeWriter, doubleName string, plan methodPlan) {
	name := plan.argsStructName(doubleName)
	if name == "" {
		return
	}

	w.pf("// %s packs the arguments to %s for stubbing and verification.\n", name, plan.name)
	w.pf("type %s struct {\n", name)

	for _, param := range plan.params {
		w.pf("\t%s %s\n", param.fieldName, param.typeStr)
	}

	w.pf("}\n\n")
}

// writeRetStruct emits the Ret struct for methods whose results fit neither a
// bare value nor Option/Result.
func writeRetStruct(w *codeWriter, doubleName string, plan methodPlan) {
	name := plan.retStructName(doubleName)
	if name == "" {
		return
	}

	w.pf("// %s packs the return values of %s for stubbing.\n", name, plan.name)
	w.pf("type %s struct {\n", name)

	for i, result := range plan.results {
		w.pf("\tR%d %s\n", i+1, result)
	}

	w.pf("}\n\n")
}

// builtinTypes lists the predeclared type identifiers usable without import
// qualification from any package.
//
//nolint:gochecknoglobals // Fixed lookup table for the external-type screen
var builtinTypes = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true,
	"complex64": true, "complex128": true, "error": true, "float32": true,
	"float64": true, "int": true, "int8": true, "int16": true,
	"int32": true, "int64": true, "rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true,
}
