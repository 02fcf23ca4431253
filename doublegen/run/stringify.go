package run

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// expandFieldListTypes expands a field list into individual type strings. For
// fields with multiple names (e.g. "a, b int"), the type appears once per
// name. Unnamed fields contribute their type once.
func expandFieldListTypes(fields []*dst.Field) []string {
	var parts []string

	for _, f := range fields {
		typeStr := StringifyExpr(f.Type)

		count := len(f.Names)
		if count == 0 {
			count = 1
		}

		for range count {
			parts = append(parts, typeStr)
		}
	}

	return parts
}

// StringifyExpr converts a DST expression to its string representation.
//
//nolint:cyclop,funlen // Type-switch dispatcher handling all DST expression types; complexity is inherent
func StringifyExpr(expr dst.Expr) string {
	if expr == nil {
		return ""
	}

	switch typedExpr := expr.(type) {
	case *dst.Ident:
		return typedExpr.Name
	case *dst.BasicLit:
		return typedExpr.Value
	case *dst.SelectorExpr:
		return StringifyExpr(typedExpr.X) + "." + typedExpr.Sel.Name
	case *dst.StarExpr:
		return "*" + StringifyExpr(typedExpr.X)
	case *dst.ArrayType:
		if typedExpr.Len != nil {
			return "[" + StringifyExpr(typedExpr.Len) + "]" + StringifyExpr(typedExpr.Elt)
		}

		return "[]" + StringifyExpr(typedExpr.Elt)
	case *dst.MapType:
		return "map[" + StringifyExpr(typedExpr.Key) + "]" + StringifyExpr(typedExpr.Value)
	case *dst.ChanType:
		switch typedExpr.Dir {
		case dst.SEND:
			return "chan<- " + StringifyExpr(typedExpr.Value)
		case dst.RECV:
			return "<-chan " + StringifyExpr(typedExpr.Value)
		default:
			return "chan " + StringifyExpr(typedExpr.Value)
		}
	case *dst.InterfaceType:
		return stringifyInterfaceType(typedExpr)
	case *dst.StructType:
		return stringifyStructType(typedExpr)
	case *dst.FuncType:
		return stringifyFuncType(typedExpr)
	case *dst.Ellipsis:
		return "..." + StringifyExpr(typedExpr.Elt)
	case *dst.IndexExpr:
		return StringifyExpr(typedExpr.X) + "[" + StringifyExpr(typedExpr.Index) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, len(typedExpr.Indices))
		for i, idx := range typedExpr.Indices {
			indices[i] = StringifyExpr(idx)
		}

		return StringifyExpr(typedExpr.X) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.ParenExpr:
		return "(" + StringifyExpr(typedExpr.X) + ")"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// stringifyFuncType converts a DST FuncType to its string representation.
func stringifyFuncType(funcType *dst.FuncType) string {
	var buf strings.Builder
	buf.WriteString("func")

	if funcType.Params != nil {
		buf.WriteString("(")
		buf.WriteString(strings.Join(expandFieldListTypes(funcType.Params.List), ", "))
		buf.WriteString(")")
	}

	if funcType.Results != nil && len(funcType.Results.List) > 0 {
		buf.WriteString(" ")

		resultParts := expandFieldListTypes(funcType.Results.List)
		if len(resultParts) > 1 {
			buf.WriteString("(")
			buf.WriteString(strings.Join(resultParts, ", "))
			buf.WriteString(")")
		} else {
			buf.WriteString(resultParts[0])
		}
	}

	return buf.String()
}

// stringifyInterfaceType converts an interface type to its string
// representation, preserving method signatures for interface literals.
func stringifyInterfaceType(interfaceType *dst.InterfaceType) string {
	if interfaceType.Methods == nil || len(interfaceType.Methods.List) == 0 {
		return "interface{}"
	}

	parts := make([]string, 0, len(interfaceType.Methods.List))

	for _, method := range interfaceType.Methods.List {
		var buf strings.Builder

		if len(method.Names) > 0 {
			buf.WriteString(method.Names[0].Name)
		}

		if funcType, ok := method.Type.(*dst.FuncType); ok {
			// Interface methods carry no "func" prefix
			buf.WriteString(strings.TrimPrefix(stringifyFuncType(funcType), "func"))
		} else {
			buf.WriteString(StringifyExpr(method.Type))
		}

		parts = append(parts, buf.String())
	}

	return "interface{ " + strings.Join(parts, "; ") + " }"
}

// stringifyStructType converts a DST StructType to its string
// representation, preserving field names, types, and tags.
func stringifyStructType(structType *dst.StructType) string {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return "struct{}"
	}

	fields := make([]string, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		var fieldStr strings.Builder

		if len(field.Names) > 0 {
			nameStrs := make([]string, len(field.Names))
			for i, name := range field.Names {
				nameStrs[i] = name.Name
			}

			fieldStr.WriteString(strings.Join(nameStrs, ", "))
			fieldStr.WriteString(" ")
		}

		fieldStr.WriteString(StringifyExpr(field.Type))

		if field.Tag != nil {
			fieldStr.WriteString(" ")
			fieldStr.WriteString(field.Tag.Value)
		}

		fields = append(fields, fieldStr.String())
	}

	return fmt.Sprintf("struct{ %s }", strings.Join(fields, "; "))
}
