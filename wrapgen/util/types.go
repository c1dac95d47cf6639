package util

import (
	"go/ast"
	"go/types"
)

// IsTypeExpr reports whether expr is syntactically a Go type.
// Array lengths may be any constant-looking expression; everything else
// must itself be a type.
func IsTypeExpr(expr ast.Expr) bool {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name != "_"

	case *ast.SelectorExpr:
		// Qualified type like time.Time
		_, ok := t.X.(*ast.Ident)
		return ok

	case *ast.StarExpr:
		return IsTypeExpr(t.X)

	case *ast.ParenExpr:
		return IsTypeExpr(t.X)

	case *ast.ArrayType:
		if t.Len != nil && !isArrayLen(t.Len) {
			return false
		}
		return IsTypeExpr(t.Elt)

	case *ast.MapType:
		return IsTypeExpr(t.Key) && IsTypeExpr(t.Value)

	case *ast.ChanType:
		return IsTypeExpr(t.Value)

	case *ast.FuncType:
		return t.TypeParams == nil && fieldTypes(t.Params, true) && fieldTypes(t.Results, false)

	case *ast.StructType:
		return fieldTypes(t.Fields, false)

	case *ast.InterfaceType:
		// Method sets and type constraints are kept as written
		return true

	case *ast.IndexExpr:
		// Generic instantiation: Page[Pet]
		return isTypeName(t.X) && IsTypeExpr(t.Index)

	case *ast.IndexListExpr:
		if !isTypeName(t.X) {
			return false
		}
		for _, idx := range t.Indices {
			if !IsTypeExpr(idx) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func isTypeName(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		return IsTypeExpr(expr)
	}
	return false
}

func isArrayLen(expr ast.Expr) bool {
	switch t := expr.(type) {
	case *ast.BasicLit, *ast.Ident, *ast.SelectorExpr, *ast.Ellipsis:
		return true
	case *ast.BinaryExpr:
		return isArrayLen(t.X) && isArrayLen(t.Y)
	case *ast.ParenExpr:
		return isArrayLen(t.X)
	}
	return false
}

// fieldTypes checks every field type of a list; variadic is only legal in
// the last parameter of a func type.
func fieldTypes(list *ast.FieldList, params bool) bool {
	if list == nil {
		return true
	}
	for i, f := range list.List {
		typ := f.Type
		if ell, ok := typ.(*ast.Ellipsis); ok {
			if !params || i != len(list.List)-1 {
				return false
			}
			typ = ell.Elt
		}
		if !IsTypeExpr(typ) {
			return false
		}
	}
	return true
}

// IsPointerType checks if the AST expression represents a pointer type.
func IsPointerType(expr ast.Expr) bool {
	_, ok := expr.(*ast.StarExpr)
	return ok
}

// Deref strips one pointer level, reporting whether there was one.
func Deref(expr ast.Expr) (ast.Expr, bool) {
	if star, ok := expr.(*ast.StarExpr); ok {
		return star.X, true
	}
	return expr, false
}

// TypeName splits a named type into its package qualifier and name:
// Error -> ("", "Error"), apis.Error -> ("apis", "Error").
func TypeName(expr ast.Expr) (qualifier, name string, ok bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return "", t.Name, true
	case *ast.SelectorExpr:
		if pkg, isIdent := t.X.(*ast.Ident); isIdent {
			return pkg.Name, t.Sel.Name, true
		}
	}
	return "", "", false
}

// Instance splits a generic instantiation into its base type and type
// arguments: apis.Error[Pet] -> (apis.Error, [Pet]).
func Instance(expr ast.Expr) (base ast.Expr, args []ast.Expr, ok bool) {
	switch t := expr.(type) {
	case *ast.IndexExpr:
		return t.X, []ast.Expr{t.Index}, true
	case *ast.IndexListExpr:
		return t.X, t.Indices, true
	}
	return nil, nil, false
}

// IsPredeclared reports whether name is one of Go's universe-scope
// identifiers (int, string, error, any, comparable, ...).
func IsPredeclared(name string) bool {
	return types.Universe.Lookup(name) != nil
}

// ExprString renders a type expression in canonical single-line form.
func ExprString(expr ast.Expr) string {
	return types.ExprString(expr)
}
