package golang

import (
	"go/ast"
	"go/parser"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/wrapgen/util"
)

// qualifier rewrites type text captured inside a module so it means the
// same thing in the generated file: the module's own types gain the module
// qualifier and package qualifiers are mapped through the module's imports.
type qualifier struct {
	module string
	// pkg is the module's local name in the generated file
	pkg string
	// imports maps the module's local package names to import paths
	imports map[string]string
	set     *importSet
	// taken are identifiers a new import name must not shadow
	taken func(string) bool
}

// qualify re-parses typeText and returns its qualified form. Text that does
// not parse, is not a type, or names a package the module does not import
// is a synthesis failure.
func (q *qualifier) qualify(typeText string) (string, error) {
	expr, err := parser.ParseExpr(typeText)
	if err != nil {
		return "", errors.WrapSynthesis(err, "module %s: failed to re-parse type %q", q.module, typeText)
	}
	if !util.IsTypeExpr(expr) {
		return "", errors.Synthesis("module %s: %q is not a type expression", q.module, typeText)
	}

	var failure error
	root := astutil.Apply(expr, func(c *astutil.Cursor) bool {
		if failure != nil {
			return false
		}

		switch n := c.Node().(type) {
		case *ast.SelectorExpr:
			pkg, ok := n.X.(*ast.Ident)
			if !ok {
				failure = errors.Synthesis("module %s: unsupported qualified type in %q", q.module, typeText)
				return false
			}
			path, ok := q.imports[pkg.Name]
			if !ok {
				failure = errors.WithHint(
					errors.Synthesis("module %s: package %q in type %q is not imported by the module", q.module, pkg.Name, typeText),
					"give the import an explicit name in the module when its package name differs from its path",
				)
				return false
			}
			local := q.set.add(path, pkg.Name, q.taken)
			c.Replace(&ast.SelectorExpr{X: ast.NewIdent(local), Sel: ast.NewIdent(n.Sel.Name)})
			return false

		case *ast.Ident:
			// Field and method names inside struct and interface types
			if c.Name() == "Names" {
				return false
			}
			if n.Name == "_" || util.IsPredeclared(n.Name) {
				return false
			}
			c.Replace(&ast.SelectorExpr{X: ast.NewIdent(q.pkg), Sel: ast.NewIdent(n.Name)})
			return false
		}
		return true
	}, nil)

	if failure != nil {
		return "", failure
	}
	return util.ExprString(root.(ast.Expr)), nil
}
