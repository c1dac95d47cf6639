package wrapgen

import (
	"fmt"
	"go/ast"
	"go/token"
	"sort"

	"github.com/teranos/wrapgen/logger"
	"github.com/teranos/wrapgen/wrapgen/util"
)

// ConfigurationParam is the parameter name that marks an API function and
// is supplied by the client instead of the caller.
const ConfigurationParam = "configuration"

// BlankParam is the name of a parameter the source function ignores
const BlankParam = "_"

const defaultContextName = "ctx"

// param is one entry of a flattened field list; grouped names (a, b int)
// become one entry per name, unnamed fields an entry with an empty name.
type param struct {
	name string
	typ  ast.Expr
}

func flatten(list *ast.FieldList) []param {
	if list == nil {
		return nil
	}
	var out []param
	for _, field := range list.List {
		if len(field.Names) == 0 {
			out = append(out, param{typ: field.Type})
			continue
		}
		for _, name := range field.Names {
			out = append(out, param{name: name.Name, typ: field.Type})
		}
	}
	return out
}

// ExtractFunctions returns the API functions of mod in file name order,
// then declaration order.
// Each function name is claimed in counts, so collisions are renamed in the
// order modules and declarations are processed. Ineligible functions are
// left out silently.
func ExtractFunctions(mod *Module, counts *NameCounts) []FunctionInfo {
	var out []FunctionInfo

	for _, file := range mod.Files {
		for _, decl := range file.File.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				info, reason := extractFunction(mod, file, d)
				if reason != "" {
					logExclusion(mod, d.Name.Name, reason)
					continue
				}
				info.Name = counts.Claim(info.SourceName)
				out = append(out, info)
			case *ast.GenDecl, *ast.BadDecl:
				// types, vars, consts and imports carry no endpoints
			}
		}
	}

	return out
}

func logExclusion(mod *Module, function, reason string) {
	if !logger.ShouldOutput(logger.Verbosity, logger.OutputExclusions) {
		return
	}
	logger.Debugw("Function left out of client",
		logger.FieldModule, mod.Name,
		logger.FieldFunction, function,
		logger.FieldReason, reason)
}

// extractFunction returns the function's metadata, or a non-empty reason
// why it is not an API function.
func extractFunction(mod *Module, file *SourceFile, fn *ast.FuncDecl) (FunctionInfo, string) {
	if reason := ineligible(file, fn); reason != "" {
		return FunctionInfo{}, reason
	}

	results, ok := extractResultTypes(fn.Type.Results)
	if !ok {
		return FunctionInfo{}, "result is not (T, Error[E])"
	}

	params := flatten(fn.Type.Params)
	forwarded, configAt := extractParams(mod, fn.Name.Name, params[1:])

	ctxName := params[0].name
	if ctxName == "" || ctxName == "_" {
		ctxName = contextName(forwarded)
	}

	return FunctionInfo{
		Module:         mod.Name,
		Package:        mod.Package,
		SourceName:     fn.Name.Name,
		Results:        results,
		Params:         forwarded,
		ConfigPosition: configAt,
		Doc:            firstDocLine(fn.Doc),
		ContextName:    ctxName,
		Imports:        file.Imports,
		Position:       positionOf(mod.Fset, fn.Pos()),
	}, ""
}

// ineligible applies the API function rules: exported top-level function,
// context.Context first, a parameter named configuration.
func ineligible(file *SourceFile, fn *ast.FuncDecl) string {
	switch {
	case fn.Recv != nil:
		return "method"
	case fn.Type.TypeParams != nil && fn.Type.TypeParams.NumFields() > 0:
		return "generic"
	case !ast.IsExported(fn.Name.Name):
		return "unexported"
	}

	params := flatten(fn.Type.Params)
	if len(params) == 0 || !file.isContext(params[0].typ) {
		return "first parameter is not context.Context"
	}

	for _, p := range params[1:] {
		if p.name == ConfigurationParam {
			return ""
		}
	}
	return "no configuration parameter"
}

// isContext reports whether expr names context.Context through this
// file's imports.
func (f *SourceFile) isContext(expr ast.Expr) bool {
	switch t := expr.(type) {
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		return ok && f.contextNames[pkg.Name] && t.Sel.Name == "Context"
	case *ast.Ident:
		return f.dotContext && t.Name == "Context"
	case *ast.ParenExpr:
		return f.isContext(t.X)
	}
	return false
}

// contextName names an unnamed context parameter: ctx, or ctx2, ctx3...
// when a forwarded parameter already uses the name.
func contextName(params []Param) string {
	used := make(map[string]bool, len(params))
	for _, p := range params {
		used[p.Name] = true
	}
	name := defaultContextName
	for i := 2; used[name]; i++ {
		name = fmt.Sprintf("%s%d", defaultContextName, i)
	}
	return name
}

// extractParams keeps declaration order and drops the configuration
// parameter. A blank parameter is kept as "_": the method does not take it
// and passes the zero value. configAt is the number of forwarded parameters
// declared before configuration.
func extractParams(mod *Module, function string, params []param) (out []Param, configAt int) {
	configAt = -1
	for _, p := range params {
		switch p.name {
		case ConfigurationParam:
			if configAt < 0 {
				configAt = len(out)
			}
			continue
		case "", "_":
			if logger.ShouldOutput(logger.Verbosity, logger.OutputExclusions) {
				logger.Debugw("Blank parameter receives its zero value",
					logger.FieldModule, mod.Name,
					logger.FieldFunction, function,
					logger.FieldParam, util.ExprString(p.typ))
			}
			p.name = BlankParam
		}

		typ := p.typ
		variadic := false
		if ell, ok := typ.(*ast.Ellipsis); ok {
			typ = ell.Elt
			variadic = true
		}

		out = append(out, Param{
			Name:     p.name,
			Type:     util.ExprString(typ),
			Variadic: variadic,
		})
	}
	return out, configAt
}

// extractResultTypes accepts exactly (T, Error[E]), the wrapper optionally
// package qualified and optionally behind a pointer.
func extractResultTypes(results *ast.FieldList) (ResultTypes, bool) {
	flat := flatten(results)
	if len(flat) != 2 {
		return ResultTypes{}, false
	}

	errExpr, pointer := util.Deref(flat[1].typ)
	base, args, ok := util.Instance(errExpr)
	if !ok || len(args) != 1 {
		return ResultTypes{}, false
	}

	if _, name, ok := util.TypeName(base); !ok || name != "Error" {
		return ResultTypes{}, false
	}

	return ResultTypes{
		Success:      util.ExprString(flat[0].typ),
		Error:        util.ExprString(args[0]),
		ErrorWrapper: util.ExprString(base),
		ErrorPointer: pointer,
	}, true
}

// sortFunctions orders the collection by (module, function name).
func sortFunctions(functions []FunctionInfo) {
	sort.SliceStable(functions, func(i, j int) bool {
		if functions[i].Module != functions[j].Module {
			return functions[i].Module < functions[j].Module
		}
		return functions[i].Name < functions[j].Name
	})
}

// ParseOptions controls module parsing
type ParseOptions struct {
	Extension string
}

// ParseModules parses each module of dir in the given order, extracts its
// API functions with one run-wide NameCounts and returns the collection
// sorted by (module, function name). The first unreadable or malformed
// module aborts the run.
func ParseModules(dir string, modules []string, opts ParseOptions) ([]FunctionInfo, error) {
	fset := token.NewFileSet()
	counts := NewNameCounts()

	var functions []FunctionInfo
	for _, name := range modules {
		mod, err := ParseModule(fset, dir, name, opts.Extension)
		if err != nil {
			return nil, err
		}

		found := ExtractFunctions(mod, counts)
		if logger.ShouldOutput(logger.Verbosity, logger.OutputProgress) {
			logger.Infow("Parsed module",
				logger.FieldModule, name,
				logger.FieldFunctions, len(found))
		}
		functions = append(functions, found...)
	}

	sortFunctions(functions)
	return functions, nil
}
