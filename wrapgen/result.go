// Package wrapgen synthesizes a typed client wrapper from a directory of API
// modules.
//
// Each module is one package directory of generated endpoint functions,
// imported as <import base>/<module>.
// A function qualifies when it is exported, takes a context.Context first,
// has a parameter named configuration, and returns (T, Error[E]). wrapgen
// extracts every qualifying function and renders one forwarding method per
// function on the client type, so callers write
//
//	pet, err := client.GetPetById(ctx, 42)
//
// instead of threading the shared configuration through every call.
package wrapgen

import (
	"go/token"
)

// Param is one forwarded parameter, in declaration order
type Param struct {
	// Name is BlankParam for a parameter the function ignores; the method
	// does not take it and the call passes the type's zero value
	Name string
	// Type is the canonical single-line text of the declared type; for a
	// variadic parameter it is the element type
	Type     string
	Variadic bool
}

// ResultTypes holds the two-slot outcome of an endpoint function
type ResultTypes struct {
	// Success is the first result's type text
	Success string
	// Error is the text of the single type argument of the error wrapper
	Error string
	// ErrorWrapper is the wrapper type as written, e.g. "apis.Error" or "Error"
	ErrorWrapper string
	// ErrorPointer records whether the wrapper was returned behind a pointer
	ErrorPointer bool
}

// FunctionInfo describes one API function to forward
type FunctionInfo struct {
	// Module is the module directory name, e.g. "token_api"
	Module string
	// Package is the package clause of the module
	Package string
	// Name is the function name after collision renaming, e.g. "Foo_2"
	Name string
	// SourceName is the declared name the forwarding call targets
	SourceName string
	Results    ResultTypes
	Params     []Param
	// ConfigPosition is how many Params precede the configuration argument
	// in the forwarding call; 0 for the conventional (ctx, configuration, ...)
	ConfigPosition int
	// Doc is the first documentation line, trimmed; "" when absent
	Doc string
	// ContextName is the name the generated method gives its context parameter
	ContextName string
	// Imports maps local package names visible in the declaring file to
	// import paths
	Imports  map[string]string
	Position Position
}

// Position represents a source code location
type Position struct {
	// File is the path of the declaring file as read
	File string
	// Line is the line number of the func keyword
	Line int
}

func positionOf(fset *token.FileSet, pos token.Pos) Position {
	p := fset.Position(pos)
	return Position{File: p.Filename, Line: p.Line}
}
