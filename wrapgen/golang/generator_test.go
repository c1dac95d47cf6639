package golang

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/wrapgen"
)

const importBase = "example.com/petstore/openapi/apis"

var openapiImports = map[string]string{
	"context": "context",
	"openapi": "example.com/petstore/openapi",
}

func newGenerator() *Generator {
	return &Generator{
		Package:     "client",
		ClientType:  "Client",
		ConfigField: "config",
		Receiver:    "c",
		ImportBase:  importBase,
	}
}

func function(module, name string, params ...wrapgen.Param) wrapgen.FunctionInfo {
	return wrapgen.FunctionInfo{
		Module:      module,
		Package:     module,
		Name:        name,
		SourceName:  name,
		Params:      params,
		ContextName: "ctx",
		Imports:     openapiImports,
		Results: wrapgen.ResultTypes{
			Success:      "int",
			Error:        "Problem",
			ErrorWrapper: "openapi.Error",
			ErrorPointer: true,
		},
	}
}

func TestGenerate_TwoModulesWithCollision(t *testing.T) {
	alpha := function("alpha", "Foo", wrapgen.Param{Name: "x", Type: "int"})
	alpha.Doc = "Foo does things."
	alpha.Results.Error = "Bar"

	beta := function("beta", "Foo_2")
	beta.SourceName = "Foo"
	beta.Results = wrapgen.ResultTypes{
		Success:      "struct{}",
		Error:        "NoContent",
		ErrorWrapper: "openapi.Error",
		ErrorPointer: true,
	}

	out, err := newGenerator().Generate([]wrapgen.FunctionInfo{alpha, beta})
	require.NoError(t, err)

	want := `// Code generated by wrapgen. DO NOT EDIT.

package client

import (
	"context"

	"example.com/petstore/openapi"
	"example.com/petstore/openapi/apis/alpha"
	"example.com/petstore/openapi/apis/beta"
)

// ALPHA API

// Foo does things.
func (c *Client) Foo(ctx context.Context, x int) (int, *openapi.Error[alpha.Bar]) {
	return alpha.Foo(ctx, c.config, x)
}

// BETA API

func (c *Client) Foo_2(ctx context.Context) (struct{}, *openapi.Error[beta.NoContent]) {
	return beta.Foo(ctx, c.config)
}
`
	assert.Equal(t, want, string(out))
}

func TestGenerate_BannerStripsApiSuffix(t *testing.T) {
	out, err := newGenerator().Generate([]wrapgen.FunctionInfo{
		function("token_api", "CreateToken"),
		function("order_api", "ListOrders"),
	})
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, "// ORDER API\n")
	assert.Contains(t, src, "// TOKEN API\n")
	// Modules in ascending order regardless of input order
	assert.Less(t, strings.Index(src, "// ORDER API"), strings.Index(src, "// TOKEN API"))
}

func TestGenerate_IsValidGo(t *testing.T) {
	withModels := function("pet_api", "FindPets",
		wrapgen.Param{Name: "status", Type: "[]Status"},
		wrapgen.Param{Name: "since", Type: "*time.Time"},
		wrapgen.Param{Name: "tags", Type: "string", Variadic: true},
	)
	withModels.Package = "petapi"
	withModels.Results = wrapgen.ResultTypes{
		Success:      "[]models.Pet",
		Error:        "models.Problem",
		ErrorWrapper: "Error",
	}
	withModels.Imports = map[string]string{
		"context": "context",
		"time":    "time",
		"models":  "example.com/petstore/openapi/models",
	}

	out, err := newGenerator().Generate([]wrapgen.FunctionInfo{withModels})
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "client_gen.go", out, parser.ParseComments)
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, `"example.com/petstore/openapi/models"`)
	assert.Contains(t, src, `"time"`)
	assert.Contains(t, src, `petapi "example.com/petstore/openapi/apis/pet_api"`)
	assert.Contains(t, src,
		"func (c *Client) FindPets(ctx context.Context, status []petapi.Status, since *time.Time, tags ...string) ([]models.Pet, petapi.Error[models.Problem]) {")
	assert.Contains(t, src, "return petapi.FindPets(ctx, c.config, status, since, tags...)")
}

func TestGenerate_ConfigurationPosition(t *testing.T) {
	fn := function("alpha", "Get",
		wrapgen.Param{Name: "id", Type: "string"},
		wrapgen.Param{Name: "verbose", Type: "bool"},
	)
	fn.ConfigPosition = 1

	out, err := newGenerator().Generate([]wrapgen.FunctionInfo{fn})
	require.NoError(t, err)
	assert.Contains(t, string(out), "return alpha.Get(ctx, id, c.config, verbose)")

	fn.ConfigPosition = 2
	out, err = newGenerator().Generate([]wrapgen.FunctionInfo{fn})
	require.NoError(t, err)
	assert.Contains(t, string(out), "return alpha.Get(ctx, id, verbose, c.config)")
}

func TestGenerate_BlankParameters(t *testing.T) {
	fn := function("alpha", "Get",
		wrapgen.Param{Name: "_", Type: "time.Duration"},
		wrapgen.Param{Name: "id", Type: "string"},
		wrapgen.Param{Name: "_", Type: "Option", Variadic: true},
	)
	fn.Imports = map[string]string{
		"openapi": "example.com/petstore/openapi",
		"time":    "time",
	}

	out, err := newGenerator().Generate([]wrapgen.FunctionInfo{fn})
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, "func (c *Client) Get(ctx context.Context, id string) (int, *openapi.Error[alpha.Problem]) {")
	assert.Contains(t, src, "return alpha.Get(ctx, c.config, *new(time.Duration), id)")
	assert.Contains(t, src, `"time"`)
}

func TestGenerate_ShadowedNames(t *testing.T) {
	fn := function("pet", "AddPet",
		wrapgen.Param{Name: "pet", Type: "Pet"},
		wrapgen.Param{Name: "c", Type: "int"},
	)
	fn.ContextName = "reqCtx"

	out, err := newGenerator().Generate([]wrapgen.FunctionInfo{fn})
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, `petpkg "example.com/petstore/openapi/apis/pet"`)
	assert.Contains(t, src, "func (cl *Client) AddPet(reqCtx context.Context, pet petpkg.Pet, c int)")
	assert.Contains(t, src, "return petpkg.AddPet(reqCtx, cl.config, pet, c)")
}

func TestGenerate_ConflictingPackageNames(t *testing.T) {
	first := function("store_api", "GetInventory")
	first.Package = "apis"
	second := function("user_api", "GetUser")
	second.Package = "apis"

	out, err := newGenerator().Generate([]wrapgen.FunctionInfo{first, second})
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, `"example.com/petstore/openapi/apis/store_api"`)
	assert.Contains(t, src, `apis2 "example.com/petstore/openapi/apis/user_api"`)
	assert.Contains(t, src, "return apis.GetInventory(ctx, c.config)")
	assert.Contains(t, src, "return apis2.GetUser(ctx, c.config)")
}

func TestGenerate_Empty(t *testing.T) {
	out, err := newGenerator().Generate(nil)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n\npackage client\n", string(out))
}

func TestGenerate_Deterministic(t *testing.T) {
	functions := []wrapgen.FunctionInfo{
		function("alpha", "A", wrapgen.Param{Name: "p", Type: "map[string]models.Pet"}),
		function("beta", "B"),
	}
	functions[0].Imports = map[string]string{
		"openapi": "example.com/petstore/openapi",
		"models":  "example.com/petstore/openapi/models",
		"time":    "time",
	}

	first, err := newGenerator().Generate(functions)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := newGenerator().Generate(functions)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestGenerate_SynthesisFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fn *wrapgen.FunctionInfo, g *Generator)
	}{
		{"success type does not parse", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.Results.Success = "map[string" }},
		{"success is not a type", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.Results.Success = "1 + 2" }},
		{"error type does not parse", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.Results.Error = "]" }},
		{"param type unknown package", func(fn *wrapgen.FunctionInfo, g *Generator) {
			fn.Params = []wrapgen.Param{{Name: "x", Type: "uuid.UUID"}}
		}},
		{"wrapper package not imported", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.Results.ErrorWrapper = "apis.Error" }},
		{"invalid function name", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.Name = "Get-Pet" }},
		{"invalid package name", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.Package = "pet-store" }},
		{"invalid module name", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.Module = "pet store" }},
		{"invalid parameter name", func(fn *wrapgen.FunctionInfo, g *Generator) {
			fn.Params = []wrapgen.Param{{Name: "type", Type: "string"}}
		}},
		{"parameter named like the context", func(fn *wrapgen.FunctionInfo, g *Generator) {
			fn.Params = []wrapgen.Param{{Name: "ctx", Type: "string"}}
		}},
		{"parameter declared twice", func(fn *wrapgen.FunctionInfo, g *Generator) {
			fn.Params = []wrapgen.Param{{Name: "id", Type: "string"}, {Name: "id", Type: "int"}}
		}},
		{"blank context name", func(fn *wrapgen.FunctionInfo, g *Generator) { fn.ContextName = "_" }},
		{"invalid client type", func(fn *wrapgen.FunctionInfo, g *Generator) { g.ClientType = "*Client" }},
		{"missing import base", func(fn *wrapgen.FunctionInfo, g *Generator) { g.ImportBase = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := function("alpha", "Get")
			g := newGenerator()
			tt.mutate(&fn, g)

			out, err := g.Generate([]wrapgen.FunctionInfo{fn})
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.IsSynthesisError(err), "want synthesis failure, got %v", err)
		})
	}
}
