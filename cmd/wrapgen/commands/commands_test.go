package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wrapgen/am"
	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/version"
)

const petModule = `package pet_api

import (
	"context"

	"example.com/petstore/openapi"
)

// GetPet returns one pet.
func GetPet(ctx context.Context, configuration *openapi.Configuration, id int64) (Pet, *openapi.Error[Problem]) {
	return Pet{}, nil
}
`

const projectConfig = `
[source]
dir = "openapi/apis"
import_base = "example.com/petstore/openapi/apis"

[output]
path = "client/api_methods_gen.go"
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	am.Reset()
	t.Cleanup(am.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "openapi", "apis", "pet_api"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi", "apis", "pet_api", "pet_api.go"), []byte(petModule), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, am.ProjectConfigName), []byte(projectConfig), 0644))
	t.Chdir(dir)
	return dir
}

func TestGenerateAndCheck(t *testing.T) {
	dir := project(t)
	output := filepath.Join(dir, "client", "api_methods_gen.go")

	_, err := execute(t, "check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDrift))

	_, err = execute(t, "generate")
	require.NoError(t, err)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// PET API")
	assert.Contains(t, string(src), "return pet_api.GetPet(ctx, c.config, id)")

	_, err = execute(t, "check")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(output, []byte("package client\n"), 0644))
	_, err = execute(t, "check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDrift))
}

func TestGenerate_InvalidConfig(t *testing.T) {
	dir := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, am.ProjectConfigName), []byte(`
[output]
package = "not-an-identifier"
`), 0644))

	_, err := execute(t, "generate")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))

	_, statErr := os.Stat(filepath.Join(dir, "client", "api_methods_gen.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_EnvironmentOverride(t *testing.T) {
	dir := project(t)
	t.Setenv("WRAPGEN_OUTPUT_PATH", "sdk/methods_gen.go")

	_, err := execute(t, "generate")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "sdk", "methods_gen.go"))
	assert.NoError(t, err)
}

func TestAmInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "am", "init", "--import-base", "example.com/petstore/openapi/apis")
	require.NoError(t, err)

	cfg, err := am.LoadFromFile(filepath.Join(dir, am.ProjectConfigName))
	require.NoError(t, err)
	assert.Equal(t, "example.com/petstore/openapi/apis", cfg.Source.ImportBase)
	assert.Equal(t, am.DefaultOutputPath, cfg.Output.Path)

	_, err = execute(t, "am", "validate")
	require.NoError(t, err)
}

func TestVersion_JSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Version, info.Version)
}
