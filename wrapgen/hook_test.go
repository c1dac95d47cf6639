package wrapgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wrapgen/errors"
)

func TestRunHook(t *testing.T) {
	target := filepath.Join(t.TempDir(), "made by hook")

	require.NoError(t, RunHook(context.Background(), "mkdir -p", target))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunHook_Empty(t *testing.T) {
	assert.NoError(t, RunHook(context.Background(), "   ", "unused"))
}

func TestRunHook_Failure(t *testing.T) {
	err := RunHook(context.Background(), `sh -c 'echo formatting failed >&2; exit 3'`, "out.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post-generate hook sh failed")
	assert.Contains(t, errors.FlattenDetails(err), "formatting failed")
}

func TestRunHook_BadQuoting(t *testing.T) {
	err := RunHook(context.Background(), `gofmt -w "unterminated`, "out.go")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestRunHook_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, RunHook(ctx, "sleep 5", ""))
}
