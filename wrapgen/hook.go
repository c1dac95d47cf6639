package wrapgen

import (
	"context"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

// RunHook runs the post-generate command with the generated file's path as
// its last argument. The command line is split with shell quoting rules but
// not run through a shell.
func RunHook(ctx context.Context, command, outputPath string) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return errors.WithHint(
			errors.Config("post-generate hook %q: %v", command, err),
			"check the quoting of hooks.post_generate",
		)
	}
	if len(args) == 0 {
		return nil
	}
	args = append(args, outputPath)

	if logger.ShouldOutput(logger.Verbosity, logger.OutputProgress) {
		logger.Infow("Running post-generate hook",
			logger.FieldCommand, shellquote.Join(args...))
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "post-generate hook %s failed", args[0])
		if detail := strings.TrimSpace(string(out)); detail != "" {
			err = errors.WithDetail(err, detail)
		}
		return err
	}
	return nil
}
