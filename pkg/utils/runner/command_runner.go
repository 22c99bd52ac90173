// Package runner executes external binaries (docker compose, composer, drush) while
// streaming their output and capturing it for programmatic use.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"strings"
)

const masked = "*****"

// ErrCommandFailed is returned when a command ran but exited with a non-zero code.
var ErrCommandFailed = errors.New("command exited with non-zero status")

// Command describes a single external invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir  string
	Name string
	Args []string
	// Env is appended to the current process environment.
	Env []string
	// SecretFlags name flags (such as "--account-pass") whose "--flag=value" values
	// are masked when the command is rendered.
	SecretFlags []string
}

// String renders the command line for messages and logs. Values of SecretFlags and
// passwords embedded in URL arguments are masked; use Args for the real argv.
func (c Command) String() string {
	args := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		args = append(args, c.redact(arg))
	}

	return strings.TrimSpace(c.Name + " " + strings.Join(args, " "))
}

func (c Command) redact(arg string) string {
	for _, flag := range c.SecretFlags {
		if strings.HasPrefix(arg, flag+"=") {
			return flag + "=" + masked
		}
	}

	prefix, value := "", arg
	if strings.HasPrefix(arg, "-") {
		if idx := strings.Index(arg, "="); idx >= 0 {
			prefix, value = arg[:idx+1], arg[idx+1:]
		}
	}

	return prefix + redactURL(value)
}

// redactURL masks the password of a URL with userinfo. Values that are not such URLs
// are returned unchanged.
func redactURL(value string) string {
	if !strings.Contains(value, "://") || !strings.Contains(value, "@") {
		return value
	}

	u, err := url.Parse(value)
	if err != nil || (u.User == nil && strings.Contains(u.Path, "@")) {
		// Unparseable, or an unescaped "/" split the userinfo; drop everything up to the host.
		scheme, rest, _ := strings.Cut(value, "://")
		_, host, _ := strings.Cut(rest, "@")

		return scheme + "://" + masked + "@" + host
	}

	if _, hasPassword := u.User.Password(); !hasPassword {
		return value
	}

	u.User = url.UserPassword(u.User.Username(), masked)

	return u.String()
}

// CommandResult captures the output and exit code of a finished command.
// Output produced before a failure is included.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs external commands.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// ExecRunner runs commands with os/exec, mirroring their output to the configured
// writers in real time.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner creates a runner. If stdout or stderr are nil, output is only captured.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	if stdout == nil {
		stdout = io.Discard
	}

	if stderr == nil {
		stderr = io.Discard
	}

	return &ExecRunner{
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes cmd. A non-zero exit returns the result together with an error wrapping
// ErrCommandFailed; failing to start the command returns an error that does not.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (CommandResult, error) {
	var outBuf, errBuf bytes.Buffer

	execCmd := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	execCmd.Dir = cmd.Dir
	execCmd.Stdout = io.MultiWriter(&outBuf, r.stdout)
	execCmd.Stderr = io.MultiWriter(&errBuf, r.stderr)

	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}

	err := execCmd.Run()

	result := CommandResult{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()

			return result, fmt.Errorf("%w: %s: exit code %d", ErrCommandFailed, cmd, result.ExitCode)
		}

		return result, fmt.Errorf("run %s: %w", cmd, err)
	}

	return result, nil
}
