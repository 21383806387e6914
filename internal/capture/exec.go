package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
	"github.com/hashicorp/go-hclog"
)

var _ Source = (*ExecSource)(nil)

// pagerEnv keeps tools like git from waiting on a pager or a terminal prompt.
var pagerEnv = []string{
	"PAGER=cat",
	"GIT_PAGER=cat",
	"MANPAGER=cat",
	"TERM=dumb",
	"GIT_TERMINAL_PROMPT=0",
}

// Runner runs name with args and returns its combined stdout and stderr.
type Runner func(ctx context.Context, env []string, name string, args ...string) ([]byte, error)

// ExecRunner runs the command as a subprocess with env appended to the current environment.
func ExecRunner(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	return cmd.CombinedOutput()
}

// ExecSource captures help by running the tool, e.g. 'git commit -h' and 'git commit --help-all'.
type ExecSource struct {
	tool    string
	options Options
	logger  hclog.Logger
}

// NewExecSource returns a source that invokes tool.
func NewExecSource(tool string, opts ...Option) (*ExecSource, error) {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return nil, fmt.Errorf("tool cannot be empty")
	}

	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &ExecSource{
		tool:    tool,
		options: o,
		logger:  o.logger.Named("capture"),
	}, nil
}

// Capture runs the help requests for command. A non-zero exit status is not an error
// as long as the tool printed something, since many tools exit non-zero after printing usage.
func (s *ExecSource) Capture(ctx context.Context, command string) (Capture, error) {
	words, err := shlex.Split(command)
	if err != nil {
		return Capture{}, fmt.Errorf("splitting command '%s': %w", command, err)
	}
	if len(words) == 0 {
		return Capture{}, fmt.Errorf("command cannot be empty")
	}

	var c Capture

	c.VisibleOrigin, c.Visible, err = s.run(ctx, command, words, s.options.helpFlag)
	if err != nil {
		return Capture{}, err
	}

	if _, ok := s.options.noHelpAll[command]; ok {
		return c, nil
	}

	c.CompleteOrigin, c.Complete, err = s.run(ctx, command, words, s.options.helpAllFlag)
	if err != nil {
		return Capture{}, err
	}
	c.HasComplete = true

	return c, nil
}

func (s *ExecSource) run(ctx context.Context, command string, words []string, flag string) (string, []string, error) {
	args := append(append([]string{}, words...), flag)
	origin := s.tool + " " + strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(ctx, s.options.timeout)
	defer cancel()

	env := append(append([]string{}, pagerEnv...), s.options.env...)
	out, err := s.options.runner(ctx, env, s.tool, args...)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", nil, fmt.Errorf("running '%s': %w", origin, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || len(out) == 0 {
			return "", nil, fmt.Errorf("%w: running '%s': %w", ErrCaptureNotFound, origin, err)
		}
		s.logger.Debug("Help request exited non-zero", "command", command, "exit", exitErr.ExitCode())
	}

	lines := SplitLines(string(out))
	s.logger.Trace("Captured help", "command", command, "origin", origin, "lines", len(lines))

	return origin, lines, nil
}
