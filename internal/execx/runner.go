// Package execx runs external commands for the deployment workflow.
//
// Every interaction with the gcloud and kubectl binaries goes through a
// Runner so that handlers and the deployer can be tested without
// spawning processes.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"github.com/gke-tools/gkedeploy/internal/ui"
)

// Runner executes a single external command and returns its captured
// stdout. Implementations block until the child process exits; there
// are no retries and no timeouts.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ShellRunner is the production Runner. It echoes the shell-escaped
// command line before execution, prints the child's stdout, and prints
// its stderr highlighted when the command exits non-zero.
type ShellRunner struct {
	// Out receives the command echo and child stdout/stderr.
	// Defaults to os.Stdout when nil.
	Out io.Writer
}

// Run executes name with args and waits for it to exit.
//
// Stdout is both printed and returned so callers that need structured
// output (e.g. a JSON deployment description) can parse it. On non-zero
// exit the returned error carries the exit status and the command name.
func (r *ShellRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out := r.out()
	fmt.Fprintln(out, ui.Command("$ "+shellescape.QuoteCommand(append([]string{name}, args...))))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() > 0 {
		fmt.Fprint(out, stdout.String())
		if !strings.HasSuffix(stdout.String(), "\n") {
			fmt.Fprintln(out)
		}
	}

	if err != nil {
		if stderr.Len() > 0 {
			fmt.Fprintln(out, ui.Stderr(strings.TrimRight(stderr.String(), "\n")))
		}
		return stdout.Bytes(), fmt.Errorf("command %q failed: %w", name, err)
	}

	return stdout.Bytes(), nil
}

func (r *ShellRunner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
