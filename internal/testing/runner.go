// Package testing provides shared test doubles for the deployment
// workflow, chiefly a scripted stand-in for execx.Runner so external
// commands never run in unit tests.
package testing

import (
	"context"
	"strings"
)

// Call records one command invocation.
type Call struct {
	Name string
	Args []string
}

// Line returns the invocation as a single space-joined command line.
func (c Call) Line() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Response is what the fake runner returns for a matched command.
type Response struct {
	Output []byte
	Err    error
}

// FakeRunner implements execx.Runner. Commands are matched against
// Script by longest command-line prefix; unmatched commands succeed
// with empty output.
type FakeRunner struct {
	Calls  []Call
	Script map[string]Response
}

// Run records the invocation and replays the scripted response.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	call := Call{Name: name, Args: args}
	f.Calls = append(f.Calls, call)

	line := call.Line()
	var best string
	for prefix := range f.Script {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best != "" {
		resp := f.Script[best]
		return resp.Output, resp.Err
	}
	return nil, nil
}

// CommandLines returns every recorded invocation as a command line, in
// order.
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.Line())
	}
	return lines
}

// CallsMatching returns the recorded command lines that start with
// prefix.
func (f *FakeRunner) CallsMatching(prefix string) []string {
	var lines []string
	for _, c := range f.Calls {
		if strings.HasPrefix(c.Line(), prefix) {
			lines = append(lines, c.Line())
		}
	}
	return lines
}
