package simulation

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/sarchlab/ilptopo/topology"
)

var exitLine = regexp.MustCompile(`^Exited @ (\d+) because (.*)$`)

// ExecEngine runs an external simulator. The topology is written to its
// standard input as JSON. The simulator must print a line of the form
// "Exited @ <tick> because <cause>"; the last such line is the result.
type ExecEngine struct {
	path   string
	args   []string
	stdout io.Writer
	stderr io.Writer
}

// NewExecEngine creates an engine that runs the program at path. The
// output of the program is copied to stdout and stderr, which may be nil.
func NewExecEngine(
	path string,
	args []string,
	stdout, stderr io.Writer,
) *ExecEngine {
	return &ExecEngine{
		path:   path,
		args:   append([]string(nil), args...),
		stdout: stdout,
		stderr: stderr,
	}
}

// Name returns the path of the program.
func (e *ExecEngine) Name() string {
	return e.path
}

// Run starts the program and waits for it to exit.
func (e *ExecEngine) Run(
	ctx context.Context,
	t *topology.Topology,
) (Result, error) {
	input, err := json.Marshal(t)
	if err != nil {
		return Result{}, &EngineError{Engine: e.Name(), Err: err}
	}

	var captured bytes.Buffer

	cmd := exec.CommandContext(ctx, e.path, e.args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &captured
	cmd.Stderr = e.stderr

	if e.stdout != nil {
		cmd.Stdout = io.MultiWriter(&captured, e.stdout)
	}

	if err := cmd.Run(); err != nil {
		return Result{}, &EngineError{Engine: e.Name(), Err: err}
	}

	result, err := parseExit(&captured)
	if err != nil {
		return Result{}, &EngineError{Engine: e.Name(), Err: err}
	}

	return result, nil
}

func parseExit(r io.Reader) (Result, error) {
	var (
		result Result
		found  bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := exitLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		tick, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return Result{}, err
		}

		result = Result{Tick: tick, Cause: m[2]}
		found = true
	}

	if err := scanner.Err(); err != nil {
		return Result{}, err
	}

	if !found {
		return Result{}, errors.New("engine did not report an exit")
	}

	return result, nil
}
