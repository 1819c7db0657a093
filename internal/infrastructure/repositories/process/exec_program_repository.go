package process

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// ExecProgramRepository runs programs as child processes sharing the
// caller's standard streams.
type ExecProgramRepository struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecProgramRepository creates a runner attached to the process terminal.
func NewExecProgramRepository() repositories.ProgramRepository {
	return NewExecProgramRepositoryWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewExecProgramRepositoryWithStreams creates a runner attached to the given streams.
func NewExecProgramRepositoryWithStreams(stdin io.Reader, stdout, stderr io.Writer) *ExecProgramRepository {
	return &ExecProgramRepository{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run starts the program and waits for it. ExitCode is -1 when the program
// could not be started or did not exit normally.
func (r *ExecProgramRepository) Run(ctx context.Context, program entities.Program) entities.ProgramResult {
	cmd := exec.CommandContext(ctx, program.Command, program.Args...)
	cmd.Dir = program.Dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return entities.ProgramResult{ExitCode: 0}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debugf("%q exited with status %d", program.String(), exitErr.ExitCode())
		return entities.ProgramResult{ExitCode: exitErr.ExitCode(), Err: err}
	}

	logger.Debugf("%q failed to start: %v", program.String(), err)
	return entities.ProgramResult{ExitCode: -1, Err: err}
}
