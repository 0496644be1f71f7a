// Package launcher runs editors, compilers and programs in the foreground.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// Launcher starts a process and waits for it to exit.
type Launcher interface {
	Launch(ctx context.Context, args ...string) error
}

// Error describes a process that could not be started or exited unsuccessfully.
type Error struct {
	Command string
	// ExitCode is -1 if the process never started.
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("failed to start %s: %v", e.Command, e.Err)
	}

	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Exec launches processes attached to the given streams.
type Exec struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Launcher = (*Exec)(nil)

// New returns a launcher that runs processes in dir attached to the terminal.
func New(dir string) *Exec {
	return &Exec{Dir: dir, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Launch runs args[0] with the remaining arguments and blocks until it exits.
func (e *Exec) Launch(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}

	command := strings.Join(args, " ")
	log.Debug().Str("dir", e.Dir).Strs("args", args).Msg("launching")

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return &Error{Command: command, ExitCode: exitError.ExitCode(), Err: err}
	}

	return &Error{Command: command, ExitCode: -1, Err: err}
}
