// Package launcher replaces the current process with a child command that
// runs in the resolved environment.
package launcher

import (
	"errors"
	"io/fs"
	"os/exec"
	"syscall"
)

// Exit statuses reported when the command cannot be started.
const (
	ExitNotFound         = 127
	ExitPermissionDenied = 126
	ExitFailure          = 1
)

// ErrNoCommand is returned when Exec is called without a command name.
var ErrNoCommand = errors.New("no command to execute")

// Launcher starts commands. The zero value is not usable; call New.
type Launcher struct {
	lookPath func(file string) (string, error)
	execve   func(argv0 string, argv []string, envv []string) error
}

// New returns a Launcher that uses exec.LookPath and syscall.Exec.
func New() *Launcher {
	return &Launcher{
		lookPath: exec.LookPath,
		execve:   syscall.Exec,
	}
}

// Exec replaces the current process with name and args. environ becomes the
// complete environment of the new process.
//
// Exec does not return on success. On failure the error can be classified
// with IsNotFound, IsPermissionDenied or ExitCode.
func (l *Launcher) Exec(name string, args []string, environ []string) error {
	if name == "" {
		return ErrNoCommand
	}

	execPath, err := l.lookPath(name)
	if err != nil {
		return err
	}

	argv := append([]string{name}, args...)
	return l.execve(execPath, argv, environ)
}

// IsNotFound checks if the error indicates the command was not found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound)
}

// IsPermissionDenied checks if the error indicates permission was denied.
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrPermission)
}

// ExitCode maps an Exec failure onto the conventional shell exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsNotFound(err):
		return ExitNotFound
	case IsPermissionDenied(err):
		return ExitPermissionDenied
	default:
		return ExitFailure
	}
}
