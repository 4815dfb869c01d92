package proc

import (
	"bytes"
	"os/exec"
)

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks github.com/pranshuparmar/ps2gv/internal/proc Executor

// Executor runs an external command to completion and returns its stdout.
// Implementations must reap the child on every path.
type Executor interface {
	Run(name string, args ...string) ([]byte, error)
	RunWithInput(input []byte, name string, args ...string) ([]byte, error)
}

type RealExecutor struct{}

// Run starts the command, drains stdout and waits for it to exit.
func (r *RealExecutor) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// RunWithInput is Run with input fed to the command's stdin.
func (r *RealExecutor) RunWithInput(input []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader(input)
	return cmd.Output()
}

var executor Executor = &RealExecutor{}

func SetExecutor(e Executor) {
	executor = e
}

func ResetExecutor() {
	executor = &RealExecutor{}
}

// Run executes a command using the current executor
func Run(name string, args ...string) ([]byte, error) {
	return executor.Run(name, args...)
}

// RunWithInput executes a command with stdin using the current executor
func RunWithInput(input []byte, name string, args ...string) ([]byte, error) {
	return executor.RunWithInput(input, name, args...)
}
