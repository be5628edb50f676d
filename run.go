package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner abstracts external tool invocation so the alternatives and switch
// logic can be exercised without a real update-alternatives on the host.
type Runner interface {
	// Output runs a tool and returns its stdout. The child's stderr is
	// discarded; callers treat a failure as "no data".
	Output(name string, args ...string) ([]byte, error)
	// Run runs a tool for its side effect only.
	Run(name string, args ...string) error
}

// toolRunner invokes host tools with an explicit search path rather than
// whatever the calling environment happens to carry.
type toolRunner struct {
	execPath string
}

// NewRunner returns a Runner that resolves tools against execPath.
func NewRunner(execPath string) Runner {
	return &toolRunner{execPath: execPath}
}

// lookPath locates a tool on the configured search path. Names carrying a
// path separator are taken as-is. The parent's PATH is never consulted.
func (r *toolRunner) lookPath(name string) (string, error) {
	if strings.Contains(name, "/") {
		return name, nil
	}
	for _, dir := range filepath.SplitList(r.execPath) {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s not found in %s", name, r.execPath)
}

func (r *toolRunner) command(path string, args ...string) *exec.Cmd {
	cmd := exec.Command(path, args...)
	cmd.Env = append(os.Environ(), "PATH="+r.execPath)
	return cmd
}

func (r *toolRunner) Output(name string, args ...string) ([]byte, error) {
	path, err := r.lookPath(name)
	if err != nil {
		return nil, err
	}
	cmd := r.command(path, args...)
	cmd.Stderr = nil
	return cmd.Output()
}

func (r *toolRunner) Run(name string, args ...string) error {
	path, err := r.lookPath(name)
	if err != nil {
		return err
	}
	cmd := r.command(path, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}
