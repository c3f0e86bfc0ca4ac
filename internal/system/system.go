package system

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sys/execabs"
)

// Runner resolves and runs external tools synchronously.
type Runner interface {
	// LookPath reports the absolute path of an executable found on PATH.
	LookPath(name string) (string, error)
	Run(ctx context.Context, cmd string, args ...string) (stdout, stderr string, err error)
}

// Logger is the component-tagged logging shape shared by every stage.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// ExecRunner executes commands directly, never resolving them relative to
// the working directory. Stderr is kept up to stderrTail bytes.
type ExecRunner struct {
	Logger Logger
}

const stderrTail = 4096

func (ExecRunner) LookPath(name string) (string, error) {
	return execabs.LookPath(name)
}

func (r ExecRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	c := execabs.CommandContext(ctx, cmd, args...)
	var outBuf bytes.Buffer
	errBuf := &ringBuffer{max: stderrTail}
	c.Stdout = &outBuf
	c.Stderr = errBuf
	if r.Logger != nil {
		r.Logger.Infof("exec", "running %s %v", cmd, args)
	}
	err := c.Run()
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("exec", "%s failed: %v", cmd, err)
		}
		// Include exit status if available
		if exitErr, ok := err.(*exec.ExitError); ok {
			return outBuf.String(), errBuf.String(), fmt.Errorf("exit %d: %w", exitErr.ExitCode(), err)
		}
		return outBuf.String(), errBuf.String(), err
	}
	return outBuf.String(), errBuf.String(), nil
}

var _ io.Writer = (*ringBuffer)(nil)

// ringBuffer keeps the last max bytes written to it.
type ringBuffer struct {
	buf []byte
	max int
}

func (r *ringBuffer) Write(p []byte) (int, error) {
	if r.max <= 0 {
		return len(p), nil
	}

	if len(p) >= r.max {
		r.buf = append(r.buf[:0], p[len(p)-r.max:]...)
		return len(p), nil
	}

	if len(r.buf)+len(p) > r.max {
		drop := len(r.buf) + len(p) - r.max
		r.buf = append(r.buf[drop:], p...)
		return len(p), nil
	}

	r.buf = append(r.buf, p...)
	return len(p), nil
}

func (r *ringBuffer) String() string { return string(r.buf) }
