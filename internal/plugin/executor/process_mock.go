package executor

import (
	"context"
	"errors"
	"io"
)

// MockProcessRunner is a ProcessRunner for tests.
type MockProcessRunner struct {
	// RunFunc provides the behaviour of each call.
	RunFunc func(ctx context.Context, path string, args []string, stdin []byte) (stdout, stderr []byte, err error)

	// ShouldTimeout blocks every export call until the context is cancelled.
	ShouldTimeout bool

	// Calls records the arguments of every call in order.
	Calls [][]string

	// LastStdin holds the stdin of the most recent call.
	LastStdin []byte
}

// Run executes the mock behavior.
func (m *MockProcessRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	m.Calls = append(m.Calls, args)

	m.LastStdin = nil
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, err
		}
		m.LastStdin = data
	}

	if m.ShouldTimeout && (len(args) == 0 || args[0] != infoFlag) {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}

	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args, m.LastStdin)
	}

	if len(args) > 0 && args[0] == infoFlag {
		return []byte(`{"name":"mock","plugin_protocol":"json-stdio"}`), nil, nil
	}
	return []byte(`{"files":{}}`), nil, nil
}

// NewMockProcessRunner creates a mock whose export prints stdout.
func NewMockProcessRunner(info, stdout string) *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(_ context.Context, _ string, args []string, _ []byte) ([]byte, []byte, error) {
			if len(args) > 0 && args[0] == infoFlag {
				return []byte(info), nil, nil
			}
			return []byte(stdout), nil, nil
		},
	}
}

// NewErrorMockProcessRunner creates a mock whose export fails with errMsg on stderr.
func NewErrorMockProcessRunner(info, errMsg string) *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(_ context.Context, _ string, args []string, _ []byte) ([]byte, []byte, error) {
			if len(args) > 0 && args[0] == infoFlag {
				return []byte(info), nil, nil
			}
			return nil, []byte(errMsg), errors.New("exit status 2")
		},
	}
}

// NewTimeoutMockProcessRunner creates a mock whose export never finishes.
func NewTimeoutMockProcessRunner() *MockProcessRunner {
	return &MockProcessRunner{ShouldTimeout: true}
}
