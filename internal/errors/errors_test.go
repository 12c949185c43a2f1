package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitConfigError, "loading config", fmt.Errorf("bad toml")),
			wantMsg: "loading config: bad toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := TerminalError("raw mode", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false", err)
	}
	if unwrapped := UsageError("no cause").Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
		{"usage", UsageError("bad flag"), ExitUsageError},
		{"config", ConfigError("bad", nil), ExitConfigError},
		{"terminal", TerminalError("tty", nil), ExitTerminalError},
		{"example", ExampleNotFound("nope"), ExitExampleNotFound},
		{"wrapped", fmt.Errorf("outer: %w", ConfigError("inner", nil)), ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExampleNotFound(t *testing.T) {
	err := ExampleNotFound("kanban2")
	if err.Message != "example not found: kanban2" {
		t.Errorf("Message = %q", err.Message)
	}
}
