package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewError(CategoryNotFound, "provider missing").
		WithContext("provider", "dxos").
		WithCause(cause).
		Build()

	assert.Equal(t, CategoryNotFound, err.Category())
	assert.Equal(t, SeverityError, err.Severity())
	assert.Equal(t, "provider missing", err.Message())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "dxos", err.Context()["provider"])
	assert.Equal(t, "[not_found:error] provider missing: boom", err.Error())
}

func TestConvenienceConstructors(t *testing.T) {
	assert.Equal(t, SeverityFatal, ConfigError("x").Build().Severity())
	assert.Equal(t, SeverityFatal, InternalError("x").Build().Severity())
	assert.Equal(t, SeverityError, ValidationError("x").Build().Severity())
	assert.True(t, FileSystemError("x").Build().IsCategory(CategoryFileSystem))
	assert.True(t, GitError("x").Build().IsCategory(CategoryGit))
	assert.True(t, EncodingError("x").Build().IsCategory(CategoryEncoding))
}

func TestAsClassified_Wrapped(t *testing.T) {
	inner := ValidationError("bad prefix").Build()
	wrapped := fmt.Errorf("assemble: %w", inner)

	got, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, HasCategory(wrapped, CategoryValidation))
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}

func TestWrapError_Warning(t *testing.T) {
	cause := NotFoundError("theme options file not found").Build()
	err := WrapError(cause, GetCategory(cause), "regeneration failed").Warning().Build()

	assert.Equal(t, CategoryNotFound, err.Category())
	assert.Equal(t, SeverityWarning, err.Severity())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, slog.LevelWarn, LogLevel(err))
	assert.Equal(t, slog.LevelError, LogLevel(cause))
	assert.Equal(t, slog.LevelError, LogLevel(stderrors.New("plain")))
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("invalid").Build(), 2},
		{"not found", NotFoundError("missing").Build(), 3},
		{"config", ConfigError("bad config").Build(), 7},
		{"wrapped config", fmt.Errorf("load: %w", ConfigError("bad").Build()), 7},
		{"filesystem", FileSystemError("write").Build(), 11},
		{"internal", InternalError("oops").Build(), 10},
		{"runtime", WrapError(stderrors.New("too many open files"), CategoryRuntime, "create file watcher").Build(), 12},
		{"already exists", NewError(CategoryAlreadyExists, "exists").Build(), 7},
		{"unclassified", stderrors.New("unknown"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	assert.Empty(t, adapter.FormatError(nil))
	assert.Equal(t, "Error: plain", adapter.FormatError(stderrors.New("plain")))
	assert.Contains(t, adapter.FormatError(InternalError("x").Build()), "use -v")

	msg := adapter.FormatError(ConfigError("config file not found").WithContext("path", "a.yaml").Build())
	assert.Contains(t, msg, "Error: config file not found")
	assert.Contains(t, msg, "path: a.yaml")

	verbose := NewCLIErrorAdapter(true, slog.Default())
	assert.Equal(t, "[internal:fatal] x", verbose.FormatError(InternalError("x").Build()))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out

	code := adapter.HandleError(NotFoundError("theme options provider not registered").Build())
	assert.Equal(t, 3, code)
	assert.Contains(t, out.String(), "theme options provider not registered")
	assert.Contains(t, logs.String(), "category=not_found")
	assert.Equal(t, 0, adapter.HandleError(nil))

	logs.Reset()
	adapter.HandleError(NotFoundError("x").Warning().Build())
	assert.Contains(t, logs.String(), "level=WARN")
}
