package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/rovers/internal/parse"
)

func TestExitError(t *testing.T) {
	err := &ExitError{Code: ExitCommandError, Message: "failed"}
	assert.Equal(t, "failed", err.Error())
	assert.Nil(t, err.Unwrap())

	inner := errors.New("inner")
	wrapped := WrapExitError(ExitFailure, "outer", inner)
	assert.Equal(t, "outer: inner", wrapped.Error())
	assert.ErrorIs(t, wrapped, inner)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "io", errors.New("eof"))))
}

func TestReport(t *testing.T) {
	t.Run("coded", func(t *testing.T) {
		var buf bytes.Buffer
		Report(&buf, WrapExitError(ExitFailure, "input rejected", parse.NewEmptyInputError()))
		assert.Regexp(t, `^Error \[E200\]: input rejected: `, buf.String())
		assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
	})

	t.Run("uncoded", func(t *testing.T) {
		var buf bytes.Buffer
		Report(&buf, errors.New("broken pipe"))
		assert.Equal(t, "Error: broken pipe\n", buf.String())
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		Report(&buf, nil)
		assert.Empty(t, buf.String())
	})
}
