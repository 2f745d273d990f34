package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrInvalidArchiveRoot, "bad root")
	assert.Equal(t, "[INVALID_ARCHIVE_ROOT] bad root", err.Error())

	wrapped := Wrap(fmt.Errorf("disk full"), ErrMoveFailed, "move failed")
	assert.Equal(t, "[MOVE_FAILED] move failed: disk full", wrapped.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrMoveFailed, "whatever"))
	assert.Nil(t, Wrapf(nil, ErrMoveFailed, "whatever %d", 1))
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrStorageFailure, "move failed")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrRuleNotFound, "no rule with id %s", "abc")
	assert.True(t, IsErrorCode(err, ErrRuleNotFound))
	assert.False(t, IsErrorCode(err, ErrMoveFailed))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrRuleNotFound))

	// Works through wrapping with %w
	outer := fmt.Errorf("context: %w", err)
	assert.True(t, IsErrorCode(outer, ErrRuleNotFound))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrTrashFailed, GetErrorCode(New(ErrTrashFailed, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrMoveFailed, "x").WithDetail("path", "a.md")
	require.NotNil(t, err.Details)
	assert.Equal(t, "a.md", err.Details["path"])
}
