package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrConfigParse, "bad config")
	assert.Equal(t, "[CONFIG_PARSE] bad config", err.Error())

	wrapped := Wrap(os.ErrNotExist, ErrFileNotFound, "missing file")
	assert.Equal(t, "[FILE_NOT_FOUND] missing file: file does not exist", wrapped.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "nope"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "nope %d", 1))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := os.ErrPermission
	err := Wrapf(cause, ErrPermission, "cannot write %s", "/etc/x")

	assert.True(t, stderrors.Is(err, os.ErrPermission))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := Newf(ErrEnvUnsupported, "unsupported os %q", "plan9")

	assert.True(t, stderrors.Is(err, New(ErrEnvUnsupported, "anything")))
	assert.False(t, stderrors.Is(err, New(ErrInternal, "anything")))
}

func TestIsCodeWalksTheChain(t *testing.T) {
	inner := New(ErrPermission, "denied")
	outer := Wrap(inner, ErrFileWrite, "write failed")

	assert.True(t, IsCode(outer, ErrFileWrite))
	assert.True(t, IsCode(outer, ErrPermission))
	assert.False(t, IsCode(outer, ErrBackupFailed))
	assert.False(t, IsCode(nil, ErrUnknown))
	assert.False(t, IsCode(stderrors.New("plain"), ErrUnknown))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSubprocess, "command failed").WithDetail("stderr", "boom")

	require.Contains(t, err.Details, "stderr")
	assert.Equal(t, "boom", err.Details["stderr"])
}
