package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrValidation, "destination does not exist")
	assert.Equal(t, "[VALIDATION] destination does not exist", err.Error())
	assert.Equal(t, errors.ErrValidation, err.Code)
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNotFound, "versions path %q does not exist", "/srv/app/versions")
	assert.Equal(t, `[NOT_FOUND] versions path "/srv/app/versions" does not exist`, err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := errors.Wrap(inner, errors.ErrBrokenLink, "cannot resolve current link")

	require.NotNil(t, err)
	assert.Equal(t, "[BROKEN_LINK] cannot resolve current link: permission denied", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrState, "current version not found in versions dir")
	b := errors.New(errors.ErrState, "different message, same kind")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, errors.New(errors.ErrValidation, "x")))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrPermission, "candidate %q is not writable", "/srv/app/versions/v1")

	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))
	assert.False(t, errors.IsErrorCode(err, errors.ErrState))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrPermission))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := errors.New(errors.ErrNotFound, "versions dir missing")
	outer := fmt.Errorf("listing releases: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrNotFound))
	assert.Equal(t, errors.ErrNotFound, errors.GetErrorCode(outer))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrValidation, "destination is not writable").
		WithDetail("path", "/srv/app")

	assert.Equal(t, "/srv/app", err.Details["path"])
}
