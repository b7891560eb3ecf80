package earnings_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/earnings"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := earnings.Errorf(earnings.ENOTFOUND, "transcript %q not found", "t-1")

	assert.Equal(t, earnings.ENOTFOUND, earnings.ErrorCode(err))
	assert.Equal(t, "transcript \"t-1\" not found", earnings.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, earnings.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, earnings.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("ask: %w", earnings.Errorf(earnings.EUNAVAILABLE, "backend down"))

	assert.Equal(t, earnings.EUNAVAILABLE, earnings.ErrorCode(err))
	assert.Equal(t, "backend down", earnings.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, earnings.EINTERNAL, earnings.ErrorCode(err))
	assert.Equal(t, "Internal error.", earnings.ErrorMessage(err))
}
