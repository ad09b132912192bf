package util_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessellated-io/nolus-wallet/util"
)

func TestPanicToError(t *testing.T) {
	sentinel := errors.New("amino: unregistered type")
	assert.ErrorIs(t, util.PanicToError(sentinel), sentinel)

	assert.EqualError(t, util.PanicToError("boom"), "panic: boom")
	assert.EqualError(t, util.PanicToError(42), "panic: 42")
	assert.NoError(t, util.PanicToError(nil))
}
