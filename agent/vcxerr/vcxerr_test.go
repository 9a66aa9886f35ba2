package vcxerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lainio/err2/assert"
)

func TestKindOf(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	err := New(NotReady, "connection is not completed")
	assert.Equal(KindOf(err), NotReady)

	wrapped := fmt.Errorf("send message: %w", err)
	assert.Equal(KindOf(wrapped), NotReady)
	assert.That(IsKind(wrapped, NotReady))
	assert.ThatNot(IsKind(wrapped, InvalidHandle))
	assert.That(errors.Is(wrapped, New(NotReady, "")))

	assert.Equal(KindOf(errors.New("plain")), Unknown)
	assert.ThatNot(IsKind(nil, Unknown))
}

func TestWrap(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	assert.NoError(Wrap(InvalidJSON, nil, "no error"))

	cause := errors.New("unexpected end of JSON input")
	err := Wrap(InvalidJSON, cause, "cannot deserialize connection")
	assert.Error(err)
	assert.That(errors.Is(err, cause))
	assert.Equal(err.Error(),
		"Invalid JSON string: cannot deserialize connection: unexpected end of JSON input")
}
