package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x %d", 1)))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrapped: %w", Conflict("dup"))))
	assert.Equal(t, KindInvalid, KindOf(Invalid("bad")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestError_WrapKeepsCause(t *testing.T) {
	cause := errors.New("unique violation")
	err := Conflict("Author already exists with Email : %s", "a@x.com").Wrap(cause)

	assert.Equal(t, "Author already exists with Email : a@x.com", err.Error())
	assert.ErrorIs(t, err, cause)
}
