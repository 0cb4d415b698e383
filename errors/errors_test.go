package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelWrapping(t *testing.T) {
	err := Wrap(ErrNotFound, "node n3")

	assert.True(t, Is(err, ErrNotFound))
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsInvalidDocumentError(err))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("document %q", "demo")

	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), `document "demo"`)
}

func TestNewInvalidDocumentError(t *testing.T) {
	err := NewInvalidDocumentError("edge references unknown node %q", "ghost")

	assert.True(t, IsInvalidDocumentError(err))
	assert.False(t, IsNotFoundError(err))
}

func TestNilChecks(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsInvalidDocumentError(nil))
}
