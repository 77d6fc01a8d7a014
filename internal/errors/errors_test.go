package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	// Test wrapping an error
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test deeper wrapping
	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	// Test Is function
	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestUsageError(t *testing.T) {
	// Test creating a usage error with a path
	usageErr := NewUsageError("destination doesn't exist", "/path/to/dest", DestinationNotFound, nil)
	assert.Equal(t, "destination doesn't exist: /path/to/dest", usageErr.Error())
	assert.Equal(t, "/path/to/dest", usageErr.Path())
	assert.Equal(t, DestinationNotFound, usageErr.Kind())

	// Without a path the message stands alone
	bare := NewUsageError("please provide kind", "", MissingKind, nil)
	assert.Equal(t, "please provide kind", bare.Error())

	// With a wrapped cause
	cause := fmt.Errorf("permission denied")
	withCause := NewUsageError("rules file doesn't exist", "/cfg.json", ConfigNotFound, cause)
	assert.Equal(t, "rules file doesn't exist: /cfg.json: permission denied", withCause.Error())
	assert.Equal(t, cause, Unwrap(withCause))

	// Detection helpers
	assert.True(t, IsUsageError(usageErr))
	assert.False(t, IsParseError(usageErr))
	assert.False(t, IsUsageError(New("plain")))
}

func TestParseError(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	parseErr := NewParseError("rules file does not match the expected schema", "/cfg.json", InvalidSchema, cause)

	assert.Equal(t, "rules file does not match the expected schema: /cfg.json: unexpected end of JSON input", parseErr.Error())
	assert.Equal(t, "/cfg.json", parseErr.Path())
	assert.Equal(t, InvalidSchema, parseErr.Kind())

	assert.True(t, IsParseError(parseErr))
	assert.False(t, IsUsageError(parseErr))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ConfigNotJSON, KindOf(NewUsageError("m", "p", ConfigNotJSON, nil)))
	assert.Equal(t, InvalidSchema, KindOf(NewParseError("m", "p", InvalidSchema, nil)))
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("outside the taxonomy")))

	// Wrapped taxonomy errors still report their kind
	wrapped := Wrap(NewUsageError("m", "p", MissingPatterns, nil), "context")
	assert.Equal(t, MissingPatterns, KindOf(wrapped))
}
