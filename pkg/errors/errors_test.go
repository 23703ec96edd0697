package errors

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestError_MessageAndUnwrap verifies formatting and error chain support.
func TestError_MessageAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New("style.Resolve", KindResolution, cause)

	assert.Equal(t, "style.Resolve [resolution]: boom", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.False(t, err.Timestamp.IsZero())
}

// TestLogHandler_StructuredFields verifies the handler emits op and kind as
// structured fields.
func TestLogHandler_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandlerWith(zerolog.New(&buf))

	h.HandleError(Newf("theme.LoadConfig", KindConfig, "bad accent"))

	out := buf.String()
	assert.Contains(t, out, `"op":"theme.LoadConfig"`)
	assert.Contains(t, out, `"kind":"config"`)
	assert.Contains(t, out, "bad accent")

	buf.Reset()
	h.HandleError(nil)
	assert.Empty(t, buf.String())
}

// TestReport_UsesInstalledHandler verifies handler replacement and restore.
func TestReport_UsesInstalledHandler(t *testing.T) {
	var captured []*Error
	SetHandler(handlerFunc(func(err *Error) { captured = append(captured, err) }))
	defer SetHandler(nil)

	Report(Newf("control.retarget", KindResolution, "missing slot"))
	Report(nil)

	assert.Len(t, captured, 1)
	assert.Equal(t, "control.retarget", captured[0].Op)
}

type handlerFunc func(*Error)

func (f handlerFunc) HandleError(err *Error) { f(err) }
