package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
)

func TestFatalError_Plain(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "╭ Error")
	assert.Contains(t, out, "boom")
}

func TestFatalError_Nil(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(nil)
	assert.Empty(t, buf.String())
}

func TestFatalError_FieldErrors(t *testing.T) {
	var errs criterio.FieldErrorsBuilder
	errs = errs.Append("default_tab", errors.New(`unknown tab "x"`))
	errs = errs.Append("glamour_style", errors.New(`unknown style "y"`))
	err := fmt.Errorf("load config: %w", errs.ToError())

	var buf bytes.Buffer
	New(&buf).FatalError(err)

	out := buf.String()
	assert.Contains(t, out, "Validation Error")
	assert.Contains(t, out, "load config")
	assert.Contains(t, out, "default_tab: ")
	assert.Contains(t, out, `unknown style "y"`)
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	assert.Same(t, p, Ctx(NewContext(context.Background(), p)))
	assert.NotNil(t, Ctx(context.Background()))
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %s", "config")
	p.FailItem("default_tab", "unknown")

	out := buf.String()
	assert.Contains(t, out, Check+" saved config")
	assert.Contains(t, out, Cross+ColorReset+" default_tab: unknown")
}
