// Package printer writes styled CLI output: errors, notices and check lists.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
)

// ANSI color codes (MintUp brand palette)
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[38;2;215;95;107m"  // #d75f6b
	ColorGreen = "\033[38;2;62;207;142m"  // #3ecf8e (brand green)
	ColorTeal  = "\033[38;2;45;212;191m"  // #2dd4bf (brand teal)
	ColorGray  = "\033[38;2;100;116;139m" // #64748b (navy 60%)
	ColorBold  = "\033[1m"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

type ctxKey struct{}

// Printer handles formatted output with colors.
type Printer struct {
	writer io.Writer
}

// New creates a new Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// NewContext returns a context with the printer attached.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx retrieves the printer from context, or creates one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// FatalError prints a boxed error. It does not exit; the caller owns the
// exit code.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.printValidationErrors(err, fieldErrs)
		return
	}

	p.write(
		p.colorize(ColorRed, "╭ Error"),
		p.colorize(ColorRed, "│")+" "+p.colorize(ColorGray, err.Error()),
		p.colorize(ColorRed, "╵"),
	)
}

// printValidationErrors lists each field error on its own line, preceded by
// whatever context the error was wrapped in (e.g. "load config: invalid config").
func (p *Printer) printValidationErrors(wrapped error, fieldErrs criterio.FieldErrors) {
	lines := []string{p.colorize(ColorRed, "╭ Validation Error")}

	errStr, fieldStr := wrapped.Error(), fieldErrs.Error()
	if idx := strings.Index(errStr, fieldStr); idx > 0 {
		lines = append(lines,
			p.colorize(ColorRed, "│")+" "+p.colorize(ColorGray, strings.TrimSuffix(errStr[:idx], ": ")),
			p.colorize(ColorRed, "│"),
		)
	}

	for _, fe := range fieldErrs {
		line := p.colorize(ColorRed, "│") + " " + p.colorize(ColorRed, Cross) + " "
		if fe.Field != "" {
			line += p.colorize(ColorGray, fe.Field+": ")
		}
		lines = append(lines, line+fe.Err.Error())
	}

	lines = append(lines, p.colorize(ColorRed, "╵"))
	p.write(lines...)
}

// Successf prints a success message in green.
func (p *Printer) Successf(format string, args ...any) {
	p.write(p.colorize(ColorGreen, Check+" "+fmt.Sprintf(format, args...)))
}

// Errorf prints an error message in red.
func (p *Printer) Errorf(format string, args ...any) {
	p.write(p.colorize(ColorRed, Cross+" "+fmt.Sprintf(format, args...)))
}

// Infof prints an info message in gray.
func (p *Printer) Infof(format string, args ...any) {
	p.write(p.colorize(ColorGray, Dot+" "+fmt.Sprintf(format, args...)))
}

// Warnf prints a warning in teal.
func (p *Printer) Warnf(format string, args ...any) {
	p.write(p.colorize(ColorTeal, Dot+" "+fmt.Sprintf(format, args...)))
}

// Printf prints a plain message.
func (p *Printer) Printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

// Section prints a bold header.
func (p *Printer) Section(title string) {
	p.write(ColorBold + title + ColorReset)
}

// CheckItem prints an indented item with a green check.
func (p *Printer) CheckItem(label, detail string) {
	p.printItem(ColorGreen, Check, label, detail)
}

// FailItem prints an indented item with a red cross.
func (p *Printer) FailItem(label, detail string) {
	p.printItem(ColorRed, Cross, label, detail)
}

// WarnItem prints an indented item with a teal dot.
func (p *Printer) WarnItem(label, detail string) {
	p.printItem(ColorTeal, Dot, label, detail)
}

func (p *Printer) printItem(color, symbol, label, detail string) {
	line := "  " + p.colorize(color, symbol) + " " + label
	if detail != "" {
		line += ": " + detail
	}
	p.write(line)
}

func (p *Printer) colorize(color, text string) string {
	return color + text + ColorReset
}

func (p *Printer) write(lines ...string) {
	_, _ = io.WriteString(p.writer, strings.Join(lines, "\n")+"\n")
}
