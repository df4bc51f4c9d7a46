// report.go — human-readable printing of failure reports.
package xgxassert

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// palette holds the colors used by Fprint.
type palette struct {
	header   *color.Color
	expected *color.Color
	actual   *color.Color
	muted    *color.Color
}

func newPalette(mode string) palette {
	p := palette{
		header:   color.New(color.FgRed, color.Bold),
		expected: color.New(color.FgGreen),
		actual:   color.New(color.FgRed),
		muted:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.header, p.expected, p.actual, p.muted} {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
		// auto keeps fatih/color's terminal detection (color.NoColor).
	}
	return p
}

// Fprint writes every assertion report found in err to w, colored according
// to DefaultConfig().Color. Errors without reports are written as-is.
func Fprint(w io.Writer, err error) error {
	return FprintWithConfig(w, err, DefaultConfig())
}

// FprintWithConfig is Fprint with an explicit configuration.
func FprintWithConfig(w io.Writer, err error, cfg *Config) error {
	if err == nil {
		return nil
	}
	if cfg == nil {
		cfg = builtinConfig()
	}
	p := newPalette(cfg.Color)

	roots := []error{err}
	if m, ok := err.(*MultipleFailuresError); ok {
		if _, werr := p.header.Fprintf(w, "%s (%d)\n", m.heading, len(m.failures)); werr != nil {
			return werr
		}
		roots = m.failures
	}

	for _, root := range roots {
		failures := Failures(root)
		if len(failures) == 0 {
			if _, werr := p.header.Fprintln(w, root.Error()); werr != nil {
				return werr
			}
			continue
		}
		for _, f := range failures {
			if werr := printFailure(w, p, f); werr != nil {
				return werr
			}
		}
	}
	return nil
}

func printFailure(w io.Writer, p palette, f *AssertionFailedError) error {
	if _, err := p.header.Fprintf(w, "FAILED %s", f.Error()); err != nil {
		return err
	}
	if _, err := p.muted.Fprintf(w, " [%s]\n", f.id); err != nil {
		return err
	}
	if f.IsMismatch() {
		if _, err := fmt.Fprintf(w, "  expected: %s\n", p.expected.Sprintf("<%s> (%s)", f.expected.String(), f.expected.TypeName())); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  actual:   %s\n", p.actual.Sprintf("<%s> (%s)", f.actual.String(), f.actual.TypeName())); err != nil {
			return err
		}
	}
	if f.cause != nil {
		if _, err := fmt.Fprintf(w, "  cause: %s\n", f.cause.Error()); err != nil {
			return err
		}
	}
	for i, s := range f.suppressed {
		if _, err := fmt.Fprintf(w, "  suppressed[%d]: %s\n", i, s.Error()); err != nil {
			return err
		}
	}
	if len(f.stk) > 0 {
		fr := f.stk[0]
		if _, err := p.muted.Fprintf(w, "  at %s %s:%d\n", fr.Function, fr.File, fr.Line); err != nil {
			return err
		}
	}
	return nil
}
