// Package diagfmt renders diagnostics for terminals: one header line per
// diagnostic, the offending source line with an underline, then notes and
// fix suggestions.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"declc/internal/diag"
	"declc/internal/source"
)

// Pretty writes every diagnostic in the bag. The bag is expected to be
// sorted; each diagnostic prints as
//
//	<path>:<line>:<col>: ERROR SEM3012: variable of void
//	    void x;
//	         ^
//	    note: did you mean pointer to void?
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := printer{w: w, fs: fs, opts: opts}
	for i, d := range bag.Items() {
		if opts.Max > 0 && i >= opts.Max {
			remaining := bag.Len() - i
			fmt.Fprintf(w, "... and %d more\n", remaining)
			return
		}
		p.diagnostic(d)
	}
}

type printer struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan)
	spanColor  = color.New(color.FgGreen, color.Bold)
)

func (p *printer) diagnostic(d diag.Diagnostic) {
	if loc := p.location(d.Primary); loc != "" {
		fmt.Fprintf(p.w, "%s: ", loc)
	}
	fmt.Fprintf(p.w, "%s %s: %s\n",
		p.severity(d.Severity), d.Code.ID(), d.Message)
	p.sourceLine(d.Primary)

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(p.w, "    note: %s\n", note.Msg)
			p.sourceLine(note.Span)
		}
	}
	if p.opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(p.w, "    fix: %s\n", fix.Title)
		}
	}
}

func (p *printer) severity(sev diag.Severity) string {
	if !p.opts.Color {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(sev)
	case diag.SevWarning:
		return warnColor.Sprint(sev)
	default:
		return infoColor.Sprint(sev)
	}
}

func (p *printer) location(sp source.Span) string {
	if p.fs == nil || sp.Empty() {
		return ""
	}
	start, _ := p.fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", p.path(sp.File), start.Line, start.Col)
}

func (p *printer) path(id source.FileID) string {
	file := p.fs.Get(id)
	switch p.opts.PathMode {
	case PathModeBasename:
		return filepath.Base(file.Path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(file.Path); err == nil {
			return abs
		}
		return file.Path
	default:
		if file.Flags&source.FileVirtual != 0 {
			return file.Path
		}
		if rel, err := filepath.Rel(p.fs.BaseDir(), file.Path); err == nil &&
			!strings.HasPrefix(rel, "..") {
			return rel
		}
		return file.Path
	}
}

// sourceLine prints the line the span starts on and underlines the spanned
// columns. The underline is aligned by display width, not byte count, so
// tabs and wide runes in the line do not shift the carets.
func (p *printer) sourceLine(sp source.Span) {
	if p.fs == nil || sp.Empty() {
		return
	}
	file := p.fs.Get(sp.File)
	start, end := p.fs.Resolve(sp)
	line := string(file.Line(start.Line))
	if line == "" {
		return
	}

	spanEnd := len(line)
	if end.Line == start.Line && int(end.Col-1) < spanEnd {
		spanEnd = int(end.Col - 1)
	}
	before := line[:start.Col-1]
	within := line[start.Col-1 : spanEnd]

	underline := strings.Repeat("~", runewidth.StringWidth(within))
	if underline == "" {
		underline = "^"
	} else {
		underline = "^" + underline[1:]
	}
	if p.opts.Color {
		underline = spanColor.Sprint(underline)
	}

	fmt.Fprintf(p.w, "    %s\n", line)
	fmt.Fprintf(p.w, "    %s%s\n",
		strings.Repeat(" ", runewidth.StringWidth(before)), underline)
}
