// Package diagfmt renders diag.Diagnostic records as human-readable text:
// a "file:line:col: SEV CODE: message" header, a source excerpt with the
// primary span underlined, and any attached notes.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"surge/internal/diag"
	"surge/internal/source"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const tabWidth = 8

// AutoColor reports whether fd looks like an interactive terminal, the
// default Color setting a CLI should pick when the user didn't force one.
func AutoColor(fd uintptr) bool { return term.IsTerminal(int(fd)) }

// visualWidthUpTo computes the on-screen column of byteCol (1-based) within
// s, expanding tabs and accounting for double-width runes.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// Pretty renders every diagnostic in bag (call bag.Sort() first for
// deterministic, file-ordered output) to w.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	helpColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	context := uint32(opts.Context)
	if context == 0 {
		context = 1
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}
		printOne(w, d, fs, opts, context, formatters{errorColor, warningColor, helpColor, pathColor, codeColor, lineNumColor, underlineColor})
	}
}

type formatters struct {
	errCol, warnCol, helpCol, pathCol, codeCol, lineCol, underlineCol *color.Color
}

func printOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, context uint32, f formatters) {
	f_ := fs.Get(d.Primary.File())
	path := formatPath(f_, fs, opts.PathMode)
	line, col := d.Primary.Line(), d.Primary.Col()

	var sevColored string
	switch d.Severity {
	case diag.SevError:
		sevColored = f.errCol.Sprint(d.Severity.String())
	case diag.SevWarning:
		sevColored = f.warnCol.Sprint(d.Severity.String())
	default:
		sevColored = f.helpCol.Sprint(d.Severity.String())
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		f.pathCol.Sprint(path), line, col, sevColored, f.codeCol.Sprint(d.Code.String()), d.Message)

	printExcerpt(w, f_, line, col, d.Primary.Width(), context, f.lineCol, f.underlineCol)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nf := fs.Get(note.Loc.File())
			notePath := formatPath(nf, fs, opts.PathMode)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				f.helpCol.Sprint("note"), f.pathCol.Sprint(notePath), note.Loc.Line(), note.Loc.Col(), note.Msg)
		}
	}
}

func printExcerpt(w io.Writer, f *source.File, line, col, width, context uint32, lineCol, underlineCol *color.Color) {
	totalLines := uint32(len(f.LineIdx)) + 1
	if len(f.LineIdx) == 0 && len(f.Content) > 0 {
		totalLines = 1
	}

	startLine := uint32(1)
	if line > context {
		startLine = line - context
	}
	endLine := line + context
	if endLine > totalLines {
		endLine = totalLines
	}

	if startLine > 1 {
		fmt.Fprintln(w, "...")
	}

	lineNumWidth := len(fmt.Sprintf("%d", endLine))
	if lineNumWidth < 3 {
		lineNumWidth = 3
	}

	for ln := startLine; ln <= endLine; ln++ {
		text := f.GetLine(ln)
		gutter := fmt.Sprintf("%s | ", lineCol.Sprint(fmt.Sprintf("%*d", lineNumWidth, ln)))
		fmt.Fprint(w, gutter)
		fmt.Fprintln(w, text)

		if ln != line {
			continue
		}
		visStart := visualWidthUpTo(text, col, tabWidth)
		visEnd := visualWidthUpTo(text, col+width, tabWidth)

		var underline strings.Builder
		underline.WriteString(strings.Repeat(" ", lineNumWidth+3+visStart))
		span := visEnd - visStart
		if span <= 0 {
			underline.WriteByte('^')
		} else {
			underline.WriteString(strings.Repeat("~", span-1))
			underline.WriteByte('^')
		}
		fmt.Fprintln(w, underlineCol.Sprint(underline.String()))
	}

	if endLine < totalLines {
		fmt.Fprintln(w, "...")
	}
}
