package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// spacesInTab mirrors the lexer's tab-width convention: a literal tab
// character in a displayed source line pushes the caret run three extra
// columns to stay visually aligned with the 4-column tab it represents.
const spacesInTab = 4

// Formatter renders Diagnostics in the Rust-style, gutter-and-caret
// format described in spec.md §6. Colour is a pluggable sink: the core
// diagnostic never depends on color, only the formatter does, so a
// non-interactive caller can swap it for one that writes plain text.
type Formatter struct {
	// NoColor disables ANSI styling (useful for tests and non-tty output).
	NoColor bool
}

// NewFormatter returns a Formatter with colour enabled.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) colors() (red, green, blue, bold func(string) string) {
	wrap := func(c *color.Color) func(string) string {
		if f.NoColor {
			c.DisableColor()
		}
		sprint := c.SprintFunc()
		return func(s string) string { return sprint(s) }
	}
	red = wrap(color.New(color.FgRed, color.Bold))
	green = wrap(color.New(color.FgGreen, color.Bold))
	blue = wrap(color.New(color.FgBlue, color.Bold))
	bold = wrap(color.New(color.Bold))
	return
}

// Format writes d to w in the format:
//
//	error: <message>:
//	  --> <filename>:<line>:<col>
//	   |
//	 N | <source line, red>
//	   |     ^^^ <clarifying, red>
func (f *Formatter) Format(w io.Writer, d Diagnostic) {
	red, green, blue, bold := f.colors()

	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}

	fmt.Fprintf(w, "%s%s ", red(severity), bold(":"))
	writeGreenBackticks(w, d.Message, green, func(s string) string { return bold(s) })
	fmt.Fprintf(w, "%s\n", bold(":"))

	gutterWidth := len(strconv.Itoa(max(d.Span.Start.Line, d.Span.End.Line)))
	ladjust := strings.Repeat(" ", gutterWidth+1)

	fmt.Fprintf(w, "%s%s %s:%s\n", ladjust[1:], blue("-->"), d.Filename, d.Span.Start.String())
	fmt.Fprintf(w, "%s%s\n", ladjust, blue("|"))

	lines := d.Span.Lines(d.Source)
	sourceLines := strings.Split(d.Source, "\n")

	if len(lines) == 0 {
		fmt.Fprintf(w, "%s%s ", ladjust, blue("|"))
		writeGreenBackticks(w, d.Clarifying, green, func(s string) string { return red(s) })
		fmt.Fprintln(w)
		f.writeHelp(w, d, ladjust, green, blue, bold)
		return
	}

	for i, line := range lines {
		lineNum := d.Span.Start.Line + i
		fullLine := ""
		if lineNum-1 >= 0 && lineNum-1 < len(sourceLines) {
			fullLine = sourceLines[lineNum-1]
		}
		lineNumStr := strconv.Itoa(lineNum)
		pad := strings.Repeat(" ", gutterWidth-len(lineNumStr))

		fmt.Fprintf(w, "%s%s %s %s\n", pad, blue(lineNumStr), blue("|"), red(fullLine))

		caretIndent := strings.Repeat(" ", strings.Count(fullLine, "\t")*(spacesInTab-1))
		if i == 0 {
			col := d.Span.Start.Column - 1
			if col < 0 {
				col = 0
			}
			caretIndent = strings.Repeat(" ", col) + caretIndent
		}

		caretLen := len(line)
		if caretLen < 1 {
			caretLen = 1
		}
		fmt.Fprintf(w, "%s%s%s%s ", ladjust, blue("|"), caretIndent, red(strings.Repeat("^", caretLen)))

		if i == len(lines)-1 {
			writeGreenBackticks(w, d.Clarifying, green, func(s string) string { return red(s) })
		}
		fmt.Fprintln(w)
	}

	f.writeHelp(w, d, ladjust, green, blue, bold)
}

func (f *Formatter) writeHelp(w io.Writer, d Diagnostic, ladjust string, green, blue, bold func(string) string) {
	if d.Help == "" {
		return
	}
	fmt.Fprintf(w, "%s%s %s: ", ladjust, blue("="), bold("help"))
	writeGreenBackticks(w, d.Help, green, func(s string) string { return s })
	fmt.Fprintln(w)
}

// writeGreenBackticks prints msg through base for ordinary text, colouring
// any backtick-delimited substrings with green instead — mirroring the
// original front-end's habit of writing diagnostics like "the type `Foo`
// has no definition" and rendering `Foo` in green.
func writeGreenBackticks(w io.Writer, msg string, green func(string) string, base func(string) string) {
	for {
		start := strings.IndexByte(msg, '`')
		if start < 0 {
			fmt.Fprint(w, base(msg))
			return
		}
		rest := msg[start+1:]
		end := strings.IndexByte(rest, '`')
		if end < 0 {
			fmt.Fprint(w, base(msg))
			return
		}
		fmt.Fprint(w, base(msg[:start]))
		fmt.Fprint(w, green(msg[start:start+1+end+1]))
		msg = rest[end+1:]
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
