package main

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// overlay composites the styled block fg onto bg with fg's top-left corner at
// (x, y), preserving ANSI sequences on both sides. This is the desktop's
// compositor primitive: the background and each window are rendered as
// independent styled blocks and stacked bottom-to-top.
func overlay(x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(strings.Repeat(" ", x-pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		bgWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= bgWidth-pos {
			b.WriteString(strings.Repeat(" ", bgWidth-rightWidth-pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// cutLeft drops the first cutWidth printable columns from s, carrying the
// last unterminated ANSI state into the remainder so styling survives the
// cut.
func cutLeft(s string, cutWidth int) string {
	var (
		pos     int
		isAnsi  bool
		ansiBuf bytes.Buffer
		out     bytes.Buffer
	)
	for _, c := range s {
		var w int
		if c == ansi.Marker || isAnsi {
			isAnsi = true
			ansiBuf.WriteRune(c)
			if ansi.IsTerminator(c) {
				isAnsi = false
				if bytes.HasSuffix(ansiBuf.Bytes(), []byte("[0m")) {
					ansiBuf.Reset()
				}
			}
		} else {
			w = runewidth.RuneWidth(c)
		}

		if pos >= cutWidth {
			if out.Len() == 0 && ansiBuf.Len() > 0 {
				out.Write(ansiBuf.Bytes())
			}
			out.WriteRune(c)
		}
		pos += w
	}
	return out.String()
}

// clipBlock trims a styled block to at most width columns by height lines,
// padding short lines so the block is a solid rectangle.
func clipBlock(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		line = truncate.String(line, uint(width))
		if pad := width - ansi.PrintableRuneWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
