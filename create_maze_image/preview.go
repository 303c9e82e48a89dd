package main

import (
	"bufio"
	"io"

	"github.com/gookit/color"
	"github.com/yalue/torch_maze"
)

var (
	previewWall  = color.Style{color.FgGray}
	previewStart = color.Style{color.FgGreen, color.OpBold}
	previewDoor  = color.Style{color.FgBlue, color.OpBold}
	previewKey   = color.Style{color.FgYellow, color.OpBold}
	previewTorch = color.Style{color.FgRed, color.OpBold}
)

// Returns the style used to draw a character from Level.String().
func previewStyle(r rune) (color.Style, bool) {
	switch r {
	case '#':
		return previewWall, true
	case 'S':
		return previewStart, true
	case 'D':
		return previewDoor, true
	case 'K':
		return previewKey, true
	case 'T':
		return previewTorch, true
	}
	return nil, false
}

// Writes the level's text form to w, with colors if the terminal supports
// them.
func writePreview(w io.Writer, l *torch_maze.Level) error {
	out := bufio.NewWriter(w)
	for _, r := range l.String() {
		style, ok := previewStyle(r)
		if !ok {
			out.WriteRune(r)
			continue
		}
		out.WriteString(style.Sprint(string(r)))
	}
	return out.Flush()
}
