package ox

import (
	"fmt"
	"strconv"
	"strings"
)

// formatCodeFrame renders the offending source line with a caret under the
// error column. Columns are rune based and clamped to the line width.
func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	lineText := lines[pos.Line-1]

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if width := len([]rune(lineText)); column > width+1 {
		column = width + 1
	}

	gutter := strconv.Itoa(pos.Line)

	var b strings.Builder
	fmt.Fprintf(&b, "  --> line %d, column %d\n", pos.Line, column)
	fmt.Fprintf(&b, " %s | %s\n", gutter, lineText)
	fmt.Fprintf(&b, " %s | %s^", strings.Repeat(" ", len(gutter)), strings.Repeat(" ", column-1))
	return b.String()
}

const (
	errorFrameHead = 8
	errorFrameTail = 8
)

// formatStackFrames renders the interpreter call stack one frame per line,
// eliding the middle of deeply recursive traces.
func formatStackFrames(frames []StackFrame) string {
	var b strings.Builder
	render := func(frame StackFrame) {
		if frame.Pos.Line > 0 {
			fmt.Fprintf(&b, "\n  at %s (%d:%d)", frame.Function, frame.Pos.Line, frame.Pos.Column)
		} else {
			fmt.Fprintf(&b, "\n  at %s", frame.Function)
		}
	}

	if len(frames) <= errorFrameHead+errorFrameTail {
		for _, frame := range frames {
			render(frame)
		}
		return b.String()
	}

	for _, frame := range frames[:errorFrameHead] {
		render(frame)
	}
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", len(frames)-(errorFrameHead+errorFrameTail))
	for _, frame := range frames[len(frames)-errorFrameTail:] {
		render(frame)
	}
	return b.String()
}
