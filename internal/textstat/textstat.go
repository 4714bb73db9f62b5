// Package textstat provides the word, character, and position counts
// shown in the editor status bar.
package textstat

import (
	"strings"
	"unicode"
)

// Statistics aggregates every counter the status bar displays.
type Statistics struct {
	Words       int
	Characters  int
	TotalLines  int
	CurrentLine int
	CurrentCol  int
}

// CountWords counts whitespace-separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountCharacters counts runes. With withSpaces false, whitespace runes
// are excluded.
func CountCharacters(text string, withSpaces bool) int {
	if withSpaces {
		return len([]rune(text))
	}
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// CountLines counts lines; empty text is one line.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// LineCol converts a rune offset into 1-indexed line and column.
// Offsets past the end clamp to the final position.
func LineCol(text string, offset int) (line, col int) {
	if offset < 0 {
		return 1, 1
	}

	runes := []rune(text)
	if offset > len(runes) {
		offset = len(runes)
	}

	line, col = 1, 1
	for _, r := range runes[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Analyze computes all statistics in one pass-friendly call.
func Analyze(text string, cursorOffset int, withSpaces bool) Statistics {
	line, col := LineCol(text, cursorOffset)
	return Statistics{
		Words:       CountWords(text),
		Characters:  CountCharacters(text, withSpaces),
		TotalLines:  CountLines(text),
		CurrentLine: line,
		CurrentCol:  col,
	}
}
