// Package search implements the find and replace engine behind the
// editor's find bar and replace dialog.
package search

import "unicode"

// Options control how matches are located.
type Options struct {
	CaseSensitive bool
	WholeWord     bool
}

// Match is one occurrence, as rune offsets into the text.
type Match struct {
	Start int
	End   int
}

// FindAll enumerates every non-overlapping match in order.
func FindAll(text, needle string, opts Options) []Match {
	if needle == "" {
		return nil
	}

	haystack := []rune(text)
	want := []rune(needle)

	var matches []Match
	for i := 0; i+len(want) <= len(haystack); {
		if !runesEqual(haystack[i:i+len(want)], want, opts.CaseSensitive) {
			i++
			continue
		}
		if opts.WholeWord && !isWholeWord(haystack, i, i+len(want)) {
			i++
			continue
		}
		matches = append(matches, Match{Start: i, End: i + len(want)})
		i += len(want)
	}
	return matches
}

// Next returns the index of the first match starting at or after the
// offset, wrapping to the first match when allowed. ok is false when
// there are no matches, or none ahead and wrapping is off.
func Next(matches []Match, offset int, wrap bool) (index int, ok bool) {
	if len(matches) == 0 {
		return 0, false
	}
	for i, m := range matches {
		if m.Start >= offset {
			return i, true
		}
	}
	if wrap {
		return 0, true
	}
	return 0, false
}

// Prev returns the index of the last match ending at or before the
// offset, wrapping to the last match when allowed.
func Prev(matches []Match, offset int, wrap bool) (index int, ok bool) {
	if len(matches) == 0 {
		return 0, false
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].End <= offset {
			return i, true
		}
	}
	if wrap {
		return len(matches) - 1, true
	}
	return 0, false
}

// ReplaceAll substitutes every match and returns the new text with the
// replacement count.
func ReplaceAll(text, needle, replacement string, opts Options) (string, int) {
	matches := FindAll(text, needle, opts)
	if len(matches) == 0 {
		return text, 0
	}

	haystack := []rune(text)
	repl := []rune(replacement)

	out := make([]rune, 0, len(haystack))
	last := 0
	for _, m := range matches {
		out = append(out, haystack[last:m.Start]...)
		out = append(out, repl...)
		last = m.End
	}
	out = append(out, haystack[last:]...)
	return string(out), len(matches)
}

// ReplaceAt substitutes a single match in the text.
func ReplaceAt(text string, m Match, replacement string) string {
	haystack := []rune(text)
	if m.Start < 0 || m.End > len(haystack) || m.Start > m.End {
		return text
	}
	out := make([]rune, 0, len(haystack))
	out = append(out, haystack[:m.Start]...)
	out = append(out, []rune(replacement)...)
	out = append(out, haystack[m.End:]...)
	return string(out)
}

func runesEqual(a, b []rune, caseSensitive bool) bool {
	for i := range b {
		x, y := a[i], b[i]
		if !caseSensitive {
			x, y = unicode.ToLower(x), unicode.ToLower(y)
		}
		if x != y {
			return false
		}
	}
	return true
}

func isWholeWord(text []rune, start, end int) bool {
	if start > 0 && isWordRune(text[start-1]) {
		return false
	}
	if end < len(text) && isWordRune(text[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
