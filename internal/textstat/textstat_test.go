package textstat

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   \n\t  ", 0},
		{"hello", 1},
		{"hello world", 2},
		{"  spaced   out\nwords  ", 3},
	}
	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountCharacters(t *testing.T) {
	tests := []struct {
		text       string
		withSpaces bool
		want       int
	}{
		{"", true, 0},
		{"", false, 0},
		{"a b", true, 3},
		{"a b", false, 2},
		{"a\nb\tc", false, 3},
		{"héllo", true, 5}, // runes, not bytes
	}
	for _, tt := range tests {
		if got := CountCharacters(tt.text, tt.withSpaces); got != tt.want {
			t.Errorf("CountCharacters(%q, %v) = %d, want %d", tt.text, tt.withSpaces, got, tt.want)
		}
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"one line", 1},
		{"a\nb", 2},
		{"a\nb\n", 3},
	}
	for _, tt := range tests {
		if got := CountLines(tt.text); got != tt.want {
			t.Errorf("CountLines(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestLineCol(t *testing.T) {
	text := "ab\ncd\nef"
	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{8, 3, 3},
		{100, 3, 3}, // clamps past the end
		{-1, 1, 1},
	}
	for _, tt := range tests {
		line, col := LineCol(text, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("LineCol(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	s := Analyze("", 0, true)
	want := Statistics{Words: 0, Characters: 0, TotalLines: 1, CurrentLine: 1, CurrentCol: 1}
	if s != want {
		t.Errorf("Analyze(\"\") = %+v, want %+v", s, want)
	}
}

func TestAnalyze(t *testing.T) {
	s := Analyze("héllo wörld\nsecond", 12, true)
	if s.Words != 3 {
		t.Errorf("Words = %d, want 3", s.Words)
	}
	if s.Characters != 18 {
		t.Errorf("Characters = %d, want 18", s.Characters)
	}
	if s.TotalLines != 2 {
		t.Errorf("TotalLines = %d, want 2", s.TotalLines)
	}
	if s.CurrentLine != 2 || s.CurrentCol != 1 {
		t.Errorf("position = (%d,%d), want (2,1)", s.CurrentLine, s.CurrentCol)
	}
}
