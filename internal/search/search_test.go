package search

import "testing"

func TestFindAllCaseInsensitive(t *testing.T) {
	matches := FindAll("Cat cat CAT", "cat", Options{})
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3: %v", len(matches), matches)
	}
	if matches[0] != (Match{0, 3}) || matches[1] != (Match{4, 7}) || matches[2] != (Match{8, 11}) {
		t.Errorf("wrong spans: %v", matches)
	}
}

func TestFindAllCaseSensitive(t *testing.T) {
	matches := FindAll("Cat cat CAT", "cat", Options{CaseSensitive: true})
	if len(matches) != 1 || matches[0].Start != 4 {
		t.Errorf("got %v, want one match at 4", matches)
	}
}

func TestFindAllWholeWord(t *testing.T) {
	matches := FindAll("cat catalog concat cat_x cat", "cat", Options{WholeWord: true})
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(matches), matches)
	}
	if matches[0].Start != 0 || matches[1].Start != 25 {
		t.Errorf("wrong spans: %v", matches)
	}
}

func TestFindAllNonOverlapping(t *testing.T) {
	matches := FindAll("aaaa", "aa", Options{})
	if len(matches) != 2 {
		t.Errorf("got %v, want two non-overlapping matches", matches)
	}
}

func TestFindAllRuneOffsets(t *testing.T) {
	matches := FindAll("héllo héllo", "héllo", Options{})
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[1].Start != 6 {
		t.Errorf("second match starts at rune %d, want 6", matches[1].Start)
	}
}

func TestFindAllEmptyNeedle(t *testing.T) {
	if matches := FindAll("anything", "", Options{}); matches != nil {
		t.Errorf("empty needle returned %v", matches)
	}
}

func TestNext(t *testing.T) {
	matches := []Match{{0, 3}, {10, 13}, {20, 23}}

	if i, ok := Next(matches, 5, false); !ok || i != 1 {
		t.Errorf("Next(5) = (%d,%v), want (1,true)", i, ok)
	}
	if i, ok := Next(matches, 0, false); !ok || i != 0 {
		t.Errorf("Next(0) = (%d,%v), want (0,true)", i, ok)
	}
	if _, ok := Next(matches, 25, false); ok {
		t.Error("Next past the last match without wrap should fail")
	}
	if i, ok := Next(matches, 25, true); !ok || i != 0 {
		t.Errorf("Next with wrap = (%d,%v), want (0,true)", i, ok)
	}
	if _, ok := Next(nil, 0, true); ok {
		t.Error("Next on no matches should fail even with wrap")
	}
}

func TestPrev(t *testing.T) {
	matches := []Match{{0, 3}, {10, 13}, {20, 23}}

	if i, ok := Prev(matches, 15, false); !ok || i != 1 {
		t.Errorf("Prev(15) = (%d,%v), want (1,true)", i, ok)
	}
	if _, ok := Prev(matches, 2, false); ok {
		t.Error("Prev before the first match without wrap should fail")
	}
	if i, ok := Prev(matches, 2, true); !ok || i != 2 {
		t.Errorf("Prev with wrap = (%d,%v), want (2,true)", i, ok)
	}
}

func TestReplaceAll(t *testing.T) {
	out, n := ReplaceAll("the cat and the CAT", "cat", "dog", Options{})
	if n != 2 {
		t.Errorf("replaced %d, want 2", n)
	}
	if out != "the dog and the dog" {
		t.Errorf("got %q", out)
	}
}

func TestReplaceAllNoMatch(t *testing.T) {
	out, n := ReplaceAll("nothing here", "zzz", "x", Options{})
	if n != 0 || out != "nothing here" {
		t.Errorf("got (%q, %d)", out, n)
	}
}

func TestReplaceAllDifferentLengths(t *testing.T) {
	out, n := ReplaceAll("a-a-a", "a", "long", Options{})
	if n != 3 || out != "long-long-long" {
		t.Errorf("got (%q, %d)", out, n)
	}
}

func TestReplaceAt(t *testing.T) {
	out := ReplaceAt("hello world", Match{6, 11}, "there")
	if out != "hello there" {
		t.Errorf("got %q", out)
	}
}

func TestReplaceAtOutOfRange(t *testing.T) {
	out := ReplaceAt("abc", Match{1, 10}, "x")
	if out != "abc" {
		t.Errorf("out-of-range replace changed text to %q", out)
	}
}
