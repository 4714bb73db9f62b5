package spell

import (
	"testing"

	"github.com/sajari/fuzzy"
)

// testChecker builds a checker over a fixed word list so tests do not
// depend on the system dictionary.
func testChecker(t *testing.T, words ...string) *Checker {
	t.Helper()

	c := &Checker{words: map[string]struct{}{}}
	for _, w := range words {
		c.words[w] = struct{}{}
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(words)

	c.model = model
	c.enabled = true
	return c
}

func TestKnown(t *testing.T) {
	c := testChecker(t, "hello", "world")

	if !c.Known("hello") {
		t.Error("dictionary word flagged")
	}
	if !c.Known("Hello") {
		t.Error("case should not matter")
	}
	if c.Known("helllo") {
		t.Error("misspelling not flagged")
	}
}

func TestKnownSkipsNonAlphaWords(t *testing.T) {
	c := testChecker(t, "hello")

	for _, w := range []string{"", "123", "x9", "don't"} {
		if !c.Known(w) {
			t.Errorf("non-alphabetic token %q was flagged", w)
		}
	}
}

func TestKnownWhenDisabled(t *testing.T) {
	c := testChecker(t, "hello")
	c.SetEnabled(false)

	if !c.Known("zzzzxq") {
		t.Error("disabled checker flagged a word")
	}
}

func TestSetEnabledWithoutDictionary(t *testing.T) {
	c := &Checker{words: map[string]struct{}{}}
	c.SetEnabled(true)

	if c.Enabled() {
		t.Error("checker without a model reported itself enabled")
	}
}

func TestFindMisspelled(t *testing.T) {
	c := testChecker(t, "the", "cat", "sat")

	issues := c.FindMisspelled("the caat sat, 42 tims")
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %v", len(issues), issues)
	}

	if issues[0].Word != "caat" || issues[0].Start != 4 || issues[0].End != 8 {
		t.Errorf("first issue = %+v", issues[0])
	}
	if issues[1].Word != "tims" || issues[1].Start != 17 || issues[1].End != 21 {
		t.Errorf("second issue = %+v", issues[1])
	}
}

func TestFindMisspelledDisabled(t *testing.T) {
	c := testChecker(t, "hello")
	c.SetEnabled(false)

	if issues := c.FindMisspelled("zzxqjv"); issues != nil {
		t.Errorf("disabled checker reported %v", issues)
	}
}

func TestSuggestRespectsLimit(t *testing.T) {
	c := testChecker(t, "cat", "car", "can", "cap", "cot")

	got := c.Suggest("caz", 2)
	if len(got) > 2 {
		t.Errorf("got %d suggestions, want at most 2", len(got))
	}

	if s := c.Suggest("caz", 0); s != nil {
		t.Errorf("zero limit returned %v", s)
	}
}
