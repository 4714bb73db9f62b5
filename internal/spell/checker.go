// Package spell provides dictionary-based spell checking with
// suggestions for the editor.
package spell

import (
	"bufio"
	"bytes"
	_ "embed"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/sajari/fuzzy"

	"kun/internal/logger"
)

//go:embed dict/base.txt
var baseDict []byte

// SystemDictionary is merged into the word list when present.
const SystemDictionary = "/usr/share/dict/words"

// Issue is one misspelled word with its rune span in the checked text.
type Issue struct {
	Word  string
	Start int
	End   int
}

// Checker holds the trained model and the known-word set. A checker
// that failed to initialize stays permanently disabled; checking is
// best-effort and never fatal.
type Checker struct {
	mu      sync.RWMutex
	enabled bool
	words   map[string]struct{}
	model   *fuzzy.Model
	logger  logger.Logger
}

func NewChecker(log logger.Logger) *Checker {
	if log == nil {
		log = logger.Nop{}
	}
	c := &Checker{
		words:  map[string]struct{}{},
		logger: log,
	}

	loadWords(c.words, baseDict)
	fromSystem := loadSystemWords(c.words)

	if len(c.words) == 0 {
		log.Warning("SpellChecker", "no dictionary words available, spell check disabled", nil)
		return c
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)

	train := make([]string, 0, len(c.words))
	for w := range c.words {
		train = append(train, w)
	}
	model.Train(train)

	c.model = model
	c.enabled = true

	log.Info("SpellChecker", "dictionary loaded", map[string]interface{}{
		"words":       len(c.words),
		"system_dict": fromSystem,
	})
	return c
}

func loadWords(into map[string]struct{}, data []byte) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || !isAlpha(word) {
			continue
		}
		into[word] = struct{}{}
	}
}

func loadSystemWords(into map[string]struct{}) bool {
	data, err := os.ReadFile(SystemDictionary)
	if err != nil {
		return false
	}
	loadWords(into, data)
	return true
}

func (c *Checker) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Cannot enable a checker that never got a dictionary.
	c.enabled = enabled && c.model != nil
}

func (c *Checker) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// Known reports whether word is spelled correctly. Words containing
// non-letters are never flagged, matching the original behavior.
func (c *Checker) Known(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.enabled || word == "" {
		return true
	}
	low := strings.ToLower(word)
	if !isAlpha(low) {
		return true
	}
	_, ok := c.words[low]
	return ok
}

// Suggest returns up to max corrections for a misspelled word.
func (c *Checker) Suggest(word string, max int) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.enabled || word == "" || max <= 0 {
		return nil
	}

	suggestions := c.model.Suggestions(strings.ToLower(word), false)
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

// FindMisspelled scans text and returns each unknown word with its rune
// span.
func (c *Checker) FindMisspelled(text string) []Issue {
	if !c.Enabled() {
		return nil
	}

	var issues []Issue
	runes := []rune(text)

	i := 0
	for i < len(runes) {
		if !unicode.IsLetter(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && unicode.IsLetter(runes[i]) {
			i++
		}
		word := string(runes[start:i])
		if !c.Known(word) {
			issues = append(issues, Issue{Word: word, Start: start, End: i})
		}
	}
	return issues
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
