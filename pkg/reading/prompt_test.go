package reading_test

import (
	"strings"
	"testing"

	"luna/pkg/deck"
	"luna/pkg/reading"
)

func promptCards() []reading.DrawnCard {
	fool, _ := deck.ByID("0")
	magician, _ := deck.ByID("1")
	priestess, _ := deck.ByID("2")
	return []reading.DrawnCard{
		{Card: fool, IsReversed: false, Position: reading.PositionPast},
		{Card: magician, IsReversed: true, Position: reading.PositionPresent},
		{Card: priestess, IsReversed: false, Position: reading.PositionFuture},
	}
}

func TestBuildPrompt_IncludesQuestion(t *testing.T) {
	prompt := reading.BuildPrompt("Should I change jobs?", promptCards())

	if !strings.Contains(prompt, `"Should I change jobs?"`) {
		t.Error("prompt does not quote the seeker's question")
	}
	if !strings.Contains(prompt, "Madame Luna") {
		t.Error("prompt is missing the persona")
	}
}

func TestBuildPrompt_BlankQuestionDefaults(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t"} {
		prompt := reading.BuildPrompt(q, promptCards())
		if !strings.Contains(prompt, `"General reading"`) {
			t.Errorf("question %q: prompt should fall back to General reading", q)
		}
	}
}

func TestBuildPrompt_CardLines(t *testing.T) {
	prompt := reading.BuildPrompt("", promptCards())

	if !strings.Contains(prompt, "1. Past: The Fool - ") {
		t.Error("prompt is missing the Past card line")
	}
	if !strings.Contains(prompt, "2. Present: The Magician (Reversed) - ") {
		t.Error("reversed card should carry the (Reversed) marker")
	}
	if !strings.Contains(prompt, "3. Future: The High Priestess - ") {
		t.Error("prompt is missing the Future card line")
	}
}
