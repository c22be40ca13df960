package topicgenerator

import (
	"strings"
	"testing"
)

func TestTopicsPrompt(t *testing.T) {
	prompt := TopicsPrompt("fitness", 5)

	if !strings.Contains(prompt, "5") || !strings.Contains(prompt, "'fitness'") {
		t.Errorf("TopicsPrompt missing parameters: %q", prompt)
	}
	if !strings.Contains(prompt, "numbered list") {
		t.Errorf("TopicsPrompt should ask for a numbered list: %q", prompt)
	}
}

func TestScriptPrompt(t *testing.T) {
	prompt := ScriptPrompt("Morning Workouts", 300)

	if !strings.Contains(prompt, "300-word") || !strings.Contains(prompt, "'Morning Workouts'") {
		t.Errorf("ScriptPrompt missing parameters: %q", prompt)
	}
}

func TestSEOPrompt(t *testing.T) {
	prompt := SEOPrompt("Morning Workouts")

	for _, want := range []string{"'Morning Workouts'", "titles", "Short description", "Long description", "keywords", "hashtags"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("SEOPrompt missing %q: %q", want, prompt)
		}
	}
}

func TestThumbnailsPrompt(t *testing.T) {
	prompt := ThumbnailsPrompt("Morning Workouts")

	if !strings.Contains(prompt, "6") || !strings.Contains(prompt, "16:9") {
		t.Errorf("ThumbnailsPrompt should fix count and aspect ratio: %q", prompt)
	}
}

func TestPromptsAcceptEmptyInput(t *testing.T) {
	// Degenerate but valid: empty niche/topic never panics or errors.
	if TopicsPrompt("", 1) == "" {
		t.Error("TopicsPrompt with empty niche should still produce a prompt")
	}
	if ScriptPrompt("", 100) == "" {
		t.Error("ScriptPrompt with empty topic should still produce a prompt")
	}
}
