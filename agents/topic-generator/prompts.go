package topicgenerator

import "fmt"

// Prompt builders are pure formatters. An empty niche or topic still
// produces a valid prompt, just a degenerate one.

func TopicsPrompt(niche string, count int) string {
	return fmt.Sprintf("Generate %d unique, clickable video topic ideas for niche: '%s'. Return as a numbered list only.", count, niche)
}

func ScriptPrompt(topic string, words int) string {
	return fmt.Sprintf("Write a %d-word YouTube narration script on: '%s'. Conversational tone, intro, body, conclusion.", words, topic)
}

func SEOPrompt(topic string) string {
	return fmt.Sprintf(`For topic '%s', generate an SEO pack:
1) 3-5 YouTube titles (under 70 chars)
2) Short description (under 150 chars)
3) Long description (200-300 words)
4) 100 keywords (comma-separated)
5) 50 hashtags (space-separated)
`, topic)
}

func ThumbnailsPrompt(topic string) string {
	return fmt.Sprintf("Give 6 short AI thumbnail prompts for topic: '%s', cinematic style, 16:9 aspect ratio.", topic)
}
