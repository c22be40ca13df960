package topicgenerator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"creator-stack/internal/models"
	"creator-stack/shared/completion"
)

// Token caps per call kind. The topic list is short; scripts and SEO
// packs need room.
const (
	topicListMaxTokens  = 256
	scriptMaxTokens     = 800
	seoMaxTokens        = 1000
	thumbnailsMaxTokens = 400
)

// Request carries the inputs for one generation run. It is immutable;
// there is no ambient state between runs.
type Request struct {
	Niche       string
	TopicCount  int
	ScriptWords int
}

// Generator assembles a GenerationResult from sequential completion
// calls. One provider, no concurrency, no retries.
type Generator struct {
	provider completion.Provider
}

func NewGenerator(provider completion.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate runs the full pipeline: one topic-list call, then a script,
// SEO and thumbnail call per topic, strictly in order. A failed topic-list
// call aborts the run; a failed per-topic call only leaves an inline
// "[Error: ...]" placeholder in that field.
func (g *Generator) Generate(ctx context.Context, req Request) (*models.GenerationResult, error) {
	raw, err := g.provider.Complete(ctx, completion.Request{
		Prompt:    TopicsPrompt(req.Niche, req.TopicCount),
		MaxTokens: topicListMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate topic list: %w", err)
	}

	topics := ParseTopicList(raw, req.TopicCount)
	if len(topics) < req.TopicCount {
		log.Printf("Upstream returned %d topics, requested %d; continuing with the shorter list", len(topics), req.TopicCount)
	}

	result := &models.GenerationResult{
		Niche:       req.Niche,
		GeneratedAt: time.Now(),
		Topics:      make([]models.TopicRecord, 0, len(topics)),
	}

	for i, topic := range topics {
		log.Printf("Generating content for topic %d/%d: %s", i+1, len(topics), topic)
		record := models.TopicRecord{Topic: topic}

		if script, err := g.provider.Complete(ctx, completion.Request{
			Prompt:    ScriptPrompt(topic, req.ScriptWords),
			MaxTokens: scriptMaxTokens,
		}); err != nil {
			log.Printf("Warning: script generation failed for %q: %v", topic, err)
			record.Script = errorPlaceholder(err)
		} else {
			record.Script = ApproxTrim(script, req.ScriptWords)
		}

		if seo, err := g.provider.Complete(ctx, completion.Request{
			Prompt:    SEOPrompt(topic),
			MaxTokens: seoMaxTokens,
		}); err != nil {
			log.Printf("Warning: SEO generation failed for %q: %v", topic, err)
			record.SEO = errorPlaceholder(err)
		} else {
			record.SEO = seo
		}

		if thumbs, err := g.provider.Complete(ctx, completion.Request{
			Prompt:    ThumbnailsPrompt(topic),
			MaxTokens: thumbnailsMaxTokens,
		}); err != nil {
			log.Printf("Warning: thumbnail prompt generation failed for %q: %v", topic, err)
			record.Thumbnails = errorPlaceholder(err)
		} else {
			record.Thumbnails = thumbs
		}

		result.Topics = append(result.Topics, record)
	}

	return result, nil
}

// errorPlaceholder is the inline marker substituted for a field whose
// completion call failed.
func errorPlaceholder(err error) string {
	return fmt.Sprintf("[Error: %v]", err)
}

// ParseTopicList turns a raw numbered list into topic strings. Blank lines
// are skipped. A line whose first character is a digit has its "N." prefix
// stripped (everything up to the first dot); other lines are kept verbatim.
// The result is truncated to limit; fewer entries than requested is a
// degraded result, not an error.
func ParseTopicList(raw string, limit int) []string {
	var topics []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		topic := line
		if r := []rune(line)[0]; unicode.IsDigit(r) {
			if idx := strings.Index(line, "."); idx >= 0 {
				topic = line[idx+1:]
			}
			topic = strings.TrimSpace(topic)
		}

		topics = append(topics, topic)
		if len(topics) == limit {
			break
		}
	}
	return topics
}

// ApproxTrim cuts text to the first wordTarget whitespace-delimited words,
// joined by single spaces. Shorter text passes through unchanged; no
// sentence-boundary awareness.
func ApproxTrim(text string, wordTarget int) string {
	words := strings.Fields(text)
	if len(words) > wordTarget {
		return strings.Join(words[:wordTarget], " ")
	}
	return text
}
