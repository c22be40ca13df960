package topicgenerator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"creator-stack/internal/models"
	"creator-stack/shared/completion"
	"creator-stack/shared/config"
	"creator-stack/shared/email"
	"creator-stack/shared/scheduler"
)

// GeneratorMetrics summarizes one generation run
type GeneratorMetrics struct {
	TopicsRequested int  `json:"topics_requested"`
	TopicsGenerated int  `json:"topics_generated"`
	FieldErrors     int  `json:"field_errors"`
	EmailSent       bool `json:"email_sent"`
}

// GetSummary implements the scheduler.Metrics interface
func (m GeneratorMetrics) GetSummary() string {
	return fmt.Sprintf("requested %d topics, generated %d, %d field errors", m.TopicsRequested, m.TopicsGenerated, m.FieldErrors)
}

// GeneratorAgent implements the scheduler.Agent interface
type GeneratorAgent struct {
	config      *config.Config
	provider    completion.Provider
	emailSender *email.Sender
}

func NewGeneratorAgent(cfg *config.Config) *GeneratorAgent {
	return &GeneratorAgent{
		config: cfg,
	}
}

func (a *GeneratorAgent) Name() string {
	return "Topic Generator"
}

func (a *GeneratorAgent) Schedule() string {
	return a.config.Generator.Schedule
}

func (a *GeneratorAgent) Initialize() error {
	log.Printf("Initializing %s...", a.Name())

	if a.provider == nil && a.hasCredential() {
		provider, err := completion.NewProvider(&a.config.Generator.Completion)
		if err != nil {
			return fmt.Errorf("failed to create completion provider: %w", err)
		}
		a.provider = provider
		log.Printf("Completion provider initialized (%s)", provider.Name())
	}

	if a.emailSender == nil && a.config.Email.Enabled() {
		a.emailSender = email.NewSender(&a.config.Email)
		log.Println("Email sender initialized")
	}

	return nil
}

func (a *GeneratorAgent) hasCredential() bool {
	cc := &a.config.Generator.Completion
	if cc.Provider == "gemini" {
		return cc.GeminiAPIKey != ""
	}
	return cc.APIKey != ""
}

func (a *GeneratorAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()
	gcfg := &a.config.Generator

	// Missing run inputs suppress the pipeline; they are not errors.
	if gcfg.Niche == "" {
		log.Println("No niche configured, skipping generation run")
		return nil
	}
	if a.provider == nil {
		log.Println("No completion credential configured, skipping generation run")
		return nil
	}

	result, err := NewGenerator(a.provider).Generate(ctx, Request{
		Niche:       gcfg.Niche,
		TopicCount:  gcfg.TopicCount,
		ScriptWords: gcfg.ScriptWords,
	})
	if err != nil {
		return fmt.Errorf("generation failed for niche %q: %w", gcfg.Niche, err)
	}

	paths, err := WriteFiles(a.config.OutputDir, result)
	if err != nil {
		return fmt.Errorf("failed to export generation result: %w", err)
	}
	log.Printf("Wrote %s", strings.Join(paths, ", "))

	metrics := GeneratorMetrics{
		TopicsRequested: gcfg.TopicCount,
		TopicsGenerated: len(result.Topics),
		FieldErrors:     countFieldErrors(result),
	}

	if a.emailSender != nil {
		if err := a.emailSender.SendGenerationDigest(result); err != nil {
			log.Printf("Warning: Failed to send generation digest: %v", err)
			if events != nil && events.OnPartialFailure != nil {
				events.OnPartialFailure(fmt.Errorf("digest email failed: %w", err), time.Since(startTime))
			}
		} else {
			metrics.EmailSent = true
		}
	}

	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, time.Since(startTime))
	}

	log.Printf("Generation complete: %s", metrics.GetSummary())
	return nil
}

// countFieldErrors counts fields that ended up with an inline error
// placeholder instead of generated content.
func countFieldErrors(result *models.GenerationResult) int {
	count := 0
	for _, t := range result.Topics {
		for _, field := range []string{t.Script, t.SEO, t.Thumbnails} {
			if strings.HasPrefix(field, "[Error:") {
				count++
			}
		}
	}
	return count
}
