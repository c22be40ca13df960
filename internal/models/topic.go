package models

import "time"

// TopicRecord holds the generated content for a single video topic.
// Each field is filled once as its completion call finishes; a failed
// call leaves an inline "[Error: ...]" placeholder in that field only.
type TopicRecord struct {
	Topic      string `json:"topic"`
	Script     string `json:"script"`
	SEO        string `json:"seo"`
	Thumbnails string `json:"thumbnails"`
}

// GenerationResult is the aggregate output of one generation run.
// It owns its TopicRecords and lives only for the duration of the run.
type GenerationResult struct {
	Niche       string        `json:"niche"`
	GeneratedAt time.Time     `json:"generated_at"`
	Topics      []TopicRecord `json:"topics"`
}
