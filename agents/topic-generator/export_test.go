package topicgenerator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"creator-stack/internal/models"
)

func sampleResult() *models.GenerationResult {
	return &models.GenerationResult{
		Niche:       "fitness",
		GeneratedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Topics: []models.TopicRecord{
			{Topic: "Morning Workouts", Script: "script one", SEO: "seo one", Thumbnails: "thumbs one"},
			{Topic: "Home Gym Basics", Script: "script two", SEO: "seo two", Thumbnails: "thumbs two"},
		},
	}
}

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(sampleResult())
	if err != nil {
		t.Fatalf("ExportJSON() returned error: %v", err)
	}

	var decoded struct {
		Niche       string               `json:"niche"`
		GeneratedAt time.Time            `json:"generated_at"`
		Topics      []models.TopicRecord `json:"topics"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}

	if decoded.Niche != "fitness" {
		t.Errorf("niche = %q, want %q", decoded.Niche, "fitness")
	}
	if decoded.GeneratedAt.IsZero() {
		t.Error("generated_at missing from export")
	}
	if len(decoded.Topics) != 2 {
		t.Fatalf("Got %d topics, want 2", len(decoded.Topics))
	}
	if decoded.Topics[0].Script != "script one" {
		t.Errorf("Topic 1 script = %q, want verbatim copy", decoded.Topics[0].Script)
	}
}

func TestExportMarkdown(t *testing.T) {
	doc := ExportMarkdown(sampleResult())

	for _, want := range []string{
		"# Morning Workouts",
		"# Home Gym Basics",
		"## Script\nscript one",
		"## SEO\nseo two",
		"## Thumbnails\nthumbs two",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Markdown export missing %q", want)
		}
	}

	if !strings.Contains(doc, "thumbs one\n\n# Home Gym Basics") {
		t.Error("Topics not joined with a blank line")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteFiles(dir, sampleResult())
	if err != nil {
		t.Fatalf("WriteFiles() returned error: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("Got %d paths, want 2", len(paths))
	}

	wantJSON := filepath.Join(dir, "fitness_output.json")
	wantMD := filepath.Join(dir, "fitness_output.md")
	if paths[0] != wantJSON || paths[1] != wantMD {
		t.Errorf("Paths = %v, want [%s %s]", paths, wantJSON, wantMD)
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Expected file %s to exist: %v", p, err)
		}
	}
}
