package topicgenerator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"creator-stack/internal/models"
	"creator-stack/shared/slug"
)

// ExportJSON renders the structured document: niche, generation timestamp
// and the topic records verbatim.
func ExportJSON(result *models.GenerationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// ExportMarkdown renders the flat text document: a heading per topic with
// labeled script, SEO and thumbnail sections, topics joined by blank lines.
func ExportMarkdown(result *models.GenerationResult) string {
	sections := make([]string, 0, len(result.Topics))
	for _, t := range result.Topics {
		sections = append(sections, fmt.Sprintf("# %s\n\n## Script\n%s\n\n## SEO\n%s\n\n## Thumbnails\n%s",
			t.Topic, t.Script, t.SEO, t.Thumbnails))
	}
	return strings.Join(sections, "\n\n")
}

// WriteFiles writes both export documents under outputDir and returns the
// paths written.
func WriteFiles(outputDir string, result *models.GenerationResult) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := slug.Make(result.Niche)

	jsonDoc, err := ExportJSON(result)
	if err != nil {
		return nil, fmt.Errorf("failed to render JSON export: %w", err)
	}

	jsonPath := filepath.Join(outputDir, base+"_output.json")
	if err := os.WriteFile(jsonPath, jsonDoc, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}

	mdPath := filepath.Join(outputDir, base+"_output.md")
	if err := os.WriteFile(mdPath, []byte(ExportMarkdown(result)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", mdPath, err)
	}

	return []string{jsonPath, mdPath}, nil
}
