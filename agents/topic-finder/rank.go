package topicfinder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"creator-stack/internal/models"
	"creator-stack/shared/slug"
)

var csvHeader = []string{"Title", "Views", "Duration", "CTR_Score", "AVD_Score", "Total_Score"}

// Rank sorts candidates by total score, highest first, and truncates to
// limit. The sort is stable so ties keep their search-result order. The
// input slice is not modified.
func Rank(candidates []models.VideoCandidate, limit int) []models.VideoCandidate {
	ranked := make([]models.VideoCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// WriteCSV exports the ranked table to <keyword-slug>_ranking.csv under
// outputDir and returns the path written.
func WriteCSV(outputDir, keyword string, ranked []models.VideoCandidate) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, slug.Make(keyword)+"_ranking.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range ranked {
		record := []string{
			c.Title,
			strconv.FormatInt(c.Views, 10),
			c.Duration,
			strconv.Itoa(c.CTRScore),
			strconv.Itoa(c.AVDScore),
			strconv.Itoa(c.TotalScore),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return path, nil
}
