package topicfinder

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"creator-stack/internal/models"
)

// Scorer assigns heuristic CTR and AVD scores to raw search results. The
// CTR score carries a small random jitter; tests inject a seeded source to
// keep runs reproducible.
type Scorer struct {
	rng *rand.Rand
}

func NewScorer(rng *rand.Rand) *Scorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scorer{rng: rng}
}

// Score turns one raw video into a scored candidate. Longer titles score
// higher on CTR, longer durations (more colon segments) higher on AVD. A
// missing duration counts as "0:00".
func (s *Scorer) Score(raw models.RawVideo) models.VideoCandidate {
	duration := raw.Duration
	if duration == "" {
		duration = "0:00"
	}

	ctr := len(strings.Fields(raw.Title)) + s.rng.Intn(5) + 1
	avd := len(strings.Split(duration, ":"))

	return models.VideoCandidate{
		Title:      raw.Title,
		Views:      ParseViewCount(raw.ViewCountText),
		Duration:   duration,
		CTRScore:   ctr,
		AVDScore:   avd,
		TotalScore: ctr + avd,
	}
}

// ScoreAll scores a batch in input order.
func (s *Scorer) ScoreAll(raws []models.RawVideo) []models.VideoCandidate {
	candidates := make([]models.VideoCandidate, 0, len(raws))
	for _, raw := range raws {
		candidates = append(candidates, s.Score(raw))
	}
	return candidates
}

// ParseViewCount extracts the number from display text like
// "1,234,567 views". Anything that doesn't parse counts as zero.
func ParseViewCount(text string) int64 {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), " views"))
	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return 0
	}

	views, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return views
}
