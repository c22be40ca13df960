package topicfinder

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"creator-stack/internal/models"
	"creator-stack/shared/config"
	"creator-stack/shared/scheduler"
)

type fakeSource struct {
	search func(keyword string, limit int) ([]models.RawVideo, error)
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Search(ctx context.Context, keyword string, limit int) ([]models.RawVideo, error) {
	return f.search(keyword, limit)
}

func TestFinderAgentName(t *testing.T) {
	agent := NewFinderAgent(&config.Config{})
	expected := "Topic Finder"
	if name := agent.Name(); name != expected {
		t.Errorf("Agent.Name() = %s, want %s", name, expected)
	}
}

func TestFinderAgentImplementsAgent(t *testing.T) {
	var _ scheduler.Agent = NewFinderAgent(&config.Config{})
}

func TestFinderMetricsGetSummary(t *testing.T) {
	metrics := FinderMetrics{VideosFound: 20, VideosRanked: 10}
	expected := "found 20 videos, ranked top 10"
	if got := metrics.GetSummary(); got != expected {
		t.Errorf("GetSummary() = %s, want %s", got, expected)
	}
}

func TestRunOnceSkipsWithoutKeyword(t *testing.T) {
	cfg := &config.Config{
		Finder: config.FinderConfig{FetchLimit: 20, TableLimit: 10},
	}

	agent := NewFinderAgent(cfg)
	agent.source = &fakeSource{search: func(keyword string, limit int) ([]models.RawVideo, error) {
		t.Error("Source should not be called when the keyword is missing")
		return nil, nil
	}}

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Errorf("RunOnce without keyword should be suppressed, got error: %v", err)
	}
}

func TestRunOnceSkipsWithoutSource(t *testing.T) {
	cfg := &config.Config{
		Finder: config.FinderConfig{Keyword: "cooking", FetchLimit: 20, TableLimit: 10},
	}

	// Source left nil, as Initialize leaves it when credentials are missing.
	agent := NewFinderAgent(cfg)
	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Errorf("RunOnce without source should be suppressed, got error: %v", err)
	}
}

func TestRunOnceSearchFailurePropagates(t *testing.T) {
	cfg := &config.Config{
		Finder: config.FinderConfig{Keyword: "cooking", FetchLimit: 20, TableLimit: 10},
	}

	agent := NewFinderAgent(cfg)
	agent.source = &fakeSource{search: func(keyword string, limit int) ([]models.RawVideo, error) {
		return nil, errors.New("network down")
	}}

	if err := agent.RunOnce(context.Background(), nil); err == nil {
		t.Error("Expected error when search fails, got nil")
	}
}

func TestRunOnceEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		OutputDir: dir,
		Finder:    config.FinderConfig{Keyword: "cooking basics", FetchLimit: 20, TableLimit: 2},
	}

	agent := NewFinderAgent(cfg)
	agent.scorer = NewScorer(rand.New(rand.NewSource(1)))
	agent.source = &fakeSource{search: func(keyword string, limit int) ([]models.RawVideo, error) {
		if keyword != "cooking basics" {
			t.Errorf("Search keyword = %q, want %q", keyword, "cooking basics")
		}
		if limit != 20 {
			t.Errorf("Search limit = %d, want 20", limit)
		}
		return []models.RawVideo{
			{Title: "A short title", ViewCountText: "100 views", Duration: "1:00"},
			{Title: "A much longer title with many more words in it", ViewCountText: "200 views", Duration: "10:00"},
			{Title: "Mid", ViewCountText: "50 views", Duration: "2:00"},
		}, nil
	}}

	var gotMetrics FinderMetrics
	err := agent.RunOnce(context.Background(), &scheduler.AgentEvents{
		OnSuccess: func(metrics scheduler.Metrics, _ time.Duration) {
			gotMetrics = metrics.(FinderMetrics)
		},
	})
	if err != nil {
		t.Fatalf("RunOnce() returned error: %v", err)
	}

	if gotMetrics.VideosFound != 3 {
		t.Errorf("VideosFound = %d, want 3", gotMetrics.VideosFound)
	}
	if gotMetrics.VideosRanked != 2 {
		t.Errorf("VideosRanked = %d, want table limit of 2", gotMetrics.VideosRanked)
	}

	csvPath := filepath.Join(dir, "cooking-basics_ranking.csv")
	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("Expected CSV at %s: %v", csvPath, err)
	}
}
