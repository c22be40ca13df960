package topicfinder

import (
	"context"
	"fmt"
	"log"
	"time"

	"creator-stack/agents/topic-finder/search"
	"creator-stack/shared/config"
	"creator-stack/shared/email"
	"creator-stack/shared/scheduler"
)

// FinderMetrics summarizes one ranking run
type FinderMetrics struct {
	VideosFound  int  `json:"videos_found"`
	VideosRanked int  `json:"videos_ranked"`
	EmailSent    bool `json:"email_sent"`
}

// GetSummary implements the scheduler.Metrics interface
func (m FinderMetrics) GetSummary() string {
	return fmt.Sprintf("found %d videos, ranked top %d", m.VideosFound, m.VideosRanked)
}

// FinderAgent implements the scheduler.Agent interface
type FinderAgent struct {
	config      *config.Config
	source      search.Source
	scorer      *Scorer
	emailSender *email.Sender
}

func NewFinderAgent(cfg *config.Config) *FinderAgent {
	return &FinderAgent{
		config: cfg,
		scorer: NewScorer(nil),
	}
}

func (a *FinderAgent) Name() string {
	return "Topic Finder"
}

func (a *FinderAgent) Schedule() string {
	return a.config.Finder.Schedule
}

func (a *FinderAgent) Initialize() error {
	log.Printf("Initializing %s...", a.Name())

	if a.source == nil {
		fcfg := &a.config.Finder
		switch fcfg.Source {
		case "dataapi":
			// The Data API needs either an API key or an OAuth client; with
			// neither the agent stays dormant rather than failing startup.
			if fcfg.YouTube.APIKey == "" && fcfg.YouTube.ClientID == "" {
				log.Println("No YouTube credential configured, search source unavailable")
				break
			}
			client, err := search.NewDataAPIClient(&fcfg.YouTube)
			if err != nil {
				return fmt.Errorf("failed to create YouTube Data API client: %w", err)
			}
			a.source = client
		default:
			a.source = search.NewClient()
		}
		if a.source != nil {
			log.Printf("Search source initialized (%s)", a.source.Name())
		}
	}

	if a.emailSender == nil && a.config.Email.Enabled() {
		a.emailSender = email.NewSender(&a.config.Email)
		log.Println("Email sender initialized")
	}

	return nil
}

func (a *FinderAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()
	fcfg := &a.config.Finder

	// Missing run inputs suppress the pipeline; they are not errors.
	if fcfg.Keyword == "" {
		log.Println("No keyword configured, skipping ranking run")
		return nil
	}
	if a.source == nil {
		log.Println("No search source available, skipping ranking run")
		return nil
	}

	log.Printf("Searching for %q (limit %d)...", fcfg.Keyword, fcfg.FetchLimit)
	raws, err := a.source.Search(ctx, fcfg.Keyword, fcfg.FetchLimit)
	if err != nil {
		return fmt.Errorf("search failed for keyword %q: %w", fcfg.Keyword, err)
	}
	if len(raws) == 0 {
		log.Printf("No videos found for %q", fcfg.Keyword)
		return nil
	}

	ranked := Rank(a.scorer.ScoreAll(raws), fcfg.TableLimit)

	path, err := WriteCSV(a.config.OutputDir, fcfg.Keyword, ranked)
	if err != nil {
		return fmt.Errorf("failed to export ranking: %w", err)
	}
	log.Printf("Wrote %s", path)

	metrics := FinderMetrics{
		VideosFound:  len(raws),
		VideosRanked: len(ranked),
	}

	if a.emailSender != nil {
		if err := a.emailSender.SendRankingDigest(fcfg.Keyword, ranked); err != nil {
			log.Printf("Warning: Failed to send ranking digest: %v", err)
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

	log.Printf("Ranking complete: %s", metrics.GetSummary())
	return nil
}
