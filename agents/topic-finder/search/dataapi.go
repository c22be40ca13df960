package search

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"creator-stack/internal/models"
	"creator-stack/shared/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DataAPIClient searches through the YouTube Data API v3. It authenticates
// with an API key when one is configured, otherwise with an OAuth token
// file via the device flow. Results are normalized into the same raw shape
// the web client produces.
type DataAPIClient struct {
	service *youtube.Service
}

func NewDataAPIClient(cfg *config.YouTubeConfig) (*DataAPIClient, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{"https://www.googleapis.com/auth/youtube.readonly"},
			Endpoint:     google.Endpoint,
		}

		token, err := loadToken(oauthConfig, cfg.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to get OAuth token: %w", err)
		}

		httpClient := oauth2.NewClient(ctx, &savingTokenSource{
			config:    oauthConfig,
			token:     token,
			tokenFile: cfg.TokenFile,
		})
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &DataAPIClient{service: service}, nil
}

func (c *DataAPIClient) Name() string { return "dataapi" }

func (c *DataAPIClient) Search(ctx context.Context, keyword string, limit int) ([]models.RawVideo, error) {
	if limit > 50 {
		limit = 50 // Data API page cap
	}

	searchCall := c.service.Search.List([]string{"snippet"}).
		Q(keyword).
		Type("video").
		MaxResults(int64(limit)).
		Context(ctx)

	searchResp, err := searchCall.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	var videoIDs []string
	titles := make(map[string]string)
	for _, item := range searchResp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videoIDs = append(videoIDs, item.Id.VideoId)
		titles[item.Id.VideoId] = item.Snippet.Title
	}

	if len(videoIDs) == 0 {
		return nil, nil
	}

	type detail struct {
		viewCount uint64
		duration  string
	}
	details := make(map[string]detail)

	videosCall := c.service.Videos.List([]string{"contentDetails", "statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx)

	videosResp, err := videosCall.Do()
	if err != nil {
		// Titles alone still make a scoreable result set
		log.Printf("Warning: Failed to get video details: %v", err)
	} else {
		for _, item := range videosResp.Items {
			d := detail{}
			if item.Statistics != nil {
				d.viewCount = item.Statistics.ViewCount
			}
			if item.ContentDetails != nil {
				d.duration = colonDuration(parseDurationSeconds(item.ContentDetails.Duration))
			}
			details[item.Id] = d
		}
	}

	videos := make([]models.RawVideo, 0, len(videoIDs))
	for _, id := range videoIDs {
		raw := models.RawVideo{Title: titles[id]}
		if d, ok := details[id]; ok {
			raw.ViewCountText = fmt.Sprintf("%d views", d.viewCount)
			raw.Duration = d.duration
		}
		videos = append(videos, raw)
	}

	return videos, nil
}

var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// parseDurationSeconds converts an ISO 8601 duration ("PT1H2M3S") to
// seconds. Unparseable input counts as zero.
func parseDurationSeconds(duration string) int {
	if duration == "" {
		return 0
	}

	matches := isoDurationRe.FindStringSubmatch(duration)
	if len(matches) == 0 {
		return 0
	}

	var totalSeconds int
	if matches[1] != "" {
		if hours, err := strconv.Atoi(matches[1]); err == nil {
			totalSeconds += hours * 3600
		}
	}
	if matches[2] != "" {
		if minutes, err := strconv.Atoi(matches[2]); err == nil {
			totalSeconds += minutes * 60
		}
	}
	if matches[3] != "" {
		if seconds, err := strconv.Atoi(matches[3]); err == nil {
			totalSeconds += seconds
		}
	}

	return totalSeconds
}

// colonDuration renders seconds in the "H:MM:SS" / "M:SS" style the web
// search results use.
func colonDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
