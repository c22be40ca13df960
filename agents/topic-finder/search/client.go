// Package search provides video search sources for the topic finder. Both
// sources normalize results into models.RawVideo so a single scorer serves
// either one.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"creator-stack/internal/models"
)

// Source is a keyword video search. Implementations return at most limit
// results; fewer is whatever the service had, not an error.
type Source interface {
	Name() string
	Search(ctx context.Context, keyword string, limit int) ([]models.RawVideo, error)
}

const innertubeURL = "https://www.youtube.com/youtubei/v1/search"

// Client queries YouTube's public web search endpoint, the same one the
// browser uses. No API key, no pagination, no retry; the call inherits the
// transport's default timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    innertubeURL,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) Name() string { return "web" }

type innertubeRequest struct {
	Context struct {
		Client struct {
			ClientName    string `json:"clientName"`
			ClientVersion string `json:"clientVersion"`
		} `json:"client"`
	} `json:"context"`
	Query string `json:"query"`
}

// Only the slices of the response tree that carry video cards are mapped;
// everything else (shelves, ads, refinements) decodes to zero values and
// is skipped.
type innertubeResponse struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer struct {
							Contents []struct {
								VideoRenderer *videoRenderer `json:"videoRenderer"`
							} `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type videoRenderer struct {
	Title struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"title"`
	ViewCountText struct {
		SimpleText string `json:"simpleText"`
	} `json:"viewCountText"`
	LengthText struct {
		SimpleText string `json:"simpleText"`
	} `json:"lengthText"`
}

// Search issues one POST for the keyword and returns up to limit video
// cards. Entries without a title are dropped; view count and duration stay
// empty when the card doesn't carry them.
func (c *Client) Search(ctx context.Context, keyword string, limit int) ([]models.RawVideo, error) {
	var body innertubeRequest
	body.Context.Client.ClientName = "WEB"
	body.Context.Client.ClientVersion = "2.20240101.00.00"
	body.Query = keyword

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed innertubeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	var videos []models.RawVideo
	for _, section := range parsed.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents {
		for _, item := range section.ItemSectionRenderer.Contents {
			vr := item.VideoRenderer
			if vr == nil || len(vr.Title.Runs) == 0 || vr.Title.Runs[0].Text == "" {
				continue
			}

			videos = append(videos, models.RawVideo{
				Title:         vr.Title.Runs[0].Text,
				ViewCountText: vr.ViewCountText.SimpleText,
				Duration:      vr.LengthText.SimpleText,
			})

			if len(videos) == limit {
				return videos, nil
			}
		}
	}

	return videos, nil
}
