package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchFixture = `{
  "contents": {
    "twoColumnSearchResultsRenderer": {
      "primaryContents": {
        "sectionListRenderer": {
          "contents": [
            {
              "itemSectionRenderer": {
                "contents": [
                  {"shelfRenderer": {"title": "People also watched"}},
                  {
                    "videoRenderer": {
                      "title": {"runs": [{"text": "First Video"}]},
                      "viewCountText": {"simpleText": "1,234,567 views"},
                      "lengthText": {"simpleText": "12:34"}
                    }
                  },
                  {
                    "videoRenderer": {
                      "title": {"runs": [{"text": "Live Stream"}]}
                    }
                  },
                  {
                    "videoRenderer": {
                      "title": {"runs": []}
                    }
                  },
                  {
                    "videoRenderer": {
                      "title": {"runs": [{"text": "Third Video"}]},
                      "viewCountText": {"simpleText": "99 views"},
                      "lengthText": {"simpleText": "1:02:34"}
                    }
                  }
                ]
              }
            }
          ]
        }
      }
    }
  }
}`

func newTestClient(serverURL string) *Client {
	return &Client{
		baseURL:    serverURL,
		httpClient: http.DefaultClient,
	}
}

func TestClientSearch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req innertubeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode search request: %v", err)
		}
		gotQuery = req.Query
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	videos, err := newTestClient(server.URL).Search(context.Background(), "cooking", 50)
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}

	if gotQuery != "cooking" {
		t.Errorf("Request query = %q, want %q", gotQuery, "cooking")
	}

	// The titleless card is dropped; the others come back in order.
	if len(videos) != 3 {
		t.Fatalf("Got %d videos, want 3", len(videos))
	}

	first := videos[0]
	if first.Title != "First Video" || first.ViewCountText != "1,234,567 views" || first.Duration != "12:34" {
		t.Errorf("First video = %+v", first)
	}

	// Missing view count and duration stay empty for the scorer to default.
	second := videos[1]
	if second.Title != "Live Stream" || second.ViewCountText != "" || second.Duration != "" {
		t.Errorf("Second video = %+v, want empty optional fields", second)
	}
}

func TestClientSearchRespectsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	videos, err := newTestClient(server.URL).Search(context.Background(), "cooking", 2)
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}

	if len(videos) != 2 {
		t.Errorf("Got %d videos, want limit of 2", len(videos))
	}
}

func TestClientSearchUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Search(context.Background(), "cooking", 10); err == nil {
		t.Error("Expected error for non-200 search response, got nil")
	}
}

func TestClientSearchEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"contents":{}}`))
	}))
	defer server.Close()

	videos, err := newTestClient(server.URL).Search(context.Background(), "no such keyword", 10)
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("Got %d videos, want 0", len(videos))
	}
}
