package models

// RawVideo is one search result as returned by a video search source.
// Only the title is guaranteed; view count and duration are best effort.
type RawVideo struct {
	Title         string `json:"title"`
	ViewCountText string `json:"view_count_text"` // e.g. "1,234,567 views"
	Duration      string `json:"duration"`        // e.g. "12:34" or "1:02:34"
}

// VideoCandidate is a scored search result. TotalScore is always the sum
// of CTRScore and AVDScore; candidates are immutable after scoring.
type VideoCandidate struct {
	Title      string `json:"title"`
	Views      int64  `json:"views"`
	Duration   string `json:"duration"`
	CTRScore   int    `json:"ctr_score"`
	AVDScore   int    `json:"avd_score"`
	TotalScore int    `json:"total_score"`
}
