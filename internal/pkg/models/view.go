package models

import "time"

// Raw view event as submitted by the platform's web tier, before
// deduplication and enrichment.
type ViewRequest struct {
	ContentID     string `json:"content_id"`
	SessionToken  string `json:"session_token"`
	ClientAddress string `json:"client_address,omitempty"`
	UserAgent     string `json:"user_agent,omitempty"`
}

// Enriched view event accepted as novel, ready for the analytics sink.
// Country and City are best-effort and empty when geolocation was
// unavailable; Device and Browser fall back to "Unknown".
type ViewEvent struct {
	ContentID   string    `json:"content_id"`
	Fingerprint string    `json:"fingerprint"`
	Country     string    `json:"country,omitempty"`
	City        string    `json:"city,omitempty"`
	Device      string    `json:"device"`
	Browser     string    `json:"browser"`
	RecordedAt  time.Time `json:"recorded_at"`
}
