package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"moderation/internal/pkg/geo"
	"moderation/internal/pkg/logger"
	"moderation/internal/pkg/models"
)

func init() {
	logger.Log = zap.NewNop() // Set up a no-op logger to avoid nil pointer dereferences in tests.
}

// A deterministic Locator for tests.
type fakeLocator struct {
	location geo.Location
	err      error
	calls    int
}

func (fl *fakeLocator) Locate(ctx context.Context, address string) (geo.Location, error) {
	fl.calls++
	return fl.location, fl.err
}

func testRequest(contentID string) models.ViewRequest {
	return models.ViewRequest{
		ContentID:     contentID,
		SessionToken:  "d1ceb5f7a9e64f23",
		ClientAddress: "203.0.113.7",
		UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// The second view for the same fingerprint and content must be a
// duplicate; a different content item for the same visitor is novel.
func TestRecorderDeduplication(t *testing.T) {
	locator := &fakeLocator{location: geo.Location{Country: "Germany", City: "Berlin"}}
	recorder := NewRecorder(NewMemoryStore(), locator, nil, time.Second)

	first := recorder.Record(context.Background(), testRequest("post-1"))
	if first.Duplicate {
		t.Error("expected first view to be novel")
	}
	if first.Country != "Germany" || first.City != "Berlin" {
		t.Errorf("expected geo enrichment, got %+v", first)
	}

	second := recorder.Record(context.Background(), testRequest("post-1"))
	if !second.Duplicate {
		t.Error("expected second view for the same content to be a duplicate")
	}

	other := recorder.Record(context.Background(), testRequest("post-2"))
	if other.Duplicate {
		t.Error("expected a view for different content to be novel")
	}
}

// A failing geo lookup degrades to empty location fields and never
// fails the recording.
func TestRecorderGeoFailure(t *testing.T) {
	locator := &fakeLocator{err: errors.New("connection refused")}
	recorder := NewRecorder(NewMemoryStore(), locator, nil, time.Second)

	result := recorder.Record(context.Background(), testRequest("post-1"))
	if result.Duplicate {
		t.Error("expected view to be novel despite geo failure")
	}
	if result.Country != "" || result.City != "" {
		t.Errorf("expected empty geo fields on failure, got %+v", result)
	}
	if result.Device == "" || result.Browser == "" {
		t.Errorf("expected device enrichment to survive geo failure, got %+v", result)
	}
}

// Duplicates skip enrichment entirely.
func TestRecorderDuplicateSkipsEnrichment(t *testing.T) {
	locator := &fakeLocator{location: geo.Location{Country: "Germany"}}
	recorder := NewRecorder(NewMemoryStore(), locator, nil, time.Second)

	recorder.Record(context.Background(), testRequest("post-1"))
	recorder.Record(context.Background(), testRequest("post-1"))

	if locator.calls != 1 {
		t.Errorf("expected exactly one geo lookup, got %d", locator.calls)
	}
}

// The same fingerprint on two different visitors never collides: the
// fingerprint depends on both token and address.
func TestRecorderDistinctVisitors(t *testing.T) {
	locator := &fakeLocator{}
	recorder := NewRecorder(NewMemoryStore(), locator, nil, time.Second)

	first := testRequest("post-1")
	second := testRequest("post-1")
	second.SessionToken = "another-token"

	if recorder.Record(context.Background(), first).Duplicate {
		t.Error("expected first visitor to be novel")
	}
	if recorder.Record(context.Background(), second).Duplicate {
		t.Error("expected a different visitor to be novel")
	}
}
