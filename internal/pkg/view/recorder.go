package view

import (
    "context"
    "time"

    "go.uber.org/zap"

    "moderation/internal/pkg/geo"
    "moderation/internal/pkg/logger"
    "moderation/internal/pkg/metrics"
    "moderation/internal/pkg/models"
    "moderation/internal/pkg/useragent"
)

// Outcome of recording one view. Enrichment fields are only populated
// for novel views; they are best-effort and may be empty or "Unknown"
// without the view itself failing.
type Result struct {
    Duplicate   bool
    Fingerprint string
    Country     string
    City        string
    Device      string
    Browser     string
}

// Decides novelty for incoming views and enriches novel ones with
// geolocation and device/browser metadata. Stateless apart from the
// injected store; safe for concurrent use.
type Recorder struct {
    store      Store
    locator    geo.Locator
    anonymizer Anonymizer
    geoTimeout time.Duration
}

// Creates a Recorder. A nil anonymizer means pass-through.
func NewRecorder(store Store, locator geo.Locator, anonymizer Anonymizer, geoTimeout time.Duration) *Recorder {
    if anonymizer == nil {
        anonymizer = NewPassthroughAnonymizer()
    }
    if geoTimeout <= 0 {
        geoTimeout = 2 * time.Second
    }
    return &Recorder{
        store:      store,
        locator:    locator,
        anonymizer: anonymizer,
        geoTimeout: geoTimeout,
    }
}

// Records one view. The duplicate decision is always computed; a failed
// geo lookup degrades to empty country/city and is never returned as an
// error.
func (recorder *Recorder) Record(ctx context.Context, request models.ViewRequest) Result {
    fingerprint := Fingerprint(request.SessionToken, request.ClientAddress, recorder.anonymizer)

    novel := recorder.store.Record(ctx, fingerprint, request.ContentID)
    result := Result{
        Duplicate:   !novel,
        Fingerprint: fingerprint,
    }
    if !novel {
        metrics.DuplicatesDetected.Inc()
        return result
    }

    // Geo enrichment, bounded so a slow provider cannot stall the view
    geoCtx, cancel := context.WithTimeout(ctx, recorder.geoTimeout)
    location, err := recorder.locator.Locate(geoCtx, request.ClientAddress)
    cancel()
    if err != nil {
        logger.Log.Warn("Geo enrichment failed, recording view without location",
            zap.String("content_id", request.ContentID),
            zap.Error(err))
    } else {
        result.Country = location.Country
        result.City = location.City
    }

    info := useragent.Parse(request.UserAgent)
    result.Device = info.Device
    result.Browser = info.Browser

    metrics.ViewsProcessed.Inc()
    return result
}

// Builds the analytics event for a novel view.
func (result Result) Event(contentID string, recordedAt time.Time) models.ViewEvent {
    return models.ViewEvent{
        ContentID:   contentID,
        Fingerprint: result.Fingerprint,
        Country:     result.Country,
        City:        result.City,
        Device:      result.Device,
        Browser:     result.Browser,
        RecordedAt:  recordedAt,
    }
}
