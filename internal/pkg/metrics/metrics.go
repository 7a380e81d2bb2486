package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

// Counts how many view events have been processed in total.
var ViewsProcessed = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_views_processed_total",
    Help: "Total number of view events processed successfully",
})

// Counts how many view events were flagged as duplicates.
var DuplicatesDetected = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_duplicates_detected_total",
    Help: "Total number of view events that were flagged as duplicates",
})

// Counts spam verdicts, partitioned by the reason that fired.
var SpamVerdicts = promauto.NewCounterVec(
    prometheus.CounterOpts{
        Name: "moderation_spam_verdicts_total",
        Help: "Total number of submissions flagged as spam, by reason",
    },
    []string{"reason"},
)

// Counts submissions blocked by the phrase blocklist.
var PhraseBlocked = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_phrase_blocked_total",
    Help: "Total number of submissions whose phrase score exceeded the block threshold",
})

// Counts how many submissions were routed for language review.
var LanguageRouted = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_language_routed_total",
    Help: "Total number of submissions routed to the language review queue",
})

// Counts how many events have been flushed to the analytics endpoint.
var EventsFlushed = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_events_flushed_total",
    Help: "Total number of view events flushed to the analytics endpoint",
})

// Captures how many times a bulk flush request failed.
var FlushFailures = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_flush_failures_total",
    Help: "Total number of bulk flush requests that failed",
})

// Geolocation service metrics
var (
    GeoRequests = promauto.NewCounter(prometheus.CounterOpts{
        Name: "moderation_geo_requests_total",
        Help: "Total number of requests sent to the geolocation service",
    })

    GeoErrors = promauto.NewCounter(prometheus.CounterOpts{
        Name: "moderation_geo_errors_total",
        Help: "Total number of failed requests to the geolocation service",
    })

    GeoLatency = promauto.NewHistogram(prometheus.HistogramOpts{
        Name:    "moderation_geo_latency_seconds",
        Help:    "Time taken by geolocation lookups",
        Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // From 10ms to ~10s
    })

    CircuitBreakerState = promauto.NewGaugeVec(
        prometheus.GaugeOpts{
            Name: "moderation_circuit_breaker_state",
            Help: "Current state of circuit breakers (0=closed, 1=half-open, 2=open)",
        },
        []string{"service"},
    )
)
