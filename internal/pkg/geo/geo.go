package geo

import (
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "net/url"
    "time"

    "go.uber.org/zap"
    "golang.org/x/time/rate"

    "moderation/internal/pkg/circuitbreaker"
    "moderation/internal/pkg/logger"
    "moderation/internal/pkg/metrics"
)

// Best-effort location of a client address. Zero value means unknown.
type Location struct {
    Country string `json:"country,omitempty"`
    City    string `json:"city,omitempty"`
}

// Resolves a client address to a Location. Implementations must treat
// failure as an ordinary return so callers can degrade to unknown geo.
type Locator interface {
    Locate(ctx context.Context, address string) (Location, error)
}

// Locator backed by an HTTP geolocation service that returns JSON with
// country_name and city fields. Missing fields are tolerated.
type httpLocator struct {
    baseURL      string
    client         *http.Client
    circuitBreaker *circuitbreaker.CircuitBreaker
    rateLimiter    *rate.Limiter
}

// Creates a Locator talking to the given geolocation service. The
// timeout bounds the whole lookup so a slow provider cannot stall view
// recording.
func NewHTTPLocator(baseURL string, timeout time.Duration) Locator {
    return &httpLocator{
        baseURL:      baseURL,
        client:         &http.Client{Timeout: timeout},
        circuitBreaker: circuitbreaker.NewCircuitBreaker("geo-service", 5, 30*time.Second),
        // Public geolocation APIs are rate limited; stay under 10 req/s
        rateLimiter: rate.NewLimiter(rate.Limit(10), 20),
    }
}

// Looks up the address. Returns an error on any transport, status, or
// decoding problem; the caller decides how to degrade.
func (locator *httpLocator) Locate(ctx context.Context, address string) (Location, error) {
    if err := locator.rateLimiter.Wait(ctx); err != nil {
        return Location{}, fmt.Errorf("geo rate limit: %w", err)
    }

    var location Location
    err := locator.circuitBreaker.Execute(func() error {
        start := time.Now()
        metrics.GeoRequests.Inc()

        request, err := http.NewRequestWithContext(ctx, http.MethodGet,
            locator.baseURL+"/"+url.PathEscape(address), nil)
        if err != nil {
            return err
        }

        response, err := locator.client.Do(request)
        if err != nil {
            metrics.GeoErrors.Inc()
            return err
        }
        defer response.Body.Close()

        metrics.GeoLatency.Observe(time.Since(start).Seconds())

        if response.StatusCode != http.StatusOK {
            metrics.GeoErrors.Inc()
            return fmt.Errorf("geo service returned status: %d", response.StatusCode)
        }

        var body struct {
            CountryName string `json:"country_name"`
            City        string `json:"city"`
        }
        if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
            metrics.GeoErrors.Inc()
            return err
        }

        location = Location{Country: body.CountryName, City: body.City}
        return nil
    })

    if err != nil {
        logger.Log.Debug("Geo lookup failed",
            zap.String("address", address),
            zap.Error(err))
        return Location{}, err
    }

    return location, nil
}
