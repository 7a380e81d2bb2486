package sink

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "sync"
    "time"

    "go.uber.org/zap"

    "moderation/internal/pkg/logger"
    "moderation/internal/pkg/metrics"
    "moderation/internal/pkg/models"
)

// Buffers enriched view events and flushes them in bulk to the
// analytics endpoint, either when a threshold is reached or when the
// flush interval elapses.
type Sink struct {
    mutex        sync.Mutex
    buffer       []*models.ViewEvent
    threshold    int
    flushChannel chan struct{}
    done         chan struct{}
    wg           sync.WaitGroup
    analyticsURL string
    indexName    string
    maxRetries   int
}

// Creates a new Sink and starts its flush loop.
func NewSink(threshold int, analyticsURL, indexName string, flushIntervalSeconds, maxRetries int) *Sink {
    sink := &Sink{
        buffer:       make([]*models.ViewEvent, 0, threshold),
        threshold:    threshold,
        flushChannel: make(chan struct{}, 1),
        done:         make(chan struct{}),
        analyticsURL: analyticsURL,
        indexName:    indexName,
        maxRetries:   maxRetries,
    }
    go sink.startFlushing(time.Duration(flushIntervalSeconds) * time.Second)
    return sink
}

// Runs in a goroutine and flushes on signal or interval.
func (sink *Sink) startFlushing(interval time.Duration) {
    ticker := time.NewTicker(interval)
    defer ticker.Stop()
    for {
        select {
        case <-sink.done:
            return
        case <-sink.flushChannel:
            sink.flush()
        case <-ticker.C:
            sink.flush()
        }
    }
}

// Adds an event to the buffer and signals a flush if the threshold is met.
func (sink *Sink) Add(event *models.ViewEvent) {
    sink.mutex.Lock()
    defer sink.mutex.Unlock()

    sink.buffer = append(sink.buffer, event)
    if len(sink.buffer) >= sink.threshold {
        select {
        case sink.flushChannel <- struct{}{}:
        default:
            // flush already signaled
        }
    }
}

// Flushes whatever is buffered and stops the flush loop.
func (sink *Sink) Stop() {
    close(sink.done)
    sink.flush()
    sink.wg.Wait()
}

// Builds the NDJSON payload and hands it to the sender.
func (sink *Sink) flush() {
    sink.mutex.Lock()
    if len(sink.buffer) == 0 {
        sink.mutex.Unlock()
        return
    }
    events := sink.buffer
    sink.buffer = make([]*models.ViewEvent, 0, sink.threshold)
    sink.mutex.Unlock()

    var payload bytes.Buffer
    for _, event := range events {
        meta := map[string]map[string]string{
            "index": {
                "_index": sink.indexName,
                "_id":    event.ContentID + "/" + event.Fingerprint,
            },
        }
        metaLine, err := json.Marshal(meta)
        if err != nil {
            logger.Log.Error("Failed to marshal meta line", zap.Error(err))
            continue
        }
        payload.Write(metaLine)
        payload.WriteByte('\n')

        eventLine, err := json.Marshal(event)
        if err != nil {
            logger.Log.Error("Failed to marshal view event", zap.Error(err))
            continue
        }
        payload.Write(eventLine)
        payload.WriteByte('\n')
    }

    logger.Log.Info("Flushing view events to analytics", zap.Int("count", len(events)))

    sink.wg.Add(1)
    go func() {
        defer sink.wg.Done()
        sink.sendBulkRequest(payload.Bytes(), len(events))
    }()
}

// Sends the bulk payload, retrying with a flat backoff on failure.
func (sink *Sink) sendBulkRequest(payload []byte, count int) {
    for attempt := 0; ; attempt++ {
        err := sink.postPayload(payload)
        if err == nil {
            metrics.EventsFlushed.Add(float64(count))
            return
        }

        metrics.FlushFailures.Inc()
        if attempt >= sink.maxRetries {
            logger.Log.Error("Bulk flush failed, giving up",
                zap.Int("attempts", attempt+1),
                zap.Error(err))
            return
        }
        logger.Log.Warn("Bulk flush failed, retrying",
            zap.Int("attempt", attempt+1),
            zap.Error(err))
        time.Sleep(time.Second)
    }
}

func (sink *Sink) postPayload(payload []byte) error {
    request, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
        sink.analyticsURL, bytes.NewReader(payload))
    if err != nil {
        return err
    }
    request.Header.Set("Content-Type", "application/x-ndjson")

    response, err := http.DefaultClient.Do(request)
    if err != nil {
        return err
    }
    defer response.Body.Close()

    if response.StatusCode < 200 || response.StatusCode >= 300 {
        return fmt.Errorf("analytics endpoint returned status: %d", response.StatusCode)
    }
    return nil
}
