package administrator

import (
    "context"
    "time"

    "go.uber.org/zap"

    "moderation/internal/pkg/config"
    "moderation/internal/pkg/geo"
    "moderation/internal/pkg/logger"
    "moderation/internal/pkg/models"
    "moderation/internal/pkg/queue"
    "moderation/internal/pkg/sink"
    "moderation/internal/pkg/triage"
    "moderation/internal/pkg/view"
    "moderation/internal/pkg/worker"
)

// Administrator interface
type Administrator interface {
    EnqueueView(ctx context.Context, request models.ViewRequest) error
    StartWorkers(ctx context.Context) error
    StartService(port string)
    Stop()
    QueueDepth() int
    WorkerCount() int
    StartTime() time.Time
}

// Implementation of the Administrator interface
type administrator struct {
    queue      *queue.Queue
    recorder   *view.Recorder
    analyzer   *triage.Analyzer
    sink       *sink.Sink
    workerPool *worker.WorkerPool
    startTime  time.Time
    numWorkers int
}

// Creates a new instance of an Administrator with a config
func New(config *config.Config) Administrator {
    viewQueue, err := queue.CreateQueue(config.QueueCapacity)
    if err != nil {
        logger.Log.Fatal("Failed to create queue", zap.Error(err))
    }

    store, err := view.NewRedisStore(config)
    if err != nil {
        logger.Log.Fatal("Failed to create view store", zap.Error(err))
    }

    geoTimeout := time.Duration(config.GeoTimeoutSeconds) * time.Second
    locator := geo.NewHTTPLocator(config.GeoServiceURL, geoTimeout)
    recorder := view.NewRecorder(store, locator, nil, geoTimeout)

    eventSink := sink.NewSink(
        config.FlushThreshold,
        config.AnalyticsURL,
        config.EventIndexName,
        config.FlushInterval,
        config.MaxRetries,
    )

    numWorkers := config.NumWorkers
    if numWorkers <= 0 {
        numWorkers = 1 // Default to 1 worker if not specified
    }

    return &administrator{
        queue:      viewQueue,
        recorder:   recorder,
        analyzer:   triage.NewAnalyzer(config.PhraseBlockThreshold),
        sink:       eventSink,
        workerPool: worker.NewWorkerPool(numWorkers, viewQueue, recorder, eventSink),
        startTime:  time.Now(),
        numWorkers: numWorkers,
    }
}

// Enqueues a view event. This quickly returns so the web tier can move on.
func (admin *administrator) EnqueueView(ctx context.Context, request models.ViewRequest) error {
    return admin.queue.Insert(request)
}

// Starts the worker pool that drains the view queue.
func (admin *administrator) StartWorkers(ctx context.Context) error {
    admin.workerPool.Start(ctx)
    return nil
}

// Starts the HTTP service at the given port.
func (admin *administrator) StartService(port string) {
    logger.Log.Info("Starting moderation HTTP service", zap.String("port", port))
    startHTTP(admin, port)
}

// Stops the worker pool and sink gracefully.
func (admin *administrator) Stop() {
    logger.Log.Info("Beginning shutdown sequence")

    logger.Log.Info("Waiting for worker pool to finish processing existing items")
    admin.workerPool.Wait()

    logger.Log.Info("Worker pool shutdown complete, stopping event sink")
    admin.sink.Stop()

    logger.Log.Info("Administrator stopped gracefully")
}

// Returns the current queue depth for health checks
func (admin *administrator) QueueDepth() int {
    return admin.queue.Length()
}

// Returns the number of workers for health checks
func (admin *administrator) WorkerCount() int {
    return admin.numWorkers
}

// Returns when the service was started for health checks
func (admin *administrator) StartTime() time.Time {
    return admin.startTime
}
