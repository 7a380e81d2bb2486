package worker

import (
    "context"
    "sync"
    "time"

    "go.uber.org/zap"

    "moderation/internal/pkg/logger"
    "moderation/internal/pkg/queue"
    "moderation/internal/pkg/sink"
    "moderation/internal/pkg/view"
)

// Manages a pool of workers that drain the view queue in parallel.
type WorkerPool struct {
    numWorkers int
    queue      *queue.Queue
    recorder   *view.Recorder
    sink       *sink.Sink
    wg         sync.WaitGroup
}

// Creates a new worker pool with the specified number of workers.
func NewWorkerPool(numWorkers int, queue *queue.Queue, recorder *view.Recorder, sink *sink.Sink) *WorkerPool {
    return &WorkerPool{
        numWorkers: numWorkers,
        queue:      queue,
        recorder:   recorder,
        sink:       sink,
    }
}

// Launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
    logger.Log.Info("Starting worker pool", zap.Int("workers", wp.numWorkers))

    for i := 0; i < wp.numWorkers; i++ {
        wp.wg.Add(1)
        go wp.runWorker(ctx, i)
    }
}

// Blocks until all workers have finished.
func (wp *WorkerPool) Wait() {
    wp.wg.Wait()
}

// The main loop for each worker goroutine.
func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
    defer wp.wg.Done()

    logger.Log.Info("Worker started", zap.Int("worker_id", id))

    for {
        select {
        case <-ctx.Done():
            logger.Log.Info("Worker received stop signal", zap.Int("worker_id", id))
            return
        default:
            request, err := wp.queue.Remove()
            if err != nil {
                // If queue is empty, wait a bit before trying again
                time.Sleep(200 * time.Millisecond)
                continue
            }

            result := wp.recorder.Record(ctx, request)
            if result.Duplicate {
                logger.Log.Debug("Duplicate view dropped",
                    zap.Int("worker_id", id),
                    zap.String("content_id", request.ContentID))
                continue
            }

            event := result.Event(request.ContentID, time.Now())
            wp.sink.Add(&event)

            logger.Log.Debug("Recorded view",
                zap.Int("worker_id", id),
                zap.String("content_id", request.ContentID),
                zap.String("device", result.Device))
        }
    }
}
