package administrator

import (
    "encoding/json"
    "net"
    "net/http"
    "time"

    "github.com/prometheus/client_golang/prometheus/promhttp"
    "go.uber.org/zap"

    "moderation/internal/pkg/logger"
    "moderation/internal/pkg/metrics"
    "moderation/internal/pkg/models"
    "moderation/internal/pkg/spam"
)

// Request body for the synchronous text endpoints.
type textRequest struct {
    Text string `json:"text"`
}

// Builds the HTTP routes. Split out from startHTTP so tests can mount
// the mux on an httptest server.
func newMux(admin *administrator) *http.ServeMux {
    mux := http.NewServeMux()

    // Asynchronous view ingestion: enqueue and return.
    mux.HandleFunc("/views", func(writer http.ResponseWriter, request *http.Request) {
        if request.Method != http.MethodPost {
            http.Error(writer, "Method Not Allowed", http.StatusMethodNotAllowed)
            return
        }

        var viewRequest models.ViewRequest
        if err := json.NewDecoder(request.Body).Decode(&viewRequest); err != nil {
            http.Error(writer, "invalid JSON payload", http.StatusBadRequest)
            logger.Log.Warn("Failed to decode view request", zap.Error(err))
            return
        }
        if viewRequest.ContentID == "" || viewRequest.SessionToken == "" {
            http.Error(writer, "content_id and session_token are required", http.StatusBadRequest)
            return
        }

        // The web tier usually forwards the client address; fall back to
        // the connection's remote address.
        if viewRequest.ClientAddress == "" {
            if host, _, err := net.SplitHostPort(request.RemoteAddr); err == nil {
                viewRequest.ClientAddress = host
            } else {
                viewRequest.ClientAddress = request.RemoteAddr
            }
        }
        if viewRequest.UserAgent == "" {
            viewRequest.UserAgent = request.Header.Get("User-Agent")
        }

        if err := admin.EnqueueView(request.Context(), viewRequest); err != nil {
            http.Error(writer, "queue is full, try again later", http.StatusServiceUnavailable)
            logger.Log.Error("Failed to enqueue view", zap.Error(err))
            return
        }
        writer.WriteHeader(http.StatusAccepted)
        writer.Write([]byte("View enqueued"))
    })

    // Synchronous spam verdict for submission-time checks.
    mux.HandleFunc("/classify", func(writer http.ResponseWriter, request *http.Request) {
        if request.Method != http.MethodPost {
            http.Error(writer, "Method Not Allowed", http.StatusMethodNotAllowed)
            return
        }

        var body textRequest
        if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
            http.Error(writer, "invalid JSON payload", http.StatusBadRequest)
            return
        }

        verdict := spam.Classify(body.Text)
        if verdict.IsSpam {
            metrics.SpamVerdicts.WithLabelValues(verdict.Reason).Inc()
        }

        writer.Header().Set("Content-Type", "application/json")
        json.NewEncoder(writer).Encode(verdict)
    })

    // Full triage report for the moderation console.
    mux.HandleFunc("/triage", func(writer http.ResponseWriter, request *http.Request) {
        if request.Method != http.MethodPost {
            http.Error(writer, "Method Not Allowed", http.StatusMethodNotAllowed)
            return
        }

        var body textRequest
        if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
            http.Error(writer, "invalid JSON payload", http.StatusBadRequest)
            return
        }

        report := admin.analyzer.Analyze(body.Text)

        writer.Header().Set("Content-Type", "application/json")
        json.NewEncoder(writer).Encode(report)
    })

    // /metrics endpoint for Prometheus
    mux.Handle("/metrics", promhttp.Handler())

    // /health endpoint
    mux.HandleFunc("/health", func(writer http.ResponseWriter, request *http.Request) {
        health := struct {
            Status     string    `json:"status"`
            QueueDepth int       `json:"queue_depth"`
            Workers    int       `json:"workers"`
            Uptime     string    `json:"uptime"`
            StartTime  time.Time `json:"start_time"`
        }{
            Status:     "OK",
            QueueDepth: admin.QueueDepth(),
            Workers:    admin.WorkerCount(),
            Uptime:     time.Since(admin.StartTime()).String(),
            StartTime:  admin.StartTime(),
        }

        writer.Header().Set("Content-Type", "application/json")
        json.NewEncoder(writer).Encode(health)
    })

    return mux
}

// Starts the HTTP service: view ingestion, synchronous classification,
// triage, and monitoring endpoints.
func startHTTP(admin *administrator, port string) {
    logger.Log.Info("HTTP service listening", zap.String("address", ":"+port))

    if err := http.ListenAndServe(":"+port, newMux(admin)); err != nil {
        logger.Log.Fatal("Failed to start HTTP service", zap.Error(err))
    }
}
