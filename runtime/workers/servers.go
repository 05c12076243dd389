package workers

import (
	"context"
	"log/slog"
	"question-lab/infrastructure/grpc/server"
	httpserver "question-lab/infrastructure/http/server"
	"question-lab/observability"
	"time"
)

// HTTPServerWorker serves the report API until the supervisor stops it.
type HTTPServerWorker struct {
	server *httpserver.Server
}

func NewHTTPServerWorker(server *httpserver.Server) *HTTPServerWorker {
	return &HTTPServerWorker{server: server}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	return w.server.Run(ctx)
}

// GRPCServerWorker serves grpc.health.v1.
type GRPCServerWorker struct {
	server *server.HealthServer
}

func NewGRPCServerWorker(server *server.HealthServer) *GRPCServerWorker {
	return &GRPCServerWorker{server: server}
}

func (w *GRPCServerWorker) Run(ctx context.Context) error {
	return w.server.Run(ctx)
}

// HealthMonitoringWorker refreshes the process statistics shown by /healthz.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	monitoring     *observability.Monitoring
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(log *slog.Logger, monitoring *observability.Monitoring, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, monitoring: monitoring, metricInterval: metricInterval}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	w.log.Debug("Health monitoring started", "interval", w.metricInterval)
	w.monitoring.Listen(ctx, w.metricInterval)
	return nil
}
