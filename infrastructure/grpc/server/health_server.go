package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"question-lab/auth"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer exposes grpc.health.v1 for the report service.
// Status is NOT_SERVING until MarkServing is called.
type HealthServer struct {
	log     *slog.Logger
	service string
	port    int
	health  *health.Server
	grpc    *grpc.Server
}

func NewHealthServer(log *slog.Logger, service string, port int, authenticator *auth.Authenticator) *HealthServer {
	h := health.NewServer()
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			authenticator.UnaryInterceptor,
		))
	grpc_health_v1.RegisterHealthServer(s, h)
	h.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, service: service, port: port, health: h, grpc: s}
}

func (s *HealthServer) MarkServing() {
	s.health.SetServingStatus(s.service, grpc_health_v1.HealthCheckResponse_SERVING)
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}

// Run listens on the configured port until ctx is done.
func (s *HealthServer) Run(ctx context.Context) error {
	address := fmt.Sprintf("0.0.0.0:%d", s.port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return s.Serve(ctx, listener)
}

func (s *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting gRPC server", "address", listener.Addr().String())
		for serviceName := range s.grpc.GetServiceInfo() {
			s.log.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.grpc.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
			return
		}
		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpc.GracefulStop()
		return nil
	}
}
