package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/utility-bills/internal/common"
)

const requestIDHeader = "x-request-id"

// NewGRPCServer registers the reconciler, health and reflection services.
func NewGRPCServer(svc ReconcilerServer, logger *slog.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	if logger == nil {
		logger = slog.Default()
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(requestIDInterceptor(), loggingInterceptor(logger)))
	s := grpc.NewServer(opts...)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(s)

	RegisterReconcilerServer(s, svc)
	return s, hs
}

// requestIDInterceptor carries an incoming x-request-id into the context,
// minting one when absent.
func requestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(requestIDHeader); len(ids) > 0 && ids[0] != "" {
				ctx = common.WithRequestID(ctx, ids[0])
			}
		}
		ctx, _ = common.EnsureRequestID(ctx)
		return handler(ctx, req)
	}
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log := common.LoggerFrom(ctx, logger)
		if err != nil {
			log.Warn("grpc.call.failed", "method", info.FullMethod, "code", status.Code(err).String(),
				"error", err, "elapsed_ms", time.Since(start).Milliseconds())
			return resp, err
		}
		log.Debug("grpc.call.ok", "method", info.FullMethod, "elapsed_ms", time.Since(start).Milliseconds())
		return resp, nil
	}
}
