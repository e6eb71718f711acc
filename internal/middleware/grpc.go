package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackaholy/Cheminv2.0/internal/auth"
	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const RequestIDMetadata = "x-request-id"

type requestIDKey struct{}

// RequestID returns the id assigned to the current request, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ContextInterceptor stamps every unary call with a request id and the caller
// identity from metadata, and logs its outcome.
func ContextInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if val := md.Get(RequestIDMetadata); len(val) > 0 {
				requestID = val[0]
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, requestIDKey{}, requestID)
		if user := auth.GetUserID(ctx); user != "" {
			ctx = auth.WithUser(ctx, user)
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDMetadata, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID),
			zap.Duration("duration", time.Since(start)),
			zap.String("code", status.Code(err).String()),
		}
		if err != nil {
			log.Warn("gRPC call failed", append(fields, zap.Error(err))...)
		} else {
			log.Debug("gRPC call", fields...)
		}
		return resp, err
	}
}
