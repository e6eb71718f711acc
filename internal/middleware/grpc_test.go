package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackaholy/Cheminv2.0/internal/auth"
	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/cheminv.search.v1.SearchService/Search"}

func TestContextInterceptor_PropagatesIDs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := ContextInterceptor(logger.New(zap.New(core)))

	md := metadata.Pairs(RequestIDMetadata, "req-1", auth.UserMetadata, "anne")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var gotRequestID, gotUser string
	resp, err := interceptor(ctx, "in", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		gotRequestID = RequestID(ctx)
		gotUser = auth.GetUserID(ctx)
		return "out", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "out", resp)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "anne", gotUser)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	assert.Equal(t, "OK", entry.ContextMap()["code"])
}

func TestContextInterceptor_GeneratesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := ContextInterceptor(logger.New(zap.New(core)))

	var gotRequestID string
	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		gotRequestID = RequestID(ctx)
		return nil, status.Error(codes.NotFound, "bottle not found")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, perr := uuid.Parse(gotRequestID)
	assert.NoError(t, perr)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "NotFound", entry.ContextMap()["code"])
}

func TestRequestID_Unset(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}
