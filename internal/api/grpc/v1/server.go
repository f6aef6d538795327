package v1

import (
	"context"
	"time"

	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// NewServer creates a grpc.Server that logs every call with its status code and duration
func NewServer(log logger.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts,
		grpc.ChainUnaryInterceptor(unaryLoggingInterceptor(log)),
		grpc.ChainStreamInterceptor(streamLoggingInterceptor(log)),
	)
	return grpc.NewServer(opts...)
}

func unaryLoggingInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(log, info.FullMethod, start, err)
		return resp, err
	}
}

func streamLoggingInterceptor(log logger.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(log, info.FullMethod, start, err)
		return err
	}
}

func logCall(log logger.Logger, method string, start time.Time, err error) {
	code := status.Code(err)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		log.Warn(method, " ", code.String(), " in ", elapsed, "ms: ", err)
		return
	}
	log.Info(method, " ", code.String(), " in ", elapsed, "ms")
}
