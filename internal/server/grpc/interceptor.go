package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	pb "github.com/dmitrijs2005/memoryvault/internal/proto"
	"github.com/dmitrijs2005/memoryvault/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey    ctxKey = "userID"
	requestIDKey ctxKey = "requestID"
)

// RequestIDHeaderName lets a caller supply its own request id.
const RequestIDHeaderName = "x-request-id"

func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requiresToken reports whether method belongs to the vault service and is
// not Ping. Health checks and Ping are open.
func requiresToken(method string) bool {
	return strings.HasPrefix(method, "/"+pb.VaultService_ServiceDesc.ServiceName+"/") && method != pb.VaultService_Ping_FullMethodName
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if !requiresToken(info.FullMethod) {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, userIDKey, userID), req)
}

// requestLogInterceptor tags the call with a request id and logs its outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeaderName); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"request_id", requestID, "method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request", args...)
	}
	return resp, err
}
