package auth

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Methods that never require credentials.
var publicMethods = map[string]struct{}{
	grpc_health_v1.Health_Check_FullMethodName: {},
	grpc_health_v1.Health_Watch_FullMethodName: {},
}

// UnaryInterceptor applies the authenticator to incoming gRPC calls.
func (a *Authenticator) UnaryInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublicMethod(info.FullMethod) || !a.Enabled() {
		return handler(ctx, req)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}
	newCtx, err := a.Authenticate(ctx, first(md.Get("authorization")), first(md.Get("x-api-key")))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or missing credentials")
	}
	return handler(newCtx, req)
}

func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
