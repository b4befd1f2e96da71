package interceptors

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors/constants"
)

// TraceServerInterceptor copies the request id, idempotency key and the
// forwarded identity from incoming metadata into the handler context.
func TraceServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		requestID := first(md, constants.HeaderXRequestId)
		idempotencyKey := first(md, constants.HeaderXIdempotencyKey)

		caller := identity.Identity{
			SubjectID:  first(md, constants.HeaderXSubjectId),
			Roles:      identity.ParseRoles(first(md, constants.HeaderXRoles)),
			Credential: first(md, constants.HeaderAuthorization),
		}

		newCtx := context.WithValue(ctx, constants.ContextKeyRequestID, requestID)
		newCtx = context.WithValue(newCtx, constants.ContextKeyIdempotencyKey, idempotencyKey)
		newCtx = identity.WithIdentity(newCtx, caller)

		slog.DebugContext(newCtx, "grpc call",
			"method", info.FullMethod,
			"request_id", requestID,
			"subject_id", caller.SubjectID,
		)

		return handler(newCtx, req)
	}
}

func first(md metadata.MD, key string) string {
	if vals := md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
