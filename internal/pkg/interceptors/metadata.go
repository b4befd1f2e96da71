package interceptors

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors/constants"
)

// GetMetadataValue looks key up in the context values first, then in the
// incoming and outgoing gRPC metadata. Empty string when absent.
func GetMetadataValue(ctx context.Context, key string) string {
	if v, ok := ctx.Value(contextKeyFor(key)).(string); ok && v != "" {
		return v
	}

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(key); len(vals) > 0 {
			return vals[0]
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		if vals := md.Get(key); len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}

// RequestID returns the request id propagated with ctx.
func RequestID(ctx context.Context) string {
	return GetMetadataValue(ctx, constants.HeaderXRequestId)
}

// IdempotencyKey returns the idempotency key propagated with ctx.
func IdempotencyKey(ctx context.Context) string {
	return GetMetadataValue(ctx, constants.HeaderXIdempotencyKey)
}

// OutgoingContext attaches the request id, idempotency key and the caller's
// identity to ctx as outgoing gRPC metadata. The bearer credential is
// forwarded exactly as received.
func OutgoingContext(ctx context.Context, id identity.Identity, requestID, idempotencyKey string) context.Context {
	kv := []string{
		constants.HeaderXSubjectId, id.SubjectID,
		constants.HeaderXRoles, identity.FormatRoles(id.Roles),
	}
	if id.Credential != "" {
		kv = append(kv, constants.HeaderAuthorization, id.Credential)
	}
	if requestID != "" {
		kv = append(kv, constants.HeaderXRequestId, requestID)
	}
	if idempotencyKey != "" {
		kv = append(kv, constants.HeaderXIdempotencyKey, idempotencyKey)
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}

func contextKeyFor(key string) any {
	switch key {
	case constants.HeaderXRequestId:
		return constants.ContextKeyRequestID
	case constants.HeaderXIdempotencyKey:
		return constants.ContextKeyIdempotencyKey
	default:
		return key
	}
}
