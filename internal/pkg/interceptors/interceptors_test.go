package interceptors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
)

func TestTraceServerInterceptor_PropagatesIdentity(t *testing.T) {
	caller := identity.Identity{
		SubjectID:  "user123",
		Roles:      []string{identity.RoleUser, identity.RoleManager},
		Credential: "Bearer abc.def.ghi",
	}

	// What the gateway sends is what the service receives.
	out := OutgoingContext(context.Background(), caller, "req-1", "idem-1")
	md, ok := metadata.FromOutgoingContext(out)
	require.True(t, ok)
	in := metadata.NewIncomingContext(context.Background(), md)

	var seen context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = ctx
		return "ok", nil
	}

	resp, err := TraceServerInterceptor()(in, nil, &grpc.UnaryServerInfo{FullMethod: "/orders.v1.OrderService/GetOrder"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	assert.Equal(t, caller, identity.FromContext(seen))
	assert.Equal(t, "req-1", RequestID(seen))
	assert.Equal(t, "idem-1", IdempotencyKey(seen))
}

func TestTraceServerInterceptor_NoMetadata(t *testing.T) {
	var seen context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = ctx
		return nil, nil
	}

	_, err := TraceServerInterceptor()(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)

	assert.False(t, identity.FromContext(seen).Authenticated())
	assert.Empty(t, RequestID(seen))
}

func TestGetMetadataValue_Outgoing(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-request-id", "req-9")
	assert.Equal(t, "req-9", GetMetadataValue(ctx, "x-request-id"))
	assert.Empty(t, GetMetadataValue(ctx, "x-missing"))
}
