package grpc

import (
	"context"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type tokenKey struct{}

// startHealthServer 啟動記錄 authorization header 的 health server
func startHealthServer(t *testing.T) (*bufconn.Listener, func() []string) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []string
	)
	lis := bufconn.Listen(1 << 16)
	srv := grpc.NewServer(grpc.UnaryInterceptor(func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		mu.Lock()
		seen = append(seen, md.Get("authorization")...)
		mu.Unlock()
		return handler(ctx, req)
	}))
	healthpb.RegisterHealthServer(srv, health.NewServer())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return lis, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), seen...)
	}
}

func bufDialer(lis *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func TestPoolReusesConnection(t *testing.T) {
	lis, _ := startHealthServer(t)
	pool := NewPool(WithDialOptions(bufDialer(lis)))
	defer pool.Close()

	a, err := pool.GetConnection("passthrough:///bufnet")
	require.NoError(t, err)
	b, err := pool.GetConnection("passthrough:///bufnet")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, pool.Len())

	require.NoError(t, a.Close())
	c, err := pool.GetConnection("passthrough:///bufnet")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.Equal(t, 1, pool.Len())

	require.NoError(t, pool.Close())
	assert.Equal(t, 0, pool.Len())
}

func TestPoolBearerCredentialsAndInterceptor(t *testing.T) {
	lis, seen := startHealthServer(t)

	calls := 0
	creds := BearerCredentials{Source: func(ctx context.Context) (string, error) {
		token, _ := ctx.Value(tokenKey{}).(string)
		return token, nil
	}}
	pool := NewPool(
		WithDialOptions(bufDialer(lis), grpc.WithPerRPCCredentials(creds)),
		WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			calls++
			return invoker(ctx, method, req, reply, cc, opts...)
		}),
	)
	defer pool.Close()

	conn, err := pool.GetConnection("passthrough:///bufnet")
	require.NoError(t, err)
	client := healthpb.NewHealthClient(conn)

	ctx := context.WithValue(context.Background(), tokenKey{}, "abc")
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	_, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"Bearer abc"}, seen())
}
