package transport

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Timeouts controls transport-level deadlines. Zero values are replaced by
// defaults in WithDefaults.
type Timeouts struct {
	Dial time.Duration // connection establishment
	Call time.Duration // per-invocation deadline applied by callers
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Dial: 5s
//	Call: 30s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Dial == 0 {
		tt.Dial = 5 * time.Second
	}
	if tt.Call == 0 {
		tt.Call = 30 * time.Second
	}
	return tt
}

// SyncClient is the blocking transport bound to a service endpoint. It holds
// a lazily connecting gRPC client connection; no network traffic occurs until
// the first invocation.
type SyncClient struct {
	endpoint *url.URL
	conn     *grpc.ClientConn
	timeouts Timeouts
}

// NewSyncClient creates a blocking transport for the given endpoint. The
// endpoint scheme determines transport security:
//   - "https": TLS (system defaults)
//   - "http":  insecure
//   - other:   insecure
//
// The connection is created lazily and only starts connecting on first use.
func NewSyncClient(endpoint *url.URL, timeouts Timeouts, opts ...grpc.DialOption) (*SyncClient, error) {
	if endpoint == nil {
		return nil, fmt.Errorf("transport: endpoint is required")
	}

	addr, creds := dialTargetFromEndpoint(endpoint)
	dialOpts := append([]grpc.DialOption{creds}, opts...)
	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("transport: create client for %s: %w", endpoint, err)
	}

	zap.L().Debug("transport client created",
		zap.String("endpoint", endpoint.String()),
		zap.String("target", addr))

	return &SyncClient{
		endpoint: endpoint,
		conn:     conn,
		timeouts: timeouts.WithDefaults(),
	}, nil
}

// Endpoint returns the endpoint this client is bound to.
func (c *SyncClient) Endpoint() *url.URL {
	return c.endpoint
}

// Conn returns the underlying gRPC client connection.
func (c *SyncClient) Conn() *grpc.ClientConn {
	return c.conn
}

// Timeouts returns the effective transport timeouts.
func (c *SyncClient) Timeouts() Timeouts {
	return c.timeouts
}

// Close shuts down the underlying connection.
// It is safe to call on a nil receiver or when no connection was created.
func (c *SyncClient) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// AsyncClient is the non-blocking transport: the same lazily connecting gRPC
// connection plus an executor that invocations are submitted to.
type AsyncClient struct {
	*SyncClient
	executor Executor
}

// NewAsyncClient creates a non-blocking transport for the given endpoint.
// The executor must not be nil; the configuration pipeline supplies a
// bounded-pool default when the caller configured none.
func NewAsyncClient(endpoint *url.URL, timeouts Timeouts, executor Executor, opts ...grpc.DialOption) (*AsyncClient, error) {
	if executor == nil {
		return nil, fmt.Errorf("transport: executor is required")
	}
	sync, err := NewSyncClient(endpoint, timeouts, opts...)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{
		SyncClient: sync,
		executor:   executor,
	}, nil
}

// Executor returns the executor async invocations run on.
func (c *AsyncClient) Executor() Executor {
	return c.executor
}

// dialTargetFromEndpoint derives a dial target and dial option from an
// endpoint URL. "https" enables TLS and "http" is insecure, both dialing the
// host directly. Any other scheme is passed through verbatim as a gRPC
// target (e.g. "passthrough:///addr" with a custom dialer) with insecure
// credentials.
func dialTargetFromEndpoint(endpoint *url.URL) (string, grpc.DialOption) {
	switch endpoint.Scheme {
	case "https":
		addr := strings.TrimPrefix(endpoint.String(), "https://")
		return addr, grpc.WithTransportCredentials(credentials.NewTLS(nil))
	case "http":
		addr := strings.TrimPrefix(endpoint.String(), "http://")
		return addr, grpc.WithTransportCredentials(insecure.NewCredentials())
	default:
		return endpoint.String(), grpc.WithTransportCredentials(insecure.NewCredentials())
	}
}
