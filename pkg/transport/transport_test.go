package transport

import (
	"context"
	"net/url"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/nimbuscloud/nimbus-sdk-go/internal/testutil/grpcbuf"
)

// TestTimeoutsWithDefaults verifies that explicit values are preserved and
// zero values are filled.
func TestTimeoutsWithDefaults(t *testing.T) {
	tt := Timeouts{Dial: time.Second}.WithDefaults()
	if tt.Dial != time.Second {
		t.Fatalf("explicit dial timeout replaced: %v", tt.Dial)
	}
	if tt.Call != 30*time.Second {
		t.Fatalf("unexpected default call timeout: %v", tt.Call)
	}
}

// TestNewSyncClientLazy verifies that creating a client for an unreachable
// endpoint succeeds: no network traffic happens at construction time.
func TestNewSyncClientLazy(t *testing.T) {
	endpoint := &url.URL{Scheme: "https", Host: "storage.us-west-2.nimbuscloud.io"}
	c, err := NewSyncClient(endpoint, Timeouts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.Endpoint() != endpoint {
		t.Fatalf("unexpected endpoint: %s", c.Endpoint())
	}
	if c.Conn() == nil {
		t.Fatal("expected an underlying connection")
	}
	if c.Timeouts().Call == 0 {
		t.Fatal("expected defaulted timeouts")
	}
}

// TestNewSyncClientRequiresEndpoint verifies the nil-endpoint failure.
func TestNewSyncClientRequiresEndpoint(t *testing.T) {
	if _, err := NewSyncClient(nil, Timeouts{}); err == nil {
		t.Fatal("expected error for nil endpoint")
	}
}

// TestSyncClientInvoke verifies an end-to-end unary call through the
// transport over an in-memory connection.
func TestSyncClientInvoke(t *testing.T) {
	srv, lis := grpcbuf.StartServer()
	defer srv.Stop()

	endpoint, err := url.Parse("passthrough:///bufnet")
	if err != nil {
		t.Fatalf("parse endpoint: %v", err)
	}

	c, err := NewSyncClient(endpoint, Timeouts{}, grpcbuf.DialOptions(lis)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out := &emptypb.Empty{}
	if err := c.Conn().Invoke(ctx, "/test.Echo/Ping", &emptypb.Empty{}, out); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
}

// TestSyncClientCloseNilSafe verifies Close on nil receivers.
func TestSyncClientCloseNilSafe(t *testing.T) {
	var c *SyncClient
	if err := c.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (&SyncClient{}).Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestNewAsyncClient verifies executor wiring and the nil-executor failure.
func TestNewAsyncClient(t *testing.T) {
	endpoint := &url.URL{Scheme: "https", Host: "storage.us-west-2.nimbuscloud.io"}

	if _, err := NewAsyncClient(endpoint, Timeouts{}, nil); err == nil {
		t.Fatal("expected error for nil executor")
	}

	exec := NewPoolExecutor(1)
	defer exec.Shutdown()

	c, err := NewAsyncClient(endpoint, Timeouts{}, exec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.Executor() != Executor(exec) {
		t.Fatal("expected the provided executor")
	}
}
