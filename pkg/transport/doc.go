// Package transport provides the default transport clients bound by the
// configuration pipeline: a blocking SyncClient and a non-blocking
// AsyncClient, both backed by a lazily connecting gRPC client connection.
//
// # Transport security
//
// The endpoint scheme selects the credentials:
//
//	"https://host:443"  → TLS with system certificates
//	"http://host:8080"  → insecure plaintext
//
// # Laziness
//
// Creating a client performs no network traffic. The underlying connection
// only starts connecting on first invocation, which keeps configuration
// finalization a pure in-memory operation.
//
// # Executors
//
// AsyncClient carries an Executor that async invocations are submitted to.
// PoolExecutor is the bounded worker-pool default:
//
//	exec := transport.NewPoolExecutor(16)
//	defer exec.Shutdown()
//	_ = exec.Submit(func() { ... })
//
// # Resource management
//
// Always close clients to release connections:
//
//	client, err := transport.NewSyncClient(endpoint, transport.Timeouts{})
//	if err != nil { ... }
//	defer client.Close()
package transport
