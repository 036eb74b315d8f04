// Package grpcbuf provides an in-memory gRPC echo server over bufconn for
// transport tests that must not touch the network.
package grpcbuf

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

const bufSize = 1024 * 1024

// EchoServer defines the minimal echo service served by StartServer.
type EchoServer interface {
	Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

type echoServer struct{}

func (s *echoServer) Ping(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func _Echo_Ping_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EchoServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/test.Echo/Ping",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EchoServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// EchoServiceDesc describes the in-memory echo service used by grpcbuf helpers.
var EchoServiceDesc = grpc.ServiceDesc{
	ServiceName: "test.Echo",
	HandlerType: (*EchoServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _Echo_Ping_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "echo_test",
}

// StartServer spins up a bufconn-backed gRPC server serving the echo service.
func StartServer() (*grpc.Server, *bufconn.Listener) {
	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	srv.RegisterService(&EchoServiceDesc, &echoServer{})
	go func() { _ = srv.Serve(lis) }()
	return srv, lis
}

// DialOptions returns dial options that route a gRPC client connection over
// the provided bufconn listener. bufconn does not provide TLS, so insecure
// credentials are used; pair these with an http endpoint so the transport
// does not also request TLS.
func DialOptions(lis *bufconn.Listener) []grpc.DialOption {
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(dialer),
	}
}
