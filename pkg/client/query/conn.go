package query

import (
	"crypto/tls"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

const (
	// grpcKeepaliveTime is how long a connection may sit idle before a
	// keepalive probe is sent.
	grpcKeepaliveTime = 30 * time.Second

	// grpcKeepaliveTimeout is how long to wait for a probe answer before the
	// connection is considered dead.
	grpcKeepaliveTimeout = 10 * time.Second
)

// NewGRPCConn opens a client connection to the given gRPC endpoint. TLS is
// used unless insecureConn is set. Keepalive probes keep long-lived idle
// connections from being silently dropped by intermediaries while a client
// waits between transaction submissions.
func NewGRPCConn(target string, insecureConn bool) (*grpc.ClientConn, error) {
	creds := credentials.NewTLS(&tls.Config{})
	if insecureConn {
		creds = insecure.NewCredentials()
	}

	return grpc.NewClient(
		target,
		grpc.WithTransportCredentials(creds),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                grpcKeepaliveTime,
			Timeout:             grpcKeepaliveTimeout,
			PermitWithoutStream: true,
		}),
	)
}
