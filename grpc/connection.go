package grpc

import (
	"crypto/tls"
	"crypto/x509"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// GetGrpcConnection dials a node's gRPC endpoint. Endpoints on port 443 are dialed over TLS.
func GetGrpcConnection(grpcUri string, extraOpts ...grpc.DialOption) (*grpc.ClientConn, error) {
	// Handle connections using SSL
	transportCredentials := grpc.WithTransportCredentials(insecure.NewCredentials())
	if strings.HasSuffix(grpcUri, "443") {
		certPool, err := x509.SystemCertPool()
		if err != nil {
			certPool = x509.NewCertPool()
		}

		creds := credentials.NewTLS(&tls.Config{
			RootCAs:    certPool,
			MinVersion: tls.VersionTLS12,
		})
		transportCredentials = grpc.WithTransportCredentials(creds)
	}

	opts := []grpc.DialOption{
		transportCredentials,
	}
	opts = append(opts, extraOpts...)

	return grpc.Dial(
		grpcUri,
		opts...,
	)
}
