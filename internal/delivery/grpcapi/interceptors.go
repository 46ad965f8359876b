package grpcapi

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/identity"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const authorizationHeader = "authorization"

type TokenVerifier interface {
	Verify(token string) (string, error)
}

// SignerInterceptor verifies every bearer token in the authorization
// metadata. Each token carries one signing party; the verified subjects
// become the signers of the call. A call without tokens passes through
// with no signers and is rejected later by the authorization policy.
func SignerInterceptor(verifier TokenVerifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}

		var signers []string
		for _, value := range md.Get(authorizationHeader) {
			for _, token := range bearerTokens(value) {
				subject, err := verifier.Verify(token)
				if err != nil {
					return nil, status.Error(codes.Unauthenticated, err.Error())
				}
				signers = append(signers, subject)
			}
		}
		if len(signers) > 0 {
			ctx = identity.WithSigners(ctx, signers...)
		}
		return handler(ctx, req)
	}
}

// bearerTokens разбирает "Bearer a, Bearer b" и одиночные значения
func bearerTokens(value string) []string {
	var tokens []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if len(part) > 7 && strings.EqualFold(part[:7], "bearer ") {
			part = strings.TrimSpace(part[7:])
		}
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		attrs := []any{
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		}
		if err != nil {
			log.WarnContext(ctx, "grpc call failed", append(attrs, "error", err)...)
		} else {
			log.DebugContext(ctx, "grpc call", attrs...)
		}
		return resp, err
	}
}
