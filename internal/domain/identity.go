package domain

import "context"

type SignerVerifier interface {
	IsAuthorizedSigner(ctx context.Context, identity string) bool
}
